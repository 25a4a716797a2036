package interfaces

import (
	"context"

	"billing_core/internal/domain/entities"
)

// IBillableExpenseRepository reads a site's monthly expense budgets. period is YYYYMM.
type IBillableExpenseRepository interface {
	Get(ctx context.Context, siteID string, period string) (entities.BillableExpense, error)
}
