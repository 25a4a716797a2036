package interfaces

import (
	"context"
	"time"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/paging"
	"billing_core/internal/usecase/reconcile"
)

// IBillingStatementRepository abstracts the statement store.
//
// Row queries return flattened statement rows with the customer site, invoice
// and confirmation ("ready for invoice") columns joined under their aliases,
// one page at a time. All rows of a statement are returned contiguously within
// one page.
type IBillingStatementRepository interface {
	CurrentStatementRows(ctx context.Context, from, to time.Time, req paging.Request) (paging.Page[reconcile.Row], error)
	StatementRowsByCustomerSite(ctx context.Context, siteID string, req paging.Request) (paging.Page[reconcile.Row], error)
	// StatementRowsByIDs accepts at most paging.MaxBatchSize ids.
	StatementRowsByIDs(ctx context.Context, ids []string, req paging.Request) (paging.Page[reconcile.Row], error)
	// CurrentStatementIDsByCustomerSites accepts at most paging.MaxBatchSize site ids.
	CurrentStatementIDsByCustomerSites(ctx context.Context, siteIDs []string, from, to time.Time, req paging.Request) (paging.Page[string], error)
	UpdateStatus(ctx context.Context, id string, status entities.StatementStatus) error
	UpdateForecastData(ctx context.Context, id string, forecastData string) error
}
