package usecase

import (
	"context"
	"errors"
	"fmt"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IExpenseBudgetUseCase reads single budget figures. Lookups never fail: any
// fault yields zero so callers can keep computing.
type IExpenseBudgetUseCase interface {
	PayrollExpenseBudget(ctx context.Context, siteID string, year, month int) decimal.Decimal
	BillableExpenseBudget(ctx context.Context, siteID string, year, month int) decimal.Decimal
	OtherExpenseBudget(ctx context.Context, siteID string, year, month int) decimal.Decimal
}

type ExpenseBudgetUseCase struct {
	repo interfaces.IBillableExpenseRepository
	log  *zap.Logger
}

var _ IExpenseBudgetUseCase = (*ExpenseBudgetUseCase)(nil)

func NewExpenseBudgetUseCase(repo interfaces.IBillableExpenseRepository, log *zap.Logger) *ExpenseBudgetUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExpenseBudgetUseCase{repo: repo, log: log}
}

func (u *ExpenseBudgetUseCase) PayrollExpenseBudget(ctx context.Context, siteID string, year, month int) decimal.Decimal {
	return u.budget(ctx, "payroll", siteID, year, month, func(e entities.BillableExpense) decimal.Decimal {
		return e.PayrollExpenseBudget
	})
}

func (u *ExpenseBudgetUseCase) BillableExpenseBudget(ctx context.Context, siteID string, year, month int) decimal.Decimal {
	return u.budget(ctx, "billable", siteID, year, month, func(e entities.BillableExpense) decimal.Decimal {
		return e.BillableExpenseBudget
	})
}

func (u *ExpenseBudgetUseCase) OtherExpenseBudget(ctx context.Context, siteID string, year, month int) decimal.Decimal {
	return u.budget(ctx, "other", siteID, year, month, func(e entities.BillableExpense) decimal.Decimal {
		return e.OtherExpenseBudget
	})
}

func (u *ExpenseBudgetUseCase) budget(ctx context.Context, kind, siteID string, year, month int, pick func(entities.BillableExpense) decimal.Decimal) decimal.Decimal {
	period := fmt.Sprintf("%04d%02d", year, month)
	expense, err := u.repo.Get(ctx, siteID, period)
	if errors.Is(err, interfaces.ErrNotFound) {
		u.log.Debug("[expense-budget][usecase] no budget record", zap.String("budget", kind), zap.String("site_id", siteID), zap.String("period", period))
		return decimal.Zero
	}
	if err != nil {
		u.log.Warn("[expense-budget][usecase] budget lookup failed, using zero",
			zap.String("budget", kind),
			zap.String("site_id", siteID),
			zap.String("period", period),
			zap.Error(err),
		)
		return decimal.Zero
	}
	return pick(expense)
}
