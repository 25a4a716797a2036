package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"
	"billing_core/internal/usecase/paging"
	"billing_core/internal/usecase/reconcile"

	"go.uber.org/zap"
)

var (
	ErrStatementNotFound      = errors.New("billing statement not found")
	ErrInvalidStatementID     = errors.New("invalid billing statement id")
	ErrInvalidStatementStatus = errors.New("invalid billing statement status")
	ErrInvalidForecastData    = errors.New("forecast data must be valid JSON")
)

// IBillingStatementUseCase exposes billing statement reads and the review workflow updates.
type IBillingStatementUseCase interface {
	GetCurrentBillingStatements(ctx context.Context) ([]entities.BillingStatement, error)
	GetBillingStatementsByCustomerSite(ctx context.Context, customerSiteID string) ([]entities.BillingStatement, error)
	GetBillingStatementsByIDs(ctx context.Context, ids []string) ([]entities.BillingStatement, error)
	GetBillingStatementIDsByCustomerSites(ctx context.Context, customerSiteIDs []string) ([]string, error)
	UpdateStatementStatus(ctx context.Context, id string, status entities.StatementStatus) error
	UpdateForecastData(ctx context.Context, id string, forecastData string) error
}

type BillingStatementUseCase struct {
	repo interfaces.IBillingStatementRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IBillingStatementUseCase = (*BillingStatementUseCase)(nil)

func NewBillingStatementUseCase(repo interfaces.IBillingStatementRepository, log *zap.Logger) *BillingStatementUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingStatementUseCase{repo: repo, log: log, now: time.Now}
}

// GetCurrentBillingStatements returns statements that are not sent yet or were
// created this month.
func (u *BillingStatementUseCase) GetCurrentBillingStatements(ctx context.Context) ([]entities.BillingStatement, error) {
	now := u.now()
	from, to := entities.CurrentMonthWindow(now)

	rows, err := paging.FetchAll(ctx, paging.MaxPageSize, func(ctx context.Context, req paging.Request) (paging.Page[reconcile.Row], error) {
		return u.repo.CurrentStatementRows(ctx, from, to, req)
	})
	if err != nil {
		return nil, err
	}
	statements, err := reconcile.BuildStatements(rows)
	if err != nil {
		return nil, err
	}

	current := statements[:0]
	for _, s := range statements {
		if entities.IsCurrentStatement(s.Status, s.CreatedOn, now) {
			current = append(current, s)
		}
	}
	u.log.Debug("[billing-statement][usecase] current statements loaded", zap.Int("rows", len(rows)), zap.Int("statements", len(current)))
	return current, nil
}

func (u *BillingStatementUseCase) GetBillingStatementsByCustomerSite(ctx context.Context, customerSiteID string) ([]entities.BillingStatement, error) {
	customerSiteID = strings.TrimSpace(customerSiteID)
	if customerSiteID == "" {
		return nil, ErrInvalidCustomerSiteID
	}

	rows, err := paging.FetchAll(ctx, paging.MaxPageSize, func(ctx context.Context, req paging.Request) (paging.Page[reconcile.Row], error) {
		return u.repo.StatementRowsByCustomerSite(ctx, customerSiteID, req)
	})
	if err != nil {
		return nil, err
	}
	return reconcile.BuildStatements(rows)
}

// GetBillingStatementsByIDs loads statements in id batches. Unknown ids are ignored.
func (u *BillingStatementUseCase) GetBillingStatementsByIDs(ctx context.Context, ids []string) ([]entities.BillingStatement, error) {
	ids = normalizeIDs(ids)
	if len(ids) == 0 {
		return []entities.BillingStatement{}, nil
	}

	statements := make([]entities.BillingStatement, 0, len(ids))
	for _, chunk := range paging.Chunk(ids, paging.MaxBatchSize) {
		rows, err := paging.FetchAll(ctx, paging.MaxPageSize, func(ctx context.Context, req paging.Request) (paging.Page[reconcile.Row], error) {
			return u.repo.StatementRowsByIDs(ctx, chunk, req)
		})
		if err != nil {
			return nil, err
		}
		built, err := reconcile.BuildStatements(rows)
		if err != nil {
			return nil, err
		}
		statements = append(statements, built...)
	}
	return statements, nil
}

// GetBillingStatementIDsByCustomerSites returns the ids of the sites' current statements.
func (u *BillingStatementUseCase) GetBillingStatementIDsByCustomerSites(ctx context.Context, customerSiteIDs []string) ([]string, error) {
	siteIDs := normalizeIDs(customerSiteIDs)
	if len(siteIDs) == 0 {
		return []string{}, nil
	}
	from, to := entities.CurrentMonthWindow(u.now())

	ids := []string{}
	for _, chunk := range paging.Chunk(siteIDs, paging.MaxBatchSize) {
		found, err := paging.FetchAll(ctx, paging.MaxPageSize, func(ctx context.Context, req paging.Request) (paging.Page[string], error) {
			return u.repo.CurrentStatementIDsByCustomerSites(ctx, chunk, from, to, req)
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, found...)
	}
	return ids, nil
}

func (u *BillingStatementUseCase) UpdateStatementStatus(ctx context.Context, id string, status entities.StatementStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStatementID
	}
	if !status.Valid() {
		return ErrInvalidStatementStatus
	}

	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		return mapStatementErr(err)
	}
	u.log.Info("[billing-statement][usecase] status updated", zap.String("statement_id", id), zap.Stringer("status", status))
	return nil
}

func (u *BillingStatementUseCase) UpdateForecastData(ctx context.Context, id string, forecastData string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStatementID
	}
	if !json.Valid([]byte(forecastData)) {
		return ErrInvalidForecastData
	}

	if err := u.repo.UpdateForecastData(ctx, id, forecastData); err != nil {
		return mapStatementErr(err)
	}
	return nil
}

func mapStatementErr(err error) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return ErrStatementNotFound
	}
	return err
}
