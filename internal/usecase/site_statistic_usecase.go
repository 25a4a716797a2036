package usecase

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EDW stored procedure ids.
const (
	ProcedureBudgetDailyDetail         = 1
	ProcedureBudgetActualSummaryBySite = 4
)

// maxConcurrentBudgetCalls bounds parallel EDW calls for a period range.
const maxConcurrentBudgetCalls = 4

var (
	ErrInvalidSiteNumber    = errors.New("invalid site number")
	ErrInvalidBillingPeriod = errors.New("invalid billing period")
)

var billingPeriodPattern = regexp.MustCompile(`^\d{4}-?(0[1-9]|1[0-2])$`)

// ISiteStatisticUseCase reads budget and P&L figures from the analytics warehouse.
type ISiteStatisticUseCase interface {
	GetBudgetData(ctx context.Context, siteNumber, billingPeriod string) ([]entities.SiteStatisticDetail, error)
	GetBudgetDataForRange(ctx context.Context, siteNumber string, billingPeriods []string) ([]entities.SiteStatisticDetail, error)
	GetPnlData(ctx context.Context, siteNumbers []string, year int) (entities.PnlBySite, error)
}

type SiteStatisticUseCase struct {
	edw interfaces.IEDWGateway
	log *zap.Logger
}

var _ ISiteStatisticUseCase = (*SiteStatisticUseCase)(nil)

func NewSiteStatisticUseCase(edw interfaces.IEDWGateway, log *zap.Logger) *SiteStatisticUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SiteStatisticUseCase{edw: edw, log: log}
}

// GetBudgetData returns the daily budget detail of a site for a billing period
// (YYYY-MM or YYYYMM) with drive-in and capture ratios derived.
func (u *SiteStatisticUseCase) GetBudgetData(ctx context.Context, siteNumber, billingPeriod string) ([]entities.SiteStatisticDetail, error) {
	siteNumber = strings.TrimSpace(siteNumber)
	if siteNumber == "" {
		return nil, ErrInvalidSiteNumber
	}
	billingPeriod = strings.TrimSpace(billingPeriod)
	if !billingPeriodPattern.MatchString(billingPeriod) {
		return nil, ErrInvalidBillingPeriod
	}

	var details []entities.SiteStatisticDetail
	found, err := u.edw.Execute(ctx, ProcedureBudgetDailyDetail, map[string]any{
		"COST_CENTER": siteNumber,
		"PERIOD":      strings.ReplaceAll(billingPeriod, "-", ""),
	}, &details)
	if err != nil {
		return nil, err
	}
	if !found {
		u.log.Debug("[site-statistic][usecase] no budget data", zap.String("site_number", siteNumber), zap.String("period", billingPeriod))
		return []entities.SiteStatisticDetail{}, nil
	}

	for i := range details {
		details[i].Type = entities.SiteStatisticDetailTypeBudget
		details[i].ApplyRatios()
	}
	return details, nil
}

// GetBudgetDataForRange fetches each period concurrently and concatenates the
// results in period order.
func (u *SiteStatisticUseCase) GetBudgetDataForRange(ctx context.Context, siteNumber string, billingPeriods []string) ([]entities.SiteStatisticDetail, error) {
	if len(billingPeriods) == 1 {
		return u.GetBudgetData(ctx, siteNumber, billingPeriods[0])
	}

	results := make([][]entities.SiteStatisticDetail, len(billingPeriods))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentBudgetCalls)
	for i, period := range billingPeriods {
		g.Go(func() error {
			details, err := u.GetBudgetData(gctx, siteNumber, period)
			if err != nil {
				return err
			}
			results[i] = details
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := []entities.SiteStatisticDetail{}
	for _, details := range results {
		out = append(out, details...)
	}
	return out, nil
}

// GetPnlData returns the budget, forecast and actual P&L summary per site for a year.
func (u *SiteStatisticUseCase) GetPnlData(ctx context.Context, siteNumbers []string, year int) (entities.PnlBySite, error) {
	siteNumbers = normalizeIDs(siteNumbers)
	if len(siteNumbers) == 0 {
		return entities.PnlBySite{}, ErrInvalidSiteNumber
	}
	if year < 1 || year > 9999 {
		return entities.PnlBySite{}, ErrInvalidYear
	}

	var pnl entities.PnlBySite
	found, err := u.edw.Execute(ctx, ProcedureBudgetActualSummaryBySite, map[string]any{
		"SiteNumbers": strings.Join(siteNumbers, ","),
		"Year":        strconv.Itoa(year),
	}, &pnl)
	if err != nil {
		return entities.PnlBySite{}, err
	}
	if !found || pnl.PnlBySite == nil {
		pnl.PnlBySite = []entities.SitePnl{}
	}
	return pnl, nil
}
