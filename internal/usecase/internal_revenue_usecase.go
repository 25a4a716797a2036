package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"
	"billing_core/internal/usecase/paging"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// revenueLookupCategories bounds the concurrent lookups issued per chunk.
const revenueLookupCategories = 8

var ErrInvalidYear = errors.New("invalid year")

// IInternalRevenueUseCase builds per-site revenue inputs for cross-site rollups.
type IInternalRevenueUseCase interface {
	GetInternalRevenueData(ctx context.Context, siteNumbers []string, year int) ([]entities.InternalRevenueData, error)
}

type InternalRevenueUseCase struct {
	repo interfaces.IRevenueLookupRepository
	log  *zap.Logger
}

var _ IInternalRevenueUseCase = (*InternalRevenueUseCase)(nil)

func NewInternalRevenueUseCase(repo interfaces.IRevenueLookupRepository, log *zap.Logger) *InternalRevenueUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &InternalRevenueUseCase{repo: repo, log: log}
}

// revenueLookups holds one chunk's lookup results indexed by owning key.
type revenueLookups struct {
	contractBySite      map[string]entities.Contract
	statsBySite         map[string][]entities.SiteStatisticDetail
	otherRevenueBySite  map[string][]entities.OtherRevenueDetail
	fixedFees           map[string][]entities.FixedFeeService
	laborHourJobs       map[string][]entities.LaborHourJob
	thresholds          map[string][]entities.RevenueShareThreshold
	billableAccounts    map[string][]entities.BillableAccount
	agreementByContract map[string]entities.ManagementAgreement
	nonGLExpenses       map[string][]entities.NonGLExpense
}

// GetInternalRevenueData assembles one record per resolved site that has a
// contract, in the order the site numbers were given. Unknown sites and sites
// without a contract are skipped. Any lookup failure fails the whole call.
func (u *InternalRevenueUseCase) GetInternalRevenueData(ctx context.Context, siteNumbers []string, year int) ([]entities.InternalRevenueData, error) {
	if year < 1 || year > 9999 {
		return nil, ErrInvalidYear
	}
	siteNumbers = normalizeIDs(siteNumbers)
	if len(siteNumbers) == 0 {
		return []entities.InternalRevenueData{}, nil
	}

	resolved, err := lookupAll(ctx, siteNumbers, u.repo.SitesByNumbers)
	if err != nil {
		return nil, fmt.Errorf("resolve sites: %w", err)
	}
	byNumber := make(map[string]entities.CustomerSite, len(resolved))
	for _, site := range resolved {
		if _, dup := byNumber[site.SiteNumber]; !dup {
			byNumber[site.SiteNumber] = site
		}
	}

	sites := make([]entities.CustomerSite, 0, len(resolved))
	for _, number := range siteNumbers {
		site, ok := byNumber[number]
		if !ok {
			u.log.Debug("[internal-revenue][usecase] site not found, skipping", zap.String("site_number", number))
			continue
		}
		sites = append(sites, site)
	}

	out := make([]entities.InternalRevenueData, 0, len(sites))
	for _, chunk := range paging.Chunk(sites, paging.MaxBatchSize) {
		siteIDs := make([]string, 0, len(chunk))
		for _, site := range chunk {
			siteIDs = append(siteIDs, site.ID)
		}

		lookups, err := u.fetchChunk(ctx, siteIDs, year)
		if err != nil {
			return nil, err
		}
		for _, site := range chunk {
			record, ok := lookups.assemble(site)
			if !ok {
				u.log.Debug("[internal-revenue][usecase] site without contract, skipping", zap.String("site_id", site.ID))
				continue
			}
			out = append(out, record)
		}
	}

	u.log.Info("[internal-revenue][usecase] data assembled", zap.Int("requested", len(siteNumbers)), zap.Int("returned", len(out)), zap.Int("year", year))
	return out, nil
}

func (u *InternalRevenueUseCase) fetchChunk(ctx context.Context, siteIDs []string, year int) (revenueLookups, error) {
	var l revenueLookups

	contracts, err := lookupAll(ctx, siteIDs, u.repo.ContractsBySites)
	if err != nil {
		return l, fmt.Errorf("contracts: %w", err)
	}
	l.contractBySite = firstBy(contracts, func(c entities.Contract) string { return c.CustomerSiteID })
	contractIDs := make([]string, 0, len(l.contractBySite))
	for _, siteID := range siteIDs {
		if c, ok := l.contractBySite[siteID]; ok {
			contractIDs = append(contractIDs, c.ID)
		}
	}

	periodPrefix := strconv.Itoa(year)
	monthYears := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		monthYears = append(monthYears, fmt.Sprintf("%04d-%02d", year, m))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(revenueLookupCategories)

	g.Go(func() error {
		stats, err := paging.FetchAll(gctx, paging.MaxPageSize, func(ctx context.Context, req paging.Request) (paging.Page[entities.SiteStatisticDetail], error) {
			return u.repo.SiteStatisticDetails(ctx, siteIDs, periodPrefix, req)
		})
		if err != nil {
			return fmt.Errorf("site statistics: %w", err)
		}
		l.statsBySite = groupBy(stats, func(d entities.SiteStatisticDetail) string { return d.CustomerSiteID })
		return nil
	})
	g.Go(func() error {
		revenues, err := u.repo.OtherRevenuesBySites(gctx, siteIDs, monthYears)
		if err != nil {
			return fmt.Errorf("other revenues: %w", err)
		}
		l.otherRevenueBySite = groupBy(revenues, func(r entities.OtherRevenueDetail) string { return r.CustomerSiteID })
		return nil
	})
	g.Go(func() error {
		items, err := lookupAll(gctx, contractIDs, u.repo.FixedFeesByContracts)
		if err != nil {
			return fmt.Errorf("fixed fees: %w", err)
		}
		l.fixedFees = groupBy(items, func(f entities.FixedFeeService) string { return f.ContractID })
		return nil
	})
	g.Go(func() error {
		items, err := lookupAll(gctx, contractIDs, u.repo.LaborHourJobsByContracts)
		if err != nil {
			return fmt.Errorf("labor hour jobs: %w", err)
		}
		l.laborHourJobs = groupBy(items, func(j entities.LaborHourJob) string { return j.ContractID })
		return nil
	})
	g.Go(func() error {
		items, err := lookupAll(gctx, contractIDs, u.repo.RevenueShareThresholdsByContracts)
		if err != nil {
			return fmt.Errorf("revenue share thresholds: %w", err)
		}
		l.thresholds = groupBy(items, func(r entities.RevenueShareThreshold) string { return r.ContractID })
		return nil
	})
	g.Go(func() error {
		items, err := lookupAll(gctx, contractIDs, u.repo.BillableAccountsByContracts)
		if err != nil {
			return fmt.Errorf("billable accounts: %w", err)
		}
		l.billableAccounts = groupBy(items, func(b entities.BillableAccount) string { return b.ContractID })
		return nil
	})
	g.Go(func() error {
		items, err := lookupAll(gctx, contractIDs, u.repo.ManagementAgreementsByContracts)
		if err != nil {
			return fmt.Errorf("management agreements: %w", err)
		}
		l.agreementByContract = firstBy(items, func(m entities.ManagementAgreement) string { return m.ContractID })
		return nil
	})
	g.Go(func() error {
		items, err := lookupAll(gctx, contractIDs, u.repo.NonGLExpensesByContracts)
		if err != nil {
			return fmt.Errorf("non-GL expenses: %w", err)
		}
		l.nonGLExpenses = groupBy(items, func(e entities.NonGLExpense) string { return e.ContractID })
		return nil
	})

	if err := g.Wait(); err != nil {
		return revenueLookups{}, err
	}
	return l, nil
}

func (l revenueLookups) assemble(site entities.CustomerSite) (entities.InternalRevenueData, bool) {
	contract, ok := l.contractBySite[site.ID]
	if !ok {
		return entities.InternalRevenueData{}, false
	}

	record := entities.InternalRevenueData{
		SiteID:                 site.ID,
		SiteNumber:             site.SiteNumber,
		SiteName:               site.SiteName,
		Contract:               contract,
		SiteStatistics:         orEmpty(l.statsBySite[site.ID]),
		FixedFees:              orEmpty(l.fixedFees[contract.ID]),
		LaborHourJobs:          orEmpty(l.laborHourJobs[contract.ID]),
		RevenueShareThresholds: orEmpty(l.thresholds[contract.ID]),
		BillableAccounts:       orEmpty(l.billableAccounts[contract.ID]),
		OtherRevenues:          orEmpty(l.otherRevenueBySite[site.ID]),
		OtherExpenses:          orEmpty(l.nonGLExpenses[contract.ID]),
	}
	if agreement, ok := l.agreementByContract[contract.ID]; ok {
		record.ManagementAgreement = &agreement
	}
	return record, true
}

// lookupAll calls fetch once per chunk of at most paging.MaxBatchSize keys.
func lookupAll[T any](ctx context.Context, keys []string, fetch func(context.Context, []string) ([]T, error)) ([]T, error) {
	var out []T
	for _, chunk := range paging.Chunk(keys, paging.MaxBatchSize) {
		items, err := fetch(ctx, chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func groupBy[T any](items []T, key func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}

func firstBy[T any](items []T, key func(T) string) map[string]T {
	out := make(map[string]T, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := out[k]; !ok {
			out[k] = item
		}
	}
	return out
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
