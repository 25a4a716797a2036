package interfaces

import (
	"context"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/paging"
)

// IRevenueLookupRepository abstracts the site and contract configuration lookups.
//
// Every "by keys" lookup accepts at most paging.MaxBatchSize keys and returns
// all matching records; the caller chunks larger key sets.
type IRevenueLookupRepository interface {
	SitesByNumbers(ctx context.Context, siteNumbers []string) ([]entities.CustomerSite, error)
	ContractsBySites(ctx context.Context, siteIDs []string) ([]entities.Contract, error)
	FixedFeesByContracts(ctx context.Context, contractIDs []string) ([]entities.FixedFeeService, error)
	LaborHourJobsByContracts(ctx context.Context, contractIDs []string) ([]entities.LaborHourJob, error)
	RevenueShareThresholdsByContracts(ctx context.Context, contractIDs []string) ([]entities.RevenueShareThreshold, error)
	BillableAccountsByContracts(ctx context.Context, contractIDs []string) ([]entities.BillableAccount, error)
	ManagementAgreementsByContracts(ctx context.Context, contractIDs []string) ([]entities.ManagementAgreement, error)
	NonGLExpensesByContracts(ctx context.Context, contractIDs []string) ([]entities.NonGLExpense, error)
	OtherRevenuesBySites(ctx context.Context, siteIDs []string, monthYears []string) ([]entities.OtherRevenueDetail, error)
	// SiteStatisticDetails returns one page of detail rows whose billing period
	// starts with periodPrefix.
	SiteStatisticDetails(ctx context.Context, siteIDs []string, periodPrefix string, req paging.Request) (paging.Page[entities.SiteStatisticDetail], error)
}
