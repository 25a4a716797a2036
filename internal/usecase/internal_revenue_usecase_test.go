package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"billing_core/internal/domain/entities"
	mock_interfaces "billing_core/internal/usecase/interfaces/mocks"
	"billing_core/internal/usecase/paging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectEmptyContractLookups(repo *mock_interfaces.MockIRevenueLookupRepository) {
	repo.EXPECT().FixedFeesByContracts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().LaborHourJobsByContracts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().RevenueShareThresholdsByContracts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().BillableAccountsByContracts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().ManagementAgreementsByContracts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().NonGLExpensesByContracts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func TestInternalRevenueUseCase_GetInternalRevenueData(t *testing.T) {
	t.Run("invalid year", func(t *testing.T) {
		uc := NewInternalRevenueUseCase(nil, nil)
		_, err := uc.GetInternalRevenueData(context.Background(), []string{"0170"}, 0)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("assembles per site and skips unresolved or contractless sites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRevenueLookupRepository(ctrl)
		uc := NewInternalRevenueUseCase(repo, nil)

		repo.EXPECT().SitesByNumbers(gomock.Any(), []string{"0170", "0999", "0200", "0300"}).Return([]entities.CustomerSite{
			{ID: "s3", SiteNumber: "0300"},
			{ID: "s1", SiteNumber: "0170", SiteName: "Downtown"},
			{ID: "s2", SiteNumber: "0200"},
		}, nil)
		repo.EXPECT().ContractsBySites(gomock.Any(), []string{"s1", "s2", "s3"}).Return([]entities.Contract{
			{ID: "c3", CustomerSiteID: "s3"},
			{ID: "c1", CustomerSiteID: "s1"},
		}, nil)
		repo.EXPECT().SiteStatisticDetails(gomock.Any(), []string{"s1", "s2", "s3"}, "2024", paging.Request{PageNumber: 1, PageCount: paging.MaxPageSize}).
			Return(paging.Page[entities.SiteStatisticDetail]{
				Items:             []entities.SiteStatisticDetail{{ID: "d1", CustomerSiteID: "s1", BillingPeriod: "2024-01"}},
				MoreRecords:       true,
				ContinuationToken: "next",
			}, nil)
		repo.EXPECT().SiteStatisticDetails(gomock.Any(), []string{"s1", "s2", "s3"}, "2024", paging.Request{PageNumber: 2, PageCount: paging.MaxPageSize, ContinuationToken: "next"}).
			Return(paging.Page[entities.SiteStatisticDetail]{
				Items: []entities.SiteStatisticDetail{{ID: "d2", CustomerSiteID: "s1", BillingPeriod: "2024-02"}},
			}, nil)
		repo.EXPECT().OtherRevenuesBySites(gomock.Any(), []string{"s1", "s2", "s3"}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ []string, months []string) ([]entities.OtherRevenueDetail, error) {
				if len(months) != 12 || months[0] != "2024-01" || months[11] != "2024-12" {
					t.Fatalf("unexpected months %v", months)
				}
				return []entities.OtherRevenueDetail{{ID: "o1", CustomerSiteID: "s3", MonthYear: "2024-03"}}, nil
			},
		)
		repo.EXPECT().FixedFeesByContracts(gomock.Any(), []string{"c1", "c3"}).Return([]entities.FixedFeeService{
			{ID: "f1", ContractID: "c1", Fee: decimal.NewFromInt(100)},
			{ID: "f2", ContractID: "c1", Fee: decimal.NewFromInt(50)},
		}, nil)
		repo.EXPECT().LaborHourJobsByContracts(gomock.Any(), []string{"c1", "c3"}).Return(nil, nil)
		repo.EXPECT().RevenueShareThresholdsByContracts(gomock.Any(), []string{"c1", "c3"}).Return([]entities.RevenueShareThreshold{{ID: "r1", ContractID: "c3"}}, nil)
		repo.EXPECT().BillableAccountsByContracts(gomock.Any(), []string{"c1", "c3"}).Return(nil, nil)
		repo.EXPECT().ManagementAgreementsByContracts(gomock.Any(), []string{"c1", "c3"}).Return([]entities.ManagementAgreement{
			{ID: "m1", ContractID: "c1"},
			{ID: "m2", ContractID: "c1"},
		}, nil)
		repo.EXPECT().NonGLExpensesByContracts(gomock.Any(), []string{"c1", "c3"}).Return(nil, nil)

		data, err := uc.GetInternalRevenueData(context.Background(), []string{"0170", "0999", " 0200", "0300", "0170"}, 2024)

		require.NoError(t, err)
		require.Len(t, data, 2)

		assert.Equal(t, "s1", data[0].SiteID)
		assert.Equal(t, "Downtown", data[0].SiteName)
		assert.Equal(t, "c1", data[0].Contract.ID)
		assert.Len(t, data[0].SiteStatistics, 2)
		assert.Len(t, data[0].FixedFees, 2)
		require.NotNil(t, data[0].ManagementAgreement)
		assert.Equal(t, "m1", data[0].ManagementAgreement.ID)
		assert.Empty(t, data[0].OtherRevenues)
		assert.NotNil(t, data[0].LaborHourJobs)

		assert.Equal(t, "s3", data[1].SiteID)
		assert.Len(t, data[1].RevenueShareThresholds, 1)
		assert.Len(t, data[1].OtherRevenues, 1)
		assert.Nil(t, data[1].ManagementAgreement)
	})

	t.Run("sites are processed in chunks of at most 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRevenueLookupRepository(ctrl)
		uc := NewInternalRevenueUseCase(repo, nil)

		numbers := make([]string, 750)
		for i := range numbers {
			numbers[i] = fmt.Sprintf("%04d", i)
		}

		var mu sync.Mutex
		var sizes []int
		repo.EXPECT().SitesByNumbers(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, batch []string) ([]entities.CustomerSite, error) {
				sites := make([]entities.CustomerSite, 0, len(batch))
				for _, n := range batch {
					sites = append(sites, entities.CustomerSite{ID: "id-" + n, SiteNumber: n})
				}
				return sites, nil
			},
		)
		repo.EXPECT().ContractsBySites(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, siteIDs []string) ([]entities.Contract, error) {
				mu.Lock()
				sizes = append(sizes, len(siteIDs))
				mu.Unlock()
				contracts := make([]entities.Contract, 0, len(siteIDs))
				for _, id := range siteIDs {
					contracts = append(contracts, entities.Contract{ID: "c-" + id, CustomerSiteID: id})
				}
				return contracts, nil
			},
		)
		repo.EXPECT().SiteStatisticDetails(gomock.Any(), gomock.Any(), "2023", gomock.Any()).Return(paging.Page[entities.SiteStatisticDetail]{}, nil).Times(2)
		repo.EXPECT().OtherRevenuesBySites(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		expectEmptyContractLookups(repo)

		data, err := uc.GetInternalRevenueData(context.Background(), numbers, 2023)

		require.NoError(t, err)
		assert.Equal(t, []int{500, 250}, sizes)
		require.Len(t, data, 750)
		assert.Equal(t, "0000", data[0].SiteNumber)
		assert.Equal(t, "0749", data[749].SiteNumber)
	})

	t.Run("any lookup failure fails the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRevenueLookupRepository(ctrl)
		uc := NewInternalRevenueUseCase(repo, nil)

		repo.EXPECT().SitesByNumbers(gomock.Any(), gomock.Any()).Return([]entities.CustomerSite{{ID: "s1", SiteNumber: "0170"}}, nil)
		repo.EXPECT().ContractsBySites(gomock.Any(), gomock.Any()).Return([]entities.Contract{{ID: "c1", CustomerSiteID: "s1"}}, nil)
		repo.EXPECT().SiteStatisticDetails(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(paging.Page[entities.SiteStatisticDetail]{}, nil).AnyTimes()
		repo.EXPECT().OtherRevenuesBySites(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled")).AnyTimes()
		expectEmptyContractLookups(repo)

		data, err := uc.GetInternalRevenueData(context.Background(), []string{"0170"}, 2024)

		assert.Error(t, err)
		assert.Nil(t, data)
	})

	t.Run("site resolution failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRevenueLookupRepository(ctrl)
		uc := NewInternalRevenueUseCase(repo, nil)

		repo.EXPECT().SitesByNumbers(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		_, err := uc.GetInternalRevenueData(context.Background(), []string{"0170"}, 2024)
		assert.Error(t, err)
	})
}
