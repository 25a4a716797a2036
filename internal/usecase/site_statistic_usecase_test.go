package usecase

import (
	"context"
	"errors"
	"testing"

	"billing_core/internal/domain/entities"
	mock_interfaces "billing_core/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSiteStatisticUseCase_GetBudgetData(t *testing.T) {
	t.Run("validates input", func(t *testing.T) {
		uc := NewSiteStatisticUseCase(nil, nil)

		_, err := uc.GetBudgetData(context.Background(), "", "2024-03")
		assert.ErrorIs(t, err, ErrInvalidSiteNumber)

		_, err = uc.GetBudgetData(context.Background(), "0170", "2024-13")
		assert.ErrorIs(t, err, ErrInvalidBillingPeriod)
	})

	t.Run("calls the daily budget procedure and derives ratios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		edw := mock_interfaces.NewMockIEDWGateway(ctrl)
		uc := NewSiteStatisticUseCase(edw, nil)

		edw.EXPECT().Execute(gomock.Any(), ProcedureBudgetDailyDetail, map[string]any{"COST_CENTER": "0170", "PERIOD": "202403"}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ map[string]any, out any) (bool, error) {
				details := out.(*[]entities.SiteStatisticDetail)
				*details = []entities.SiteStatisticDetail{
					{OccupiedRooms: decimal.NewFromInt(100), SelfOvernight: decimal.NewFromInt(15), ValetOvernight: decimal.NewFromInt(5)},
					{OccupiedRooms: decimal.Zero, ValetOvernight: decimal.NewFromInt(3)},
				}
				return true, nil
			},
		)

		details, err := uc.GetBudgetData(context.Background(), "0170", "2024-03")

		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.InDelta(t, 20.0, details[0].DriveInRatio, 1e-9)
		assert.InDelta(t, 25.0, details[0].CaptureRatio, 1e-9)
		assert.Equal(t, entities.SiteStatisticDetailTypeBudget, details[0].Type)
		assert.Zero(t, details[1].DriveInRatio)
	})

	t.Run("empty gateway answer is no data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		edw := mock_interfaces.NewMockIEDWGateway(ctrl)
		uc := NewSiteStatisticUseCase(edw, nil)

		edw.EXPECT().Execute(gomock.Any(), ProcedureBudgetDailyDetail, gomock.Any(), gomock.Any()).Return(false, nil)

		details, err := uc.GetBudgetData(context.Background(), "0170", "202403")

		require.NoError(t, err)
		assert.Empty(t, details)
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		edw := mock_interfaces.NewMockIEDWGateway(ctrl)
		uc := NewSiteStatisticUseCase(edw, nil)

		edw.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("502"))

		_, err := uc.GetBudgetData(context.Background(), "0170", "202403")
		assert.Error(t, err)
	})
}

func TestSiteStatisticUseCase_GetBudgetDataForRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	edw := mock_interfaces.NewMockIEDWGateway(ctrl)
	uc := NewSiteStatisticUseCase(edw, nil)

	edw.EXPECT().Execute(gomock.Any(), ProcedureBudgetDailyDetail, gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, _ int, params map[string]any, out any) (bool, error) {
			details := out.(*[]entities.SiteStatisticDetail)
			*details = []entities.SiteStatisticDetail{{BillingPeriod: params["PERIOD"].(string)}}
			return true, nil
		},
	)

	details, err := uc.GetBudgetDataForRange(context.Background(), "0170", []string{"2024-01", "2024-02", "2024-03"})

	require.NoError(t, err)
	require.Len(t, details, 3)
	assert.Equal(t, "202401", details[0].BillingPeriod)
	assert.Equal(t, "202403", details[2].BillingPeriod)
}

func TestSiteStatisticUseCase_GetPnlData(t *testing.T) {
	t.Run("validates input", func(t *testing.T) {
		uc := NewSiteStatisticUseCase(nil, nil)

		_, err := uc.GetPnlData(context.Background(), nil, 2024)
		assert.ErrorIs(t, err, ErrInvalidSiteNumber)

		_, err = uc.GetPnlData(context.Background(), []string{"0170"}, 0)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("joins site numbers for the by-site summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		edw := mock_interfaces.NewMockIEDWGateway(ctrl)
		uc := NewSiteStatisticUseCase(edw, nil)

		edw.EXPECT().Execute(gomock.Any(), ProcedureBudgetActualSummaryBySite, map[string]any{"SiteNumbers": "0170,0200", "Year": "2024"}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ map[string]any, out any) (bool, error) {
				out.(*entities.PnlBySite).PnlBySite = []entities.SitePnl{{SiteID: "0170"}}
				return true, nil
			},
		)

		pnl, err := uc.GetPnlData(context.Background(), []string{"0170", "0200"}, 2024)

		require.NoError(t, err)
		require.Len(t, pnl.PnlBySite, 1)
	})

	t.Run("no data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		edw := mock_interfaces.NewMockIEDWGateway(ctrl)
		uc := NewSiteStatisticUseCase(edw, nil)

		edw.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		pnl, err := uc.GetPnlData(context.Background(), []string{"0170"}, 2024)

		require.NoError(t, err)
		assert.NotNil(t, pnl.PnlBySite)
		assert.Empty(t, pnl.PnlBySite)
	})
}
