package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatementStatus(t *testing.T) {
	t.Run("by name", func(t *testing.T) {
		s, err := ParseStatementStatus("readytosend")
		require.NoError(t, err)
		assert.Equal(t, StatementStatusReadyToSend, s)
	})

	t.Run("by code", func(t *testing.T) {
		s, err := ParseStatementStatus("126840003")
		require.NoError(t, err)
		assert.Equal(t, StatementStatusSent, s)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseStatementStatus("Draft")
		assert.Error(t, err)
		_, err = ParseStatementStatus("42")
		assert.Error(t, err)
	})
}

func TestStatementStatus_String(t *testing.T) {
	assert.Equal(t, "ApprovalTeam", StatementStatusApprovalTeam.String())
	assert.Equal(t, "7", StatementStatus(7).String())
	assert.False(t, StatementStatus(7).Valid())
}

func TestBillingStatement_Totals(t *testing.T) {
	s := BillingStatement{
		CreatedOn: time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC),
		Invoices: []Invoice{
			{Amount: decimal.RequireFromString("10.10")},
			{Amount: decimal.RequireFromString("0.20")},
		},
	}

	assert.True(t, decimal.RequireFromString("10.30").Equal(s.TotalAmount()))
	assert.Equal(t, "2024-11", s.CreatedMonth())
	assert.Equal(t, "", BillingStatement{}.CreatedMonth())
}

func TestSiteStatisticDetail_ApplyRatios(t *testing.T) {
	d := SiteStatisticDetail{
		OccupiedRooms:  decimal.NewFromInt(200),
		SelfOvernight:  decimal.NewFromInt(30),
		ValetOvernight: decimal.NewFromInt(10),
	}
	d.ApplyRatios()
	assert.InDelta(t, 20.0, d.DriveInRatio, 1e-9)
	assert.InDelta(t, 25.0, d.CaptureRatio, 1e-9)

	empty := SiteStatisticDetail{DriveInRatio: 5}
	empty.ApplyRatios()
	assert.Zero(t, empty.DriveInRatio)
	assert.Zero(t, empty.CaptureRatio)
}
