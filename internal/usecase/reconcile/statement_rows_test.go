package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing_core/internal/domain/entities"
)

func statementRow(statementID, invoiceID, invoiceNumber, amount, period, note string) Row {
	row := Row{
		ColStatementID:        statementID,
		ColCreatedOn:          "2024-03-02T08:00:00Z",
		ColServicePeriodStart: "2024-03-01T00:00:00Z",
		ColServicePeriodEnd:   "2024-03-31T00:00:00Z",
		ColStatus:             entities.StatementStatusNeedsReview,
		ColPurchaseOrder:      "PO-1",
		ColCustomerSiteID:     "site-1",

		Col(AliasCustomerSite, ColSiteID):     "site-1",
		Col(AliasCustomerSite, ColSiteNumber): "0170",
		Col(AliasCustomerSite, ColSiteName):   "Downtown",
	}
	if invoiceID != "" {
		row[Col(AliasInvoice, ColInvoiceID)] = invoiceID
		row[Col(AliasInvoice, ColInvoiceNumber)] = invoiceNumber
		row[Col(AliasInvoice, ColAmount)] = amount
	}
	if period != "" {
		row[Col(AliasConfirmation, ColConfirmationID)] = "conf-" + period
		row[Col(AliasConfirmation, ColConfirmationPeriod)] = period
		row[Col(AliasConfirmation, ColConfirmationNote)] = note
	}
	return row
}

func TestBuildStatements(t *testing.T) {
	t.Run("assembles statement, site, invoices and note", func(t *testing.T) {
		rows := []Row{
			statementRow("S1", "i1", "INV-202403-001", "100.25", "202403", "ready"),
			statementRow("S1", "i2", "INV-202403-002", "50", "202403", "ready"),
		}

		statements, err := BuildStatements(rows)

		require.NoError(t, err)
		require.Len(t, statements, 1)
		s := statements[0]
		assert.Equal(t, "S1", s.ID)
		assert.Equal(t, entities.StatementStatusNeedsReview, s.Status)
		assert.Equal(t, "0170", s.CustomerSite.SiteNumber)
		assert.Equal(t, "2024-03", s.CreatedMonth())
		assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(s.ServicePeriodStart))
		assert.Equal(t, "ready", s.AmNotes)
		require.Len(t, s.Invoices, 2)
		assert.Equal(t, "S1", s.Invoices[0].BillingStatementID)
		assert.True(t, decimal.RequireFromString("150.25").Equal(s.TotalAmount()))
	})

	t.Run("statement without invoices", func(t *testing.T) {
		statements, err := BuildStatements([]Row{statementRow("S9", "", "", "", "", "")})

		require.NoError(t, err)
		require.Len(t, statements, 1)
		assert.Empty(t, statements[0].Invoices)
		assert.Empty(t, statements[0].AmNotes)
	})

	t.Run("unmatched invoices carry no note", func(t *testing.T) {
		rows := []Row{
			statementRow("S2", "x", "INV-X", "1", "202405", "may"),
			statementRow("S2", "y", "INV-Y", "2", "202406", "june"),
		}

		statements, err := BuildStatements(rows)

		require.NoError(t, err)
		require.Len(t, statements, 1)
		assert.Len(t, statements[0].Invoices, 2)
		assert.Empty(t, statements[0].AmNotes)
	})

	t.Run("inconsistent parent columns", func(t *testing.T) {
		first := statementRow("S1", "i1", "INV-1", "1", "", "")
		second := statementRow("S1", "i2", "INV-2", "1", "", "")
		second[ColStatus] = entities.StatementStatusSent

		_, err := BuildStatements([]Row{first, second})

		assert.ErrorIs(t, err, ErrInconsistentParent)
	})
}
