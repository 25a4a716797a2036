package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairRow(statementID, invoiceNumber, period, note string) Row {
	row := Row{
		ColStatementID:                      statementID,
		Col(AliasInvoice, ColInvoiceID):     "id-" + invoiceNumber,
		Col(AliasInvoice, ColInvoiceNumber): invoiceNumber,
	}
	if period != "" || note != "" {
		row[Col(AliasConfirmation, ColConfirmationPeriod)] = period
		row[Col(AliasConfirmation, ColConfirmationNote)] = note
	} else {
		row[Col(AliasConfirmation, ColConfirmationPeriod)] = nil
		row[Col(AliasConfirmation, ColConfirmationNote)] = nil
	}
	return row
}

func keysOf(m InvoiceConfirmationMatcher, rows []Row) []string {
	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, compositeKey(r.Str(m.StatementIDColumn), r.Str(m.InvoiceNumberColumn)))
	}
	return keys
}

func TestInvoiceConfirmationMatcher_Match(t *testing.T) {
	m := NewStatementInvoiceMatcher()
	noteCol := Col(AliasConfirmation, ColConfirmationNote)

	t.Run("statement with a match drops its unmatched invoices", func(t *testing.T) {
		rows := []Row{
			pairRow("S1", "INV-202403-001", "202403", "approved"),
			pairRow("S1", "INV-202401-002", "", ""),
		}

		out := m.Match(rows)

		require.Len(t, out, 1)
		assert.Equal(t, "INV-202403-001", out[0].Str(m.InvoiceNumberColumn))
		assert.Equal(t, "approved", out[0].Str(noteCol))
	})

	t.Run("statement without matches keeps every invoice with the note cleared", func(t *testing.T) {
		rows := []Row{
			pairRow("S2", "INV-X", "202405", "may"),
			pairRow("S2", "INV-Y", "202406", "june"),
		}

		out := m.Match(rows)

		require.Len(t, out, 2)
		assert.Equal(t, []string{"S2_INV-X", "S2_INV-Y"}, keysOf(m, out))
		for _, r := range out {
			assert.False(t, r.Has(noteCol))
		}
		assert.Equal(t, "may", rows[0].Str(noteCol), "input rows must not be modified")
	})

	t.Run("cartesian rows collapse to one row per invoice", func(t *testing.T) {
		rows := []Row{
			pairRow("S3", "INV-202403-1", "202402", "feb"),
			pairRow("S3", "INV-202403-1", "202403", "mar"),
			pairRow("S3", "INV-202404-2", "202403", "mar"),
			pairRow("S3", "INV-202404-2", "202404", "apr"),
		}

		out := m.Match(rows)

		require.Len(t, out, 2)
		assert.Equal(t, "mar", out[0].Str(noteCol))
		assert.Equal(t, "apr", out[1].Str(noteCol))
	})

	t.Run("first match wins for a repeated key", func(t *testing.T) {
		rows := []Row{
			pairRow("S4", "INV-202403", "2024", "year"),
			pairRow("S4", "INV-202403", "202403", "month"),
		}

		out := m.Match(rows)

		require.Len(t, out, 1)
		assert.Equal(t, "year", out[0].Str(noteCol))
	})

	t.Run("empty period only matches empty invoice number", func(t *testing.T) {
		rows := []Row{
			pairRow("S5", "", "", ""),
		}
		rows[0][noteCol] = "kept"

		out := m.Match(rows)

		require.Len(t, out, 1)
		assert.Equal(t, "kept", out[0].Str(noteCol))
	})

	t.Run("statements are resolved independently", func(t *testing.T) {
		rows := []Row{
			pairRow("S1", "INV-202403-001", "202403", "ok"),
			pairRow("S2", "INV-X", "202405", "n/a"),
			pairRow("S1", "INV-202401-002", "", ""),
		}

		out := m.Match(rows)

		assert.Equal(t, []string{"S1_INV-202403-001", "S2_INV-X"}, keysOf(m, out))
	})

	t.Run("idempotent over the same input", func(t *testing.T) {
		rows := []Row{
			pairRow("S1", "INV-202403-001", "202403", "ok"),
			pairRow("S1", "INV-202401-002", "", ""),
			pairRow("S2", "INV-X", "202405", "a"),
			pairRow("S2", "INV-Y", "202406", "b"),
		}

		assert.Equal(t, m.Match(rows), m.Match(rows))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, m.Match(nil))
	})
}
