package reconcile

import "strings"

// InvoiceConfirmationMatcher resolves which confirmation note applies to which
// invoice when a statement's invoices and its site's confirmations were joined
// side by side, producing one row per (invoice, confirmation) pair.
type InvoiceConfirmationMatcher struct {
	StatementIDColumn   string
	InvoiceNumberColumn string
	PeriodColumn        string
	NoteColumn          string
}

// NewStatementInvoiceMatcher returns the matcher for billing statement rows.
func NewStatementInvoiceMatcher() InvoiceConfirmationMatcher {
	return InvoiceConfirmationMatcher{
		StatementIDColumn:   ColStatementID,
		InvoiceNumberColumn: Col(AliasInvoice, ColInvoiceNumber),
		PeriodColumn:        Col(AliasConfirmation, ColConfirmationPeriod),
		NoteColumn:          Col(AliasConfirmation, ColConfirmationNote),
	}
}

// Match returns at most one row per (statement, invoice number).
//
// A row matches when its invoice number contains the confirmation period and the
// (statement, invoice number) key is still unclaimed; matches are kept in
// encounter order. Statements without any match then contribute each of their
// still-unclaimed rows once, with the confirmation note cleared. Statements with
// at least one match contribute nothing more, so their unmatched invoices are
// dropped. Input rows are never modified.
func (m InvoiceConfirmationMatcher) Match(rows []Row) []Row {
	claimed := make(map[string]struct{}, len(rows))
	byStatement := make(map[string][]Row)
	matched := make(map[string]int)
	var order []string
	var out []Row

	for _, row := range rows {
		statementID := row.Str(m.StatementIDColumn)
		invoiceNumber := row.Str(m.InvoiceNumberColumn)
		period := row.Str(m.PeriodColumn)

		if _, ok := byStatement[statementID]; !ok {
			order = append(order, statementID)
		}
		byStatement[statementID] = append(byStatement[statementID], row)

		if !periodMatches(invoiceNumber, period) {
			continue
		}
		key := compositeKey(statementID, invoiceNumber)
		if _, taken := claimed[key]; taken {
			continue
		}
		claimed[key] = struct{}{}
		matched[statementID]++
		out = append(out, row)
	}

	for _, statementID := range order {
		if matched[statementID] > 0 {
			continue
		}
		for _, row := range byStatement[statementID] {
			key := compositeKey(statementID, row.Str(m.InvoiceNumberColumn))
			if _, taken := claimed[key]; taken {
				continue
			}
			claimed[key] = struct{}{}
			unresolved := row.Clone()
			unresolved[m.NoteColumn] = nil
			out = append(out, unresolved)
		}
	}
	return out
}

// An empty period only matches an empty invoice number.
func periodMatches(invoiceNumber, period string) bool {
	if period == "" {
		return invoiceNumber == ""
	}
	return strings.Contains(invoiceNumber, period)
}

func compositeKey(statementID, invoiceNumber string) string {
	return statementID + "_" + invoiceNumber
}
