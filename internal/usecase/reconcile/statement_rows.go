package reconcile

import (
	"strconv"

	"billing_core/internal/domain/entities"
)

// Aliases of the children joined onto billing statement rows.
const (
	AliasCustomerSite = "customer_site"
	AliasInvoice      = "invoice"
	AliasConfirmation = "ready_for_invoice"
)

// Statement columns.
const (
	ColStatementID        = "billing_statement_id"
	ColCreatedOn          = "created_on"
	ColServicePeriodStart = "service_period_start"
	ColServicePeriodEnd   = "service_period_end"
	ColStatus             = "status"
	ColPurchaseOrder      = "purchase_order"
	ColForecastData       = "forecast_data"
	ColCustomerSiteID     = "customer_site_id"
)

// Joined child columns, used with Col(alias, column).
const (
	ColSiteID             = "customer_site_id"
	ColSiteNumber         = "site_number"
	ColSiteName           = "site_name"
	ColInvoiceID          = "invoice_id"
	ColInvoiceNumber      = "invoice_number"
	ColAmount             = "amount"
	ColConfirmationID     = "ready_for_invoice_id"
	ColConfirmationNote   = "comments"
	ColConfirmationPeriod = "period"
)

var statementRegroupSpec = RegroupSpec{
	ParentKey: ColStatementID,
	ParentColumns: []string{
		ColCreatedOn,
		ColStatus,
		ColCustomerSiteID,
		ColServicePeriodStart,
		ColServicePeriodEnd,
	},
}

// BuildStatements resolves confirmation notes and rebuilds statements with
// their site and invoices, in order of first appearance.
func BuildStatements(rows []Row) ([]entities.BillingStatement, error) {
	groups, err := Regroup(NewStatementInvoiceMatcher().Match(rows), statementRegroupSpec)
	if err != nil {
		return nil, err
	}

	statements := make([]entities.BillingStatement, 0, len(groups))
	for _, g := range groups {
		parent := g.Parent()
		site := parent.Alias(AliasCustomerSite)

		statement := entities.BillingStatement{
			ID:                 g.ParentID,
			CreatedOn:          parent.Time(ColCreatedOn),
			ServicePeriodStart: parent.Time(ColServicePeriodStart),
			ServicePeriodEnd:   parent.Time(ColServicePeriodEnd),
			Status:             statusOf(parent, ColStatus),
			PurchaseOrder:      parent.Str(ColPurchaseOrder),
			ForecastData:       parent.Str(ColForecastData),
			CustomerSiteID:     parent.Str(ColCustomerSiteID),
			CustomerSite: entities.CustomerSite{
				ID:         site.Str(ColSiteID),
				SiteNumber: site.Str(ColSiteNumber),
				SiteName:   site.Str(ColSiteName),
			},
		}
		for _, inv := range g.Children(AliasInvoice, ColInvoiceID) {
			statement.Invoices = append(statement.Invoices, entities.Invoice{
				ID:                 inv.Str(ColInvoiceID),
				InvoiceNumber:      inv.Str(ColInvoiceNumber),
				Amount:             inv.Decimal(ColAmount),
				BillingStatementID: g.ParentID,
			})
		}
		for _, row := range g.Rows {
			if note := row.Str(Col(AliasConfirmation, ColConfirmationNote)); note != "" {
				statement.AmNotes = note
				break
			}
		}
		statements = append(statements, statement)
	}
	return statements, nil
}

func statusOf(r Row, column string) entities.StatementStatus {
	switch v := r[column].(type) {
	case entities.StatementStatus:
		return v
	case int:
		return entities.StatementStatus(v)
	case int64:
		return entities.StatementStatus(v)
	case string:
		if code, err := strconv.Atoi(v); err == nil {
			return entities.StatementStatus(code)
		}
		status, _ := entities.ParseStatementStatus(v)
		return status
	default:
		return 0
	}
}
