package response

import (
	"encoding/json"
	"time"

	"billing_core/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

type BillingStatementResponse struct {
	ID                 string            `json:"id"`
	CreatedOn          time.Time         `json:"createdOn"`
	CreatedMonth       string            `json:"createdMonth"`
	ServicePeriodStart time.Time         `json:"servicePeriodStart"`
	ServicePeriodEnd   time.Time         `json:"servicePeriodEnd"`
	Status             string            `json:"status"`
	StatusCode         int               `json:"statusCode"`
	PurchaseOrder      string            `json:"purchaseOrder,omitempty"`
	ForecastData       json.RawMessage   `json:"forecastData,omitempty"`
	CustomerSiteID     string            `json:"customerSiteId"`
	SiteNumber         string            `json:"siteNumber"`
	SiteName           string            `json:"siteName"`
	AmNotes            string            `json:"amNotes,omitempty"`
	TotalAmount        decimal.Decimal   `json:"totalAmount"`
	Invoices           []InvoiceResponse `json:"invoices"`
}

func FromBillingStatement(s entities.BillingStatement) BillingStatementResponse {
	res := BillingStatementResponse{
		ID:                 s.ID,
		CreatedOn:          s.CreatedOn,
		CreatedMonth:       s.CreatedMonth(),
		ServicePeriodStart: s.ServicePeriodStart,
		ServicePeriodEnd:   s.ServicePeriodEnd,
		Status:             s.Status.String(),
		StatusCode:         int(s.Status),
		PurchaseOrder:      s.PurchaseOrder,
		CustomerSiteID:     s.CustomerSiteID,
		SiteNumber:         s.CustomerSite.SiteNumber,
		SiteName:           s.CustomerSite.SiteName,
		AmNotes:            s.AmNotes,
		TotalAmount:        s.TotalAmount(),
		Invoices:           make([]InvoiceResponse, 0, len(s.Invoices)),
	}
	// non-JSON documents are omitted
	if json.Valid([]byte(s.ForecastData)) {
		res.ForecastData = json.RawMessage(s.ForecastData)
	}
	for _, inv := range s.Invoices {
		res.Invoices = append(res.Invoices, InvoiceResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			Amount:        inv.Amount,
		})
	}
	return res
}

func FromBillingStatements(statements []entities.BillingStatement) []BillingStatementResponse {
	out := make([]BillingStatementResponse, 0, len(statements))
	for _, s := range statements {
		out = append(out, FromBillingStatement(s))
	}
	return out
}

type StatementIDsResponse struct {
	IDs []string `json:"ids"`
}

type ExpenseBudgetResponse struct {
	SiteID                string          `json:"siteId"`
	Period                string          `json:"period"`
	PayrollExpenseBudget  decimal.Decimal `json:"payrollExpenseBudget"`
	BillableExpenseBudget decimal.Decimal `json:"billableExpenseBudget"`
	OtherExpenseBudget    decimal.Decimal `json:"otherExpenseBudget"`
}

type StatementTaskResponse struct {
	TaskIDs []string `json:"taskIds"`
}

type EmailTaskResponse struct {
	TaskIDs []string `json:"taskIds"`
}
