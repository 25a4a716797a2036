package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatementStatus is the lifecycle state of a billing statement. The numeric
// values are the record store's option-set codes.
type StatementStatus int

const (
	StatementStatusGenerating   StatementStatus = 126840000
	StatementStatusNeedsReview  StatementStatus = 126840001
	StatementStatusApproved     StatementStatus = 126840002
	StatementStatusSent         StatementStatus = 126840003
	StatementStatusArReview     StatementStatus = 126840004
	StatementStatusApprovalTeam StatementStatus = 126840005
	StatementStatusReadyToSend  StatementStatus = 126840006
	StatementStatusFailed       StatementStatus = 126840007
)

var statementStatusNames = map[StatementStatus]string{
	StatementStatusGenerating:   "Generating",
	StatementStatusNeedsReview:  "NeedsReview",
	StatementStatusApproved:     "Approved",
	StatementStatusSent:         "Sent",
	StatementStatusArReview:     "ArReview",
	StatementStatusApprovalTeam: "ApprovalTeam",
	StatementStatusReadyToSend:  "ReadyToSend",
	StatementStatusFailed:       "Failed",
}

func (s StatementStatus) String() string {
	if name, ok := statementStatusNames[s]; ok {
		return name
	}
	return strconv.Itoa(int(s))
}

func (s StatementStatus) Valid() bool {
	_, ok := statementStatusNames[s]
	return ok
}

// ParseStatementStatus accepts either the status name (case-insensitive) or its numeric code.
func ParseStatementStatus(v string) (StatementStatus, error) {
	v = strings.TrimSpace(v)
	for status, name := range statementStatusNames {
		if strings.EqualFold(name, v) {
			return status, nil
		}
	}
	if code, err := strconv.Atoi(v); err == nil && StatementStatus(code).Valid() {
		return StatementStatus(code), nil
	}
	return 0, fmt.Errorf("unknown statement status %q", v)
}

// BillingStatement is one site's statement for a service period.
//
// Invoices are owned by the statement; each invoice keeps only the statement id
// as back-reference.
type BillingStatement struct {
	ID                 string
	CreatedOn          time.Time
	ServicePeriodStart time.Time
	ServicePeriodEnd   time.Time
	Status             StatementStatus
	PurchaseOrder      string
	ForecastData       string
	CustomerSiteID     string
	CustomerSite       CustomerSite
	AmNotes            string
	Invoices           []Invoice
}

func (s BillingStatement) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range s.Invoices {
		total = total.Add(inv.Amount)
	}
	return total
}

// CreatedMonth is the creation month formatted as YYYY-MM.
func (s BillingStatement) CreatedMonth() string {
	if s.CreatedOn.IsZero() {
		return ""
	}
	return s.CreatedOn.Format("2006-01")
}

type Invoice struct {
	ID                 string
	InvoiceNumber      string
	Amount             decimal.Decimal
	BillingStatementID string
}

// ConfirmationRecord ("ready for invoice") is a site-level note for a billing
// period (YYYYMM). It is tied to statements only through the site.
type ConfirmationRecord struct {
	ID         string
	Note       string
	Period     string
	SiteNumber string
}
