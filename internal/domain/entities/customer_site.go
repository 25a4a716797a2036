package entities

import "time"

// CustomerSite is the root of most joins.
type CustomerSite struct {
	ID                  string    `json:"id"`
	SiteNumber          string    `json:"siteNumber"`
	SiteName            string    `json:"siteName"`
	District            string    `json:"district,omitempty"`
	AccountManager      string    `json:"accountManager,omitempty"`
	Address             string    `json:"address,omitempty"`
	BillingContactEmail string    `json:"billingContactEmail,omitempty"`
	GLString            string    `json:"glString,omitempty"`
	InvoiceRecipient    string    `json:"invoiceRecipient,omitempty"`
	StartDate           time.Time `json:"startDate,omitempty"`
	CloseDate           time.Time `json:"closeDate,omitempty"`
}
