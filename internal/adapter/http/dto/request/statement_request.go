package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"billing_core/internal/domain/entities"
)

var (
	ErrInvalidForecastPayload = errors.New("forecast data must be a JSON document")
	ErrMissingCustomerSite    = errors.New("customer site id is required")
	ErrMissingStatement       = errors.New("billing statement id is required")
)

// StatementIDsRequest selects statements by id.
type StatementIDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// CustomerSiteIDsRequest selects current statements of a set of sites.
type CustomerSiteIDsRequest struct {
	CustomerSiteIDs []string `json:"customerSiteIds" binding:"required,min=1"`
}

// UpdateStatementStatusRequest accepts the status name or its numeric code.
type UpdateStatementStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatementStatusRequest) ResolveStatus() (entities.StatementStatus, error) {
	return entities.ParseStatementStatus(r.Status)
}

// UpdateForecastRequest carries the forecast document stored verbatim on the statement.
type UpdateForecastRequest struct {
	ForecastData json.RawMessage `json:"forecastData"`
}

func (r UpdateForecastRequest) ResolveForecastData() (string, error) {
	raw := strings.TrimSpace(string(r.ForecastData))
	if raw == "" || raw == "null" {
		return "", ErrInvalidForecastPayload
	}
	return raw, nil
}

// StatementTaskRequest enqueues generation for one site (optionally for a given
// service period) or for a list of sites.
type StatementTaskRequest struct {
	CustomerSiteID     string     `json:"customerSiteId"`
	CustomerSiteIDs    []string   `json:"customerSiteIds"`
	ServicePeriodStart *time.Time `json:"servicePeriodStart"`
}

// IsBatch reports whether the request names a list of sites.
func (r StatementTaskRequest) IsBatch() bool {
	return len(r.CustomerSiteIDs) > 0
}

func (r StatementTaskRequest) ResolveCustomerSiteID() (string, error) {
	if v := strings.TrimSpace(r.CustomerSiteID); v != "" {
		return v, nil
	}
	return "", ErrMissingCustomerSite
}

// EmailTaskRequest enqueues an email for one statement, or SendAll emails for a
// list of statements.
type EmailTaskRequest struct {
	BillingStatementID  string   `json:"billingStatementId"`
	BillingStatementIDs []string `json:"billingStatementIds"`
	SendAction          string   `json:"sendAction"`
}

// IsBatch reports whether the request names a list of statements.
func (r EmailTaskRequest) IsBatch() bool {
	return len(r.BillingStatementIDs) > 0
}

func (r EmailTaskRequest) ResolveBillingStatementID() (string, error) {
	if v := strings.TrimSpace(r.BillingStatementID); v != "" {
		return v, nil
	}
	return "", ErrMissingStatement
}
