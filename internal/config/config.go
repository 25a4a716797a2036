package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the process configuration resolved from the environment.
//
// Values are read once at startup; `.env` files are loaded by godotenv/autoload
// imported from cmd/api.
type Config struct {
	Port     int    `validate:"min=1,max=65535"`
	LogLevel string `validate:"oneof=debug info warn error"`

	AWSRegion          string `validate:"required"`
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string `validate:"omitempty,url"`

	Tables Tables

	EDW EDWConfig
}

// Tables lists the DynamoDB tables backing the record store.
type Tables struct {
	Statements             string `validate:"required"`
	Invoices               string `validate:"required"`
	Confirmations          string `validate:"required"`
	CustomerSites          string `validate:"required"`
	Contracts              string `validate:"required"`
	FixedFees              string `validate:"required"`
	LaborHourJobs          string `validate:"required"`
	RevenueShareThresholds string `validate:"required"`
	BillableAccounts       string `validate:"required"`
	ManagementAgreements   string `validate:"required"`
	OtherRevenues          string `validate:"required"`
	NonGLExpenses          string `validate:"required"`
	SiteStatisticDetails   string `validate:"required"`
	BillableExpenses       string `validate:"required"`
	ResourceLocks          string `validate:"required"`
	StatementTasks         string `validate:"required"`
	EmailTasks             string `validate:"required"`
}

// EDWConfig configures the analytics gateway client. The gateway is optional:
// when Endpoint is empty the budget/PnL routes answer 503.
type EDWConfig struct {
	Endpoint       string `validate:"omitempty,url"`
	TokenURL       string `validate:"required_with=Endpoint,omitempty,url"`
	ClientID       string `validate:"required_with=Endpoint"`
	ClientSecret   string `validate:"required_with=Endpoint"`
	Scope          string
	TimeoutSeconds int `validate:"min=1"`
}

var validate = validator.New()

// Load reads the configuration from environment variables.
//
// Supported env vars (local-friendly defaults):
//   - PORT (default: 8080), LOG_LEVEL (default: info)
//   - AWS_REGION (default: us-east-1), AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - <NAME>_TABLE per table (see Tables)
//   - EDW_DATA_API_ENDPOINT, AZURE_SERVICE_CLIENT_ID, AZURE_SERVICE_CLIENT_SECRET,
//     AZURE_SERVICE_CLIENT_TENANT or EDW_TOKEN_URL, EDW_SCOPE, EDW_TIMEOUT_SECONDS
func Load() (Config, error) {
	port, err := getenvInt("PORT", 8080)
	if err != nil {
		return Config{}, err
	}
	timeout, err := getenvInt("EDW_TIMEOUT_SECONDS", 60)
	if err != nil {
		return Config{}, err
	}

	clientID := os.Getenv("AZURE_SERVICE_CLIENT_ID")
	cfg := Config{
		Port:               port,
		LogLevel:           strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		Tables: Tables{
			Statements:             getenvDefault("STATEMENTS_TABLE", "billing_statements"),
			Invoices:               getenvDefault("INVOICES_TABLE", "invoices"),
			Confirmations:          getenvDefault("CONFIRMATIONS_TABLE", "ready_for_invoice"),
			CustomerSites:          getenvDefault("CUSTOMER_SITES_TABLE", "customer_sites"),
			Contracts:              getenvDefault("CONTRACTS_TABLE", "contracts"),
			FixedFees:              getenvDefault("FIXED_FEES_TABLE", "fixed_fee_services"),
			LaborHourJobs:          getenvDefault("LABOR_HOUR_JOBS_TABLE", "labor_hour_jobs"),
			RevenueShareThresholds: getenvDefault("REVENUE_SHARE_THRESHOLDS_TABLE", "revenue_share_thresholds"),
			BillableAccounts:       getenvDefault("BILLABLE_ACCOUNTS_TABLE", "billable_accounts"),
			ManagementAgreements:   getenvDefault("MANAGEMENT_AGREEMENTS_TABLE", "management_agreements"),
			OtherRevenues:          getenvDefault("OTHER_REVENUES_TABLE", "other_revenue_details"),
			NonGLExpenses:          getenvDefault("NON_GL_EXPENSES_TABLE", "non_gl_expenses"),
			SiteStatisticDetails:   getenvDefault("SITE_STATISTIC_DETAILS_TABLE", "site_statistic_details"),
			BillableExpenses:       getenvDefault("BILLABLE_EXPENSES_TABLE", "billable_expenses"),
			ResourceLocks:          getenvDefault("RESOURCE_LOCKS_TABLE", "resource_locks"),
			StatementTasks:         getenvDefault("STATEMENT_TASKS_TABLE", "statement_generation_tasks"),
			EmailTasks:             getenvDefault("EMAIL_TASKS_TABLE", "email_generation_tasks"),
		},
		EDW: EDWConfig{
			Endpoint:       os.Getenv("EDW_DATA_API_ENDPOINT"),
			TokenURL:       tokenURL(),
			ClientID:       clientID,
			ClientSecret:   os.Getenv("AZURE_SERVICE_CLIENT_SECRET"),
			Scope:          getenvDefault("EDW_SCOPE", defaultScope(clientID)),
			TimeoutSeconds: timeout,
		},
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func tokenURL() string {
	if v := os.Getenv("EDW_TOKEN_URL"); v != "" {
		return v
	}
	if tenant := os.Getenv("AZURE_SERVICE_CLIENT_TENANT"); tenant != "" {
		return "https://login.microsoftonline.com/" + tenant + "/oauth2/v2.0/token"
	}
	return ""
}

func defaultScope(clientID string) string {
	if clientID == "" {
		return ""
	}
	return "api://" + clientID + "/.default"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
