package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is the billing configuration of a customer site. Child configuration
// records reference it by ContractID only.
type Contract struct {
	ID                    string           `json:"contractId"`
	CustomerSiteID        string           `json:"customerSiteId"`
	BillingType           string           `json:"billingType"`
	ContractType          string           `json:"contractType"`
	PurchaseOrder         string           `json:"purchaseOrder,omitempty"`
	IsCpiEscalatorEnabled bool             `json:"isCpiEscalatorEnabled"`
	IncrementAmount       *decimal.Decimal `json:"incrementAmount,omitempty"`
	IncrementMonth        *int             `json:"incrementMonth,omitempty"`
	EscalatorTriggerDate  *time.Time       `json:"escalatorTriggerDate,omitempty"`
	CpiValue              *decimal.Decimal `json:"cpiValue,omitempty"`
	OccupiedRoomRate      *decimal.Decimal `json:"occupiedRoomRate,omitempty"`
}

type FixedFeeService struct {
	ID          string          `json:"id"`
	ContractID  string          `json:"contractId"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Fee         decimal.Decimal `json:"fee"`
	DisplayName string          `json:"displayName,omitempty"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
}

type LaborHourJob struct {
	ID           string          `json:"id"`
	ContractID   string          `json:"contractId"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	JobCode      string          `json:"jobCode"`
	Rate         decimal.Decimal `json:"rate"`
	OvertimeRate decimal.Decimal `json:"overtimeRate"`
	StartDate    *time.Time      `json:"startDate,omitempty"`
	EndDate      *time.Time      `json:"endDate,omitempty"`
}

type RevenueShareThreshold struct {
	ID                     string `json:"id"`
	ContractID             string `json:"contractId"`
	Name                   string `json:"name"`
	RevenueCodeData        string `json:"revenueCodeData,omitempty"`
	TierData               string `json:"tierData,omitempty"`
	InvoiceLineDisplayName string `json:"invoiceLineDisplayName,omitempty"`
}

type BillableAccount struct {
	ID                        string           `json:"id"`
	ContractID                string           `json:"contractId"`
	PayrollTaxesEnabled       bool             `json:"payrollTaxesEnabled"`
	PayrollTaxesBillingType   string           `json:"payrollTaxesBillingType,omitempty"`
	PayrollTaxesPercentage    *decimal.Decimal `json:"payrollTaxesPercentage,omitempty"`
	PayrollSupportEnabled     bool             `json:"payrollSupportEnabled"`
	PayrollSupportBillingType string           `json:"payrollSupportBillingType,omitempty"`
	PayrollSupportAmount      *decimal.Decimal `json:"payrollSupportAmount,omitempty"`
	PayrollSupportPayrollType string           `json:"payrollSupportPayrollType,omitempty"`
	AdditionalPayrollAmount   *decimal.Decimal `json:"additionalPayrollAmount,omitempty"`
	PayrollAccountsData       string           `json:"payrollAccountsData,omitempty"`
	ExpenseAccountsData       string           `json:"expenseAccountsData,omitempty"`
}

type ManagementAgreement struct {
	ID                  string           `json:"id"`
	ContractID          string           `json:"contractId"`
	ManagementFeeType   string           `json:"managementFeeType"`
	FixedFeeAmount      *decimal.Decimal `json:"fixedFeeAmount,omitempty"`
	PerLaborHourRate    *decimal.Decimal `json:"perLaborHourRate,omitempty"`
	RevenuePercentage   *decimal.Decimal `json:"revenuePercentage,omitempty"`
	InsuranceType       string           `json:"insuranceType,omitempty"`
	ClaimsEnabled       bool             `json:"claimsEnabled"`
	ProfitShareEnabled  bool             `json:"profitShareEnabled"`
	ProfitShareTierData string           `json:"profitShareTierData,omitempty"`
}

type NonGLExpense struct {
	ID                 string          `json:"id"`
	ContractID         string          `json:"contractId"`
	Name               string          `json:"name"`
	ExpenseType        string          `json:"expenseType"`
	ExpensePayrollType string          `json:"expensePayrollType,omitempty"`
	Value              decimal.Decimal `json:"value"`
	Sequence           int             `json:"sequence"`
}

// OtherRevenueDetail is keyed by site and month (YYYY-MM), not by contract.
type OtherRevenueDetail struct {
	ID                string          `json:"id"`
	CustomerSiteID    string          `json:"customerSiteId"`
	MonthYear         string          `json:"monthYear"`
	BillableExpense   decimal.Decimal `json:"billableExpense"`
	Credits           decimal.Decimal `json:"credits"`
	GPOFees           decimal.Decimal `json:"gpoFees"`
	RevenueValidation decimal.Decimal `json:"revenueValidation"`
	SigningBonus      decimal.Decimal `json:"signingBonus"`
	ClientPaidExpense decimal.Decimal `json:"clientPaidExpense"`
}
