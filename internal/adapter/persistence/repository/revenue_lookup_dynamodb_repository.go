package repository

import (
	"context"
	"fmt"
	"strings"

	"billing_core/internal/config"
	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"
	"billing_core/internal/usecase/paging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	siteNumberIndex   = "site_number-index"
	customerSiteIndex = "customer_site_id-index"
	contractIndex     = "contract_id-index"
)

type customerSiteItem struct {
	ID                  string `dynamodbav:"id"`
	SiteNumber          string `dynamodbav:"site_number"`
	SiteName            string `dynamodbav:"site_name"`
	District            string `dynamodbav:"district,omitempty"`
	AccountManager      string `dynamodbav:"account_manager,omitempty"`
	Address             string `dynamodbav:"address,omitempty"`
	BillingContactEmail string `dynamodbav:"billing_contact_email,omitempty"`
	GLString            string `dynamodbav:"gl_string,omitempty"`
	InvoiceRecipient    string `dynamodbav:"invoice_recipient,omitempty"`
	StartDate           string `dynamodbav:"start_date,omitempty"`
	CloseDate           string `dynamodbav:"close_date,omitempty"`
}

type contractItem struct {
	ID                    string `dynamodbav:"id"`
	CustomerSiteID        string `dynamodbav:"customer_site_id"`
	BillingType           string `dynamodbav:"billing_type"`
	ContractType          string `dynamodbav:"contract_type"`
	PurchaseOrder         string `dynamodbav:"purchase_order,omitempty"`
	IsCpiEscalatorEnabled bool   `dynamodbav:"is_cpi_escalator_enabled"`
	IncrementAmount       string `dynamodbav:"increment_amount,omitempty"`
	IncrementMonth        *int   `dynamodbav:"increment_month,omitempty"`
	EscalatorTriggerDate  string `dynamodbav:"escalator_trigger_date,omitempty"`
	CpiValue              string `dynamodbav:"cpi_value,omitempty"`
	OccupiedRoomRate      string `dynamodbav:"occupied_room_rate,omitempty"`
}

type fixedFeeItem struct {
	ID          string `dynamodbav:"id"`
	ContractID  string `dynamodbav:"contract_id"`
	Name        string `dynamodbav:"name"`
	Code        string `dynamodbav:"code"`
	Fee         string `dynamodbav:"fee"`
	DisplayName string `dynamodbav:"display_name,omitempty"`
	StartDate   string `dynamodbav:"start_date,omitempty"`
	EndDate     string `dynamodbav:"end_date,omitempty"`
}

type laborHourJobItem struct {
	ID           string `dynamodbav:"id"`
	ContractID   string `dynamodbav:"contract_id"`
	Name         string `dynamodbav:"name"`
	Code         string `dynamodbav:"code"`
	JobCode      string `dynamodbav:"job_code"`
	Rate         string `dynamodbav:"rate"`
	OvertimeRate string `dynamodbav:"overtime_rate"`
	StartDate    string `dynamodbav:"start_date,omitempty"`
	EndDate      string `dynamodbav:"end_date,omitempty"`
}

type revenueShareThresholdItem struct {
	ID                     string `dynamodbav:"id"`
	ContractID             string `dynamodbav:"contract_id"`
	Name                   string `dynamodbav:"name"`
	RevenueCodeData        string `dynamodbav:"revenue_code_data,omitempty"`
	TierData               string `dynamodbav:"tier_data,omitempty"`
	InvoiceLineDisplayName string `dynamodbav:"invoice_line_display_name,omitempty"`
}

type billableAccountItem struct {
	ID                        string `dynamodbav:"id"`
	ContractID                string `dynamodbav:"contract_id"`
	PayrollTaxesEnabled       bool   `dynamodbav:"payroll_taxes_enabled"`
	PayrollTaxesBillingType   string `dynamodbav:"payroll_taxes_billing_type,omitempty"`
	PayrollTaxesPercentage    string `dynamodbav:"payroll_taxes_percentage,omitempty"`
	PayrollSupportEnabled     bool   `dynamodbav:"payroll_support_enabled"`
	PayrollSupportBillingType string `dynamodbav:"payroll_support_billing_type,omitempty"`
	PayrollSupportAmount      string `dynamodbav:"payroll_support_amount,omitempty"`
	PayrollSupportPayrollType string `dynamodbav:"payroll_support_payroll_type,omitempty"`
	AdditionalPayrollAmount   string `dynamodbav:"additional_payroll_amount,omitempty"`
	PayrollAccountsData       string `dynamodbav:"payroll_accounts_data,omitempty"`
	ExpenseAccountsData       string `dynamodbav:"expense_accounts_data,omitempty"`
}

type managementAgreementItem struct {
	ID                  string `dynamodbav:"id"`
	ContractID          string `dynamodbav:"contract_id"`
	ManagementFeeType   string `dynamodbav:"management_fee_type"`
	FixedFeeAmount      string `dynamodbav:"fixed_fee_amount,omitempty"`
	PerLaborHourRate    string `dynamodbav:"per_labor_hour_rate,omitempty"`
	RevenuePercentage   string `dynamodbav:"revenue_percentage,omitempty"`
	InsuranceType       string `dynamodbav:"insurance_type,omitempty"`
	ClaimsEnabled       bool   `dynamodbav:"claims_enabled"`
	ProfitShareEnabled  bool   `dynamodbav:"profit_share_enabled"`
	ProfitShareTierData string `dynamodbav:"profit_share_tier_data,omitempty"`
}

type nonGLExpenseItem struct {
	ID                 string `dynamodbav:"id"`
	ContractID         string `dynamodbav:"contract_id"`
	Name               string `dynamodbav:"name"`
	ExpenseType        string `dynamodbav:"expense_type"`
	ExpensePayrollType string `dynamodbav:"expense_payroll_type,omitempty"`
	Value              string `dynamodbav:"value"`
	Sequence           int    `dynamodbav:"sequence"`
}

type otherRevenueItem struct {
	ID                string `dynamodbav:"id"`
	CustomerSiteID    string `dynamodbav:"customer_site_id"`
	MonthYear         string `dynamodbav:"month_year"`
	BillableExpense   string `dynamodbav:"billable_expense"`
	Credits           string `dynamodbav:"credits"`
	GPOFees           string `dynamodbav:"gpo_fees"`
	RevenueValidation string `dynamodbav:"revenue_validation"`
	SigningBonus      string `dynamodbav:"signing_bonus"`
	ClientPaidExpense string `dynamodbav:"client_paid_expense"`
}

type siteStatisticDetailItem struct {
	ID              string `dynamodbav:"id"`
	SiteStatisticID string `dynamodbav:"site_statistic_id"`
	CustomerSiteID  string `dynamodbav:"customer_site_id"`
	BillingPeriod   string `dynamodbav:"billing_period"`
	Type            int    `dynamodbav:"type"`
	Date            string `dynamodbav:"date"`
	ValetDaily      string `dynamodbav:"valet_daily"`
	ValetMonthly    string `dynamodbav:"valet_monthly"`
	ValetOvernight  string `dynamodbav:"valet_overnight"`
	ValetComps      string `dynamodbav:"valet_comps"`
	SelfDaily       string `dynamodbav:"self_daily"`
	SelfMonthly     string `dynamodbav:"self_monthly"`
	SelfOvernight   string `dynamodbav:"self_overnight"`
	SelfComps       string `dynamodbav:"self_comps"`
	OccupiedRooms   string `dynamodbav:"occupied_rooms"`
	Occupancy       string `dynamodbav:"occupancy"`
	BaseRevenue     string `dynamodbav:"base_revenue"`
	ExternalRevenue string `dynamodbav:"external_revenue"`
}

// RevenueLookupDynamoRepository resolves sites and their contract configuration.
//
// Table requirements:
//   - customer sites GSI site_number-index (PK: site_number)
//   - contracts, other revenues GSI customer_site_id-index (PK: customer_site_id)
//   - site statistic details GSI customer_site_id-index (PK: customer_site_id, SK: billing_period)
//   - contract children GSI contract_id-index (PK: contract_id)
type RevenueLookupDynamoRepository struct {
	ddb    DynamoDBAPI
	tables config.Tables
}

var _ interfaces.IRevenueLookupRepository = (*RevenueLookupDynamoRepository)(nil)

func NewRevenueLookupDynamoRepository(ddb DynamoDBAPI, tables config.Tables) *RevenueLookupDynamoRepository {
	return &RevenueLookupDynamoRepository{ddb: ddb, tables: tables}
}

func (r *RevenueLookupDynamoRepository) SitesByNumbers(ctx context.Context, siteNumbers []string) ([]entities.CustomerSite, error) {
	return lookupByKeys(ctx, r.ddb, siteNumbers, indexQuery(r.tables.CustomerSites, siteNumberIndex, "site_number"), fromCustomerSiteItem)
}

func (r *RevenueLookupDynamoRepository) ContractsBySites(ctx context.Context, siteIDs []string) ([]entities.Contract, error) {
	return lookupByKeys(ctx, r.ddb, siteIDs, indexQuery(r.tables.Contracts, customerSiteIndex, "customer_site_id"), fromContractItem)
}

func (r *RevenueLookupDynamoRepository) FixedFeesByContracts(ctx context.Context, contractIDs []string) ([]entities.FixedFeeService, error) {
	return lookupByKeys(ctx, r.ddb, contractIDs, indexQuery(r.tables.FixedFees, contractIndex, "contract_id"), fromFixedFeeItem)
}

func (r *RevenueLookupDynamoRepository) LaborHourJobsByContracts(ctx context.Context, contractIDs []string) ([]entities.LaborHourJob, error) {
	return lookupByKeys(ctx, r.ddb, contractIDs, indexQuery(r.tables.LaborHourJobs, contractIndex, "contract_id"), fromLaborHourJobItem)
}

func (r *RevenueLookupDynamoRepository) RevenueShareThresholdsByContracts(ctx context.Context, contractIDs []string) ([]entities.RevenueShareThreshold, error) {
	return lookupByKeys(ctx, r.ddb, contractIDs, indexQuery(r.tables.RevenueShareThresholds, contractIndex, "contract_id"), fromRevenueShareThresholdItem)
}

func (r *RevenueLookupDynamoRepository) BillableAccountsByContracts(ctx context.Context, contractIDs []string) ([]entities.BillableAccount, error) {
	return lookupByKeys(ctx, r.ddb, contractIDs, indexQuery(r.tables.BillableAccounts, contractIndex, "contract_id"), fromBillableAccountItem)
}

func (r *RevenueLookupDynamoRepository) ManagementAgreementsByContracts(ctx context.Context, contractIDs []string) ([]entities.ManagementAgreement, error) {
	return lookupByKeys(ctx, r.ddb, contractIDs, indexQuery(r.tables.ManagementAgreements, contractIndex, "contract_id"), fromManagementAgreementItem)
}

func (r *RevenueLookupDynamoRepository) NonGLExpensesByContracts(ctx context.Context, contractIDs []string) ([]entities.NonGLExpense, error) {
	return lookupByKeys(ctx, r.ddb, contractIDs, indexQuery(r.tables.NonGLExpenses, contractIndex, "contract_id"), fromNonGLExpenseItem)
}

func (r *RevenueLookupDynamoRepository) OtherRevenuesBySites(ctx context.Context, siteIDs []string, monthYears []string) ([]entities.OtherRevenueDetail, error) {
	if len(monthYears) == 0 {
		return []entities.OtherRevenueDetail{}, nil
	}
	base := indexQuery(r.tables.OtherRevenues, customerSiteIndex, "customer_site_id")
	placeholders := make([]string, 0, len(monthYears))
	months := make(map[string]types.AttributeValue, len(monthYears))
	for i, m := range monthYears {
		p := fmt.Sprintf(":m%d", i)
		placeholders = append(placeholders, p)
		months[p] = &types.AttributeValueMemberS{Value: m}
	}
	filter := "#month_year IN (" + strings.Join(placeholders, ", ") + ")"

	return lookupByKeys(ctx, r.ddb, siteIDs, func(key string) *dynamodb.QueryInput {
		in := base(key)
		in.FilterExpression = aws.String(filter)
		in.ExpressionAttributeNames["#month_year"] = "month_year"
		for p, v := range months {
			in.ExpressionAttributeValues[p] = v
		}
		return in
	}, fromOtherRevenueItem)
}

func (r *RevenueLookupDynamoRepository) SiteStatisticDetails(ctx context.Context, siteIDs []string, periodPrefix string, req paging.Request) (paging.Page[entities.SiteStatisticDetail], error) {
	if len(siteIDs) > paging.MaxBatchSize {
		return paging.Page[entities.SiteStatisticDetail]{}, fmt.Errorf("lookup accepts at most %d site ids, got %d", paging.MaxBatchSize, len(siteIDs))
	}
	return queryKeysPage(ctx, r.ddb, siteIDs, req, func(key string) *dynamodb.QueryInput {
		return &dynamodb.QueryInput{
			TableName:              aws.String(r.tables.SiteStatisticDetails),
			IndexName:              aws.String(customerSiteIndex),
			KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#period, :prefix)"),
			ExpressionAttributeNames: map[string]string{
				"#pk":     "customer_site_id",
				"#period": "billing_period",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":     &types.AttributeValueMemberS{Value: key},
				":prefix": &types.AttributeValueMemberS{Value: periodPrefix},
			},
		}
	}, decodeMapped(fromSiteStatisticDetailItem))
}

// lookupByKeys drains one GSI query per key and maps every item to its entity.
func lookupByKeys[I, E any](ctx context.Context, ddb DynamoDBAPI, keys []string, build func(string) *dynamodb.QueryInput, mapFn func(I) E) ([]E, error) {
	return queryKeysAll(ctx, ddb, keys, build, decodeMapped(mapFn))
}

func decodeMapped[I, E any](mapFn func(I) E) func(map[string]types.AttributeValue) (E, error) {
	return func(item map[string]types.AttributeValue) (E, error) {
		it, err := decodeItem[I](item)
		if err != nil {
			var zero E
			return zero, err
		}
		return mapFn(it), nil
	}
}

func fromCustomerSiteItem(it customerSiteItem) entities.CustomerSite {
	return entities.CustomerSite{
		ID:                  it.ID,
		SiteNumber:          it.SiteNumber,
		SiteName:            it.SiteName,
		District:            it.District,
		AccountManager:      it.AccountManager,
		Address:             it.Address,
		BillingContactEmail: it.BillingContactEmail,
		GLString:            it.GLString,
		InvoiceRecipient:    it.InvoiceRecipient,
		StartDate:           parseTime(it.StartDate),
		CloseDate:           parseTime(it.CloseDate),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:                    it.ID,
		CustomerSiteID:        it.CustomerSiteID,
		BillingType:           it.BillingType,
		ContractType:          it.ContractType,
		PurchaseOrder:         it.PurchaseOrder,
		IsCpiEscalatorEnabled: it.IsCpiEscalatorEnabled,
		IncrementAmount:       parseOptDecimal(it.IncrementAmount),
		IncrementMonth:        it.IncrementMonth,
		EscalatorTriggerDate:  parseOptTime(it.EscalatorTriggerDate),
		CpiValue:              parseOptDecimal(it.CpiValue),
		OccupiedRoomRate:      parseOptDecimal(it.OccupiedRoomRate),
	}
}

func fromFixedFeeItem(it fixedFeeItem) entities.FixedFeeService {
	return entities.FixedFeeService{
		ID:          it.ID,
		ContractID:  it.ContractID,
		Name:        it.Name,
		Code:        it.Code,
		Fee:         parseDecimal(it.Fee),
		DisplayName: it.DisplayName,
		StartDate:   parseOptTime(it.StartDate),
		EndDate:     parseOptTime(it.EndDate),
	}
}

func fromLaborHourJobItem(it laborHourJobItem) entities.LaborHourJob {
	return entities.LaborHourJob{
		ID:           it.ID,
		ContractID:   it.ContractID,
		Name:         it.Name,
		Code:         it.Code,
		JobCode:      it.JobCode,
		Rate:         parseDecimal(it.Rate),
		OvertimeRate: parseDecimal(it.OvertimeRate),
		StartDate:    parseOptTime(it.StartDate),
		EndDate:      parseOptTime(it.EndDate),
	}
}

func fromRevenueShareThresholdItem(it revenueShareThresholdItem) entities.RevenueShareThreshold {
	return entities.RevenueShareThreshold{
		ID:                     it.ID,
		ContractID:             it.ContractID,
		Name:                   it.Name,
		RevenueCodeData:        it.RevenueCodeData,
		TierData:               it.TierData,
		InvoiceLineDisplayName: it.InvoiceLineDisplayName,
	}
}

func fromBillableAccountItem(it billableAccountItem) entities.BillableAccount {
	return entities.BillableAccount{
		ID:                        it.ID,
		ContractID:                it.ContractID,
		PayrollTaxesEnabled:       it.PayrollTaxesEnabled,
		PayrollTaxesBillingType:   it.PayrollTaxesBillingType,
		PayrollTaxesPercentage:    parseOptDecimal(it.PayrollTaxesPercentage),
		PayrollSupportEnabled:     it.PayrollSupportEnabled,
		PayrollSupportBillingType: it.PayrollSupportBillingType,
		PayrollSupportAmount:      parseOptDecimal(it.PayrollSupportAmount),
		PayrollSupportPayrollType: it.PayrollSupportPayrollType,
		AdditionalPayrollAmount:   parseOptDecimal(it.AdditionalPayrollAmount),
		PayrollAccountsData:       it.PayrollAccountsData,
		ExpenseAccountsData:       it.ExpenseAccountsData,
	}
}

func fromManagementAgreementItem(it managementAgreementItem) entities.ManagementAgreement {
	return entities.ManagementAgreement{
		ID:                  it.ID,
		ContractID:          it.ContractID,
		ManagementFeeType:   it.ManagementFeeType,
		FixedFeeAmount:      parseOptDecimal(it.FixedFeeAmount),
		PerLaborHourRate:    parseOptDecimal(it.PerLaborHourRate),
		RevenuePercentage:   parseOptDecimal(it.RevenuePercentage),
		InsuranceType:       it.InsuranceType,
		ClaimsEnabled:       it.ClaimsEnabled,
		ProfitShareEnabled:  it.ProfitShareEnabled,
		ProfitShareTierData: it.ProfitShareTierData,
	}
}

func fromNonGLExpenseItem(it nonGLExpenseItem) entities.NonGLExpense {
	return entities.NonGLExpense{
		ID:                 it.ID,
		ContractID:         it.ContractID,
		Name:               it.Name,
		ExpenseType:        it.ExpenseType,
		ExpensePayrollType: it.ExpensePayrollType,
		Value:              parseDecimal(it.Value),
		Sequence:           it.Sequence,
	}
}

func fromOtherRevenueItem(it otherRevenueItem) entities.OtherRevenueDetail {
	return entities.OtherRevenueDetail{
		ID:                it.ID,
		CustomerSiteID:    it.CustomerSiteID,
		MonthYear:         it.MonthYear,
		BillableExpense:   parseDecimal(it.BillableExpense),
		Credits:           parseDecimal(it.Credits),
		GPOFees:           parseDecimal(it.GPOFees),
		RevenueValidation: parseDecimal(it.RevenueValidation),
		SigningBonus:      parseDecimal(it.SigningBonus),
		ClientPaidExpense: parseDecimal(it.ClientPaidExpense),
	}
}

func fromSiteStatisticDetailItem(it siteStatisticDetailItem) entities.SiteStatisticDetail {
	d := entities.SiteStatisticDetail{
		ID:              it.ID,
		SiteStatisticID: it.SiteStatisticID,
		CustomerSiteID:  it.CustomerSiteID,
		BillingPeriod:   it.BillingPeriod,
		Type:            entities.SiteStatisticDetailType(it.Type),
		Date:            parseTime(it.Date),
		ValetDaily:      parseDecimal(it.ValetDaily),
		ValetMonthly:    parseDecimal(it.ValetMonthly),
		ValetOvernight:  parseDecimal(it.ValetOvernight),
		ValetComps:      parseDecimal(it.ValetComps),
		SelfDaily:       parseDecimal(it.SelfDaily),
		SelfMonthly:     parseDecimal(it.SelfMonthly),
		SelfOvernight:   parseDecimal(it.SelfOvernight),
		SelfComps:       parseDecimal(it.SelfComps),
		OccupiedRooms:   parseDecimal(it.OccupiedRooms),
		Occupancy:       parseDecimal(it.Occupancy),
		BaseRevenue:     parseDecimal(it.BaseRevenue),
		ExternalRevenue: parseDecimal(it.ExternalRevenue),
	}
	d.ApplyRatios()
	return d
}
