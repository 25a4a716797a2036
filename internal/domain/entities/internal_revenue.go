package entities

// InternalRevenueData is the per-site composite used for cross-site revenue rollups.
type InternalRevenueData struct {
	SiteID                 string                  `json:"siteId"`
	SiteNumber             string                  `json:"siteNumber"`
	SiteName               string                  `json:"siteName"`
	Contract               Contract                `json:"contract"`
	SiteStatistics         []SiteStatisticDetail   `json:"siteStatistics"`
	FixedFees              []FixedFeeService       `json:"fixedFees"`
	LaborHourJobs          []LaborHourJob          `json:"laborHourJobs"`
	RevenueShareThresholds []RevenueShareThreshold `json:"revenueShareThresholds"`
	BillableAccounts       []BillableAccount       `json:"billableAccounts"`
	ManagementAgreement    *ManagementAgreement    `json:"managementAgreement"`
	OtherRevenues          []OtherRevenueDetail    `json:"otherRevenues"`
	OtherExpenses          []NonGLExpense          `json:"otherExpenses"`
}
