package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type SiteStatisticDetailType int

const (
	SiteStatisticDetailTypeBudget   SiteStatisticDetailType = 126840000
	SiteStatisticDetailTypeForecast SiteStatisticDetailType = 126840001
	SiteStatisticDetailTypeActual   SiteStatisticDetailType = 126840002
)

// SiteStatisticDetail is one per-day (or per-month) detail row of a site's
// statistic for a billing period (YYYY-MM).
type SiteStatisticDetail struct {
	ID              string                  `json:"id"`
	SiteStatisticID string                  `json:"siteStatisticId,omitempty"`
	CustomerSiteID  string                  `json:"customerSiteId,omitempty"`
	BillingPeriod   string                  `json:"billingPeriod,omitempty"`
	Type            SiteStatisticDetailType `json:"type"`
	Date            time.Time               `json:"date"`
	ValetDaily      decimal.Decimal         `json:"valetDaily"`
	ValetMonthly    decimal.Decimal         `json:"valetMonthly"`
	ValetOvernight  decimal.Decimal         `json:"valetOvernight"`
	ValetComps      decimal.Decimal         `json:"valetComps"`
	SelfDaily       decimal.Decimal         `json:"selfDaily"`
	SelfMonthly     decimal.Decimal         `json:"selfMonthly"`
	SelfOvernight   decimal.Decimal         `json:"selfOvernight"`
	SelfComps       decimal.Decimal         `json:"selfComps"`
	OccupiedRooms   decimal.Decimal         `json:"occupiedRooms"`
	Occupancy       decimal.Decimal         `json:"occupancy"`
	BaseRevenue     decimal.Decimal         `json:"baseRevenue"`
	ExternalRevenue decimal.Decimal         `json:"externalRevenue"`
	DriveInRatio    float64                 `json:"driveInRatio"`
	CaptureRatio    float64                 `json:"captureRatio"`
}

// ApplyRatios derives drive-in and capture ratios (percentages) from overnight
// counts. Both stay zero when there are no occupied rooms or overnight cars.
func (d *SiteStatisticDetail) ApplyRatios() {
	d.DriveInRatio, d.CaptureRatio = 0, 0
	if !d.OccupiedRooms.IsPositive() {
		return
	}
	overnight := d.SelfOvernight.Add(d.ValetOvernight)
	hundred := decimal.NewFromInt(100)
	d.DriveInRatio = overnight.Div(d.OccupiedRooms).Mul(hundred).InexactFloat64()
	if overnight.IsPositive() {
		d.CaptureRatio = d.ValetOvernight.Div(overnight).Mul(hundred).InexactFloat64()
	}
}

// PnlBySite is the EDW budget-vs-actual summary for a set of sites.
type PnlBySite struct {
	PnlBySite []SitePnl `json:"pnlBySite"`
}

type SitePnl struct {
	SiteID   string         `json:"siteId"`
	Forecast []PnlMonthLine `json:"forecast,omitempty"`
	Budget   []PnlMonthLine `json:"budget,omitempty"`
	Actual   []PnlMonthLine `json:"actual,omitempty"`
}

type PnlMonthLine struct {
	MonthNum     int             `json:"monthNum"`
	Revenue      decimal.Decimal `json:"revenue"`
	Payroll      decimal.Decimal `json:"payroll"`
	Claims       decimal.Decimal `json:"claims"`
	OtherExpense decimal.Decimal `json:"otherExpense"`
}
