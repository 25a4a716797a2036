package entities

import "github.com/shopspring/decimal"

// BillableExpense holds a site's monthly expense budgets. Period is YYYYMM.
type BillableExpense struct {
	SiteID                string
	Period                string
	PayrollExpenseBudget  decimal.Decimal
	BillableExpenseBudget decimal.Decimal
	OtherExpenseBudget    decimal.Decimal
}
