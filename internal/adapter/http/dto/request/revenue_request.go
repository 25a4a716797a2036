package request

// SiteYearRequest selects a set of sites for a calendar year.
type SiteYearRequest struct {
	SiteNumbers []string `json:"siteNumbers" binding:"required,min=1"`
	Year        int      `json:"year" binding:"required,min=1,max=9999"`
}

// ExpenseBudgetQuery selects a budget month.
type ExpenseBudgetQuery struct {
	Year  int `form:"year" binding:"required,min=1,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// BudgetQuery selects one or more billing periods (YYYY-MM), e.g. ?period=2024-01&period=2024-02.
type BudgetQuery struct {
	Periods []string `form:"period" binding:"required,min=1"`
}
