package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathStatements      = "/statements"
	PathCustomerSites   = "/customer-sites"
	PathSites           = "/sites"
	PathInternalRevenue = "/internal-revenue"
	PathPnl             = "/pnl"
	PathStatementTasks  = "/statement-tasks"
	PathEmailTasks      = "/email-tasks"
)

func addBillingRoutes(rg *gin.RouterGroup, h Handlers) {
	statements := rg.Group(PathStatements)
	{
		statements.GET("/current", h.Statements.GetCurrentStatements)
		statements.POST("/batch", h.Statements.GetStatementsByIDs)
		statements.POST("/current-ids", h.Statements.GetCurrentStatementIDs)
		statements.PATCH("/:id/status", h.Statements.UpdateStatus)
		statements.PATCH("/:id/forecast", h.Statements.UpdateForecast)
	}

	customerSites := rg.Group(PathCustomerSites)
	{
		customerSites.GET("/:site_id/statements", h.Statements.GetStatementsByCustomerSite)
		customerSites.GET("/:site_id/expense-budgets", h.Revenue.GetExpenseBudgets)
	}

	// site numbers, not customer site ids
	rg.GET(PathSites+"/:site_number/budget", h.Revenue.GetBudget)
	rg.POST(PathInternalRevenue, h.Revenue.GetInternalRevenue)
	rg.POST(PathPnl, h.Revenue.GetPnl)
	rg.POST(PathStatementTasks, h.Tasks.CreateTasks)
	rg.POST(PathEmailTasks, h.EmailTasks.CreateTasks)
}
