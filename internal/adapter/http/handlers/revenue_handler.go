package handlers

import (
	"fmt"
	"net/http"

	request "billing_core/internal/adapter/http/dto/request"
	response "billing_core/internal/adapter/http/dto/response"
	"billing_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RevenueHandler serves revenue rollups, analytics budgets and expense budgets.
type RevenueHandler struct {
	internalRevenue usecase.IInternalRevenueUseCase
	siteStatistics  usecase.ISiteStatisticUseCase
	expenseBudgets  usecase.IExpenseBudgetUseCase
	log             *zap.Logger
}

func NewRevenueHandler(
	internalRevenue usecase.IInternalRevenueUseCase,
	siteStatistics usecase.ISiteStatisticUseCase,
	expenseBudgets usecase.IExpenseBudgetUseCase,
	log *zap.Logger,
) *RevenueHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RevenueHandler{
		internalRevenue: internalRevenue,
		siteStatistics:  siteStatistics,
		expenseBudgets:  expenseBudgets,
		log:             log,
	}
}

func (h *RevenueHandler) GetInternalRevenue(c *gin.Context) {
	var payload request.SiteYearRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	data, err := h.internalRevenue.GetInternalRevenueData(c.Request.Context(), payload.SiteNumbers, payload.Year)
	if err != nil {
		respondError(c, h.log, "internal-revenue", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *RevenueHandler) GetPnl(c *gin.Context) {
	var payload request.SiteYearRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	pnl, err := h.siteStatistics.GetPnlData(c.Request.Context(), payload.SiteNumbers, payload.Year)
	if err != nil {
		respondError(c, h.log, "pnl", err)
		return
	}
	c.JSON(http.StatusOK, pnl)
}

func (h *RevenueHandler) GetBudget(c *gin.Context) {
	var query request.BudgetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondAppError(c, errInvalidQuery)
		return
	}

	details, err := h.siteStatistics.GetBudgetDataForRange(c.Request.Context(), c.Param("site_number"), query.Periods)
	if err != nil {
		respondError(c, h.log, "budget", err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetExpenseBudgets never fails on lookup faults; missing budgets read as zero.
func (h *RevenueHandler) GetExpenseBudgets(c *gin.Context) {
	var query request.ExpenseBudgetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondAppError(c, errInvalidQuery)
		return
	}

	ctx := c.Request.Context()
	siteID := c.Param("site_id")
	c.JSON(http.StatusOK, response.ExpenseBudgetResponse{
		SiteID:                siteID,
		Period:                fmt.Sprintf("%04d%02d", query.Year, query.Month),
		PayrollExpenseBudget:  h.expenseBudgets.PayrollExpenseBudget(ctx, siteID, query.Year, query.Month),
		BillableExpenseBudget: h.expenseBudgets.BillableExpenseBudget(ctx, siteID, query.Year, query.Month),
		OtherExpenseBudget:    h.expenseBudgets.OtherExpenseBudget(ctx, siteID, query.Year, query.Month),
	})
}
