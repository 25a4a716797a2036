package handlers

import (
	"net/http"

	request "billing_core/internal/adapter/http/dto/request"
	response "billing_core/internal/adapter/http/dto/response"
	"billing_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingStatementHandler serves billing statement reads and edits.
type BillingStatementHandler struct {
	usecase usecase.IBillingStatementUseCase
	log     *zap.Logger
}

func NewBillingStatementHandler(uc usecase.IBillingStatementUseCase, log *zap.Logger) *BillingStatementHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingStatementHandler{usecase: uc, log: log}
}

// GetCurrentStatements returns every statement still in play for the current month.
func (h *BillingStatementHandler) GetCurrentStatements(c *gin.Context) {
	statements, err := h.usecase.GetCurrentBillingStatements(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "statement", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingStatements(statements))
}

func (h *BillingStatementHandler) GetStatementsByCustomerSite(c *gin.Context) {
	statements, err := h.usecase.GetBillingStatementsByCustomerSite(c.Request.Context(), c.Param("site_id"))
	if err != nil {
		respondError(c, h.log, "statement", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingStatements(statements))
}

func (h *BillingStatementHandler) GetStatementsByIDs(c *gin.Context) {
	var payload request.StatementIDsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	statements, err := h.usecase.GetBillingStatementsByIDs(c.Request.Context(), payload.IDs)
	if err != nil {
		respondError(c, h.log, "statement", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingStatements(statements))
}

// GetCurrentStatementIDs returns the ids of the current statements of a set of sites.
func (h *BillingStatementHandler) GetCurrentStatementIDs(c *gin.Context) {
	var payload request.CustomerSiteIDsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	ids, err := h.usecase.GetBillingStatementIDsByCustomerSites(c.Request.Context(), payload.CustomerSiteIDs)
	if err != nil {
		respondError(c, h.log, "statement", err)
		return
	}
	c.JSON(http.StatusOK, response.StatementIDsResponse{IDs: ids})
}

func (h *BillingStatementHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatementStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		respondError(c, h.log, "statement", usecase.ErrInvalidStatementStatus)
		return
	}

	if err := h.usecase.UpdateStatementStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, h.log, "statement", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BillingStatementHandler) UpdateForecast(c *gin.Context) {
	var payload request.UpdateForecastRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	forecast, err := payload.ResolveForecastData()
	if err != nil {
		respondError(c, h.log, "statement", err)
		return
	}

	if err := h.usecase.UpdateForecastData(c.Request.Context(), c.Param("id"), forecast); err != nil {
		respondError(c, h.log, "statement", err)
		return
	}
	c.Status(http.StatusNoContent)
}
