package handlers

import (
	"net/http"

	request "billing_core/internal/adapter/http/dto/request"
	response "billing_core/internal/adapter/http/dto/response"
	"billing_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatementTaskHandler struct {
	usecase usecase.IStatementTaskUseCase
	log     *zap.Logger
}

func NewStatementTaskHandler(uc usecase.IStatementTaskUseCase, log *zap.Logger) *StatementTaskHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatementTaskHandler{usecase: uc, log: log}
}

// CreateTasks enqueues statement generation for one site or a list of sites.
func (h *StatementTaskHandler) CreateTasks(c *gin.Context) {
	var payload request.StatementTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	ctx := c.Request.Context()
	if payload.IsBatch() {
		ids, err := h.usecase.AddTasks(ctx, payload.CustomerSiteIDs)
		if err != nil {
			respondError(c, h.log, "statement-task", err)
			return
		}
		h.log.Info("[statement-task][handler] tasks queued", zap.Int("count", len(ids)))
		c.JSON(http.StatusCreated, response.StatementTaskResponse{TaskIDs: ids})
		return
	}

	siteID, err := payload.ResolveCustomerSiteID()
	if err != nil {
		respondError(c, h.log, "statement-task", err)
		return
	}
	id, err := h.usecase.AddTask(ctx, siteID, payload.ServicePeriodStart)
	if err != nil {
		respondError(c, h.log, "statement-task", err)
		return
	}
	h.log.Info("[statement-task][handler] task queued", zap.String("customer_site_id", siteID), zap.String("task_id", id))
	c.JSON(http.StatusCreated, response.StatementTaskResponse{TaskIDs: []string{id}})
}
