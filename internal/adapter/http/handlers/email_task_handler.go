package handlers

import (
	"net/http"

	request "billing_core/internal/adapter/http/dto/request"
	response "billing_core/internal/adapter/http/dto/response"
	"billing_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmailTaskHandler struct {
	usecase usecase.IEmailTaskUseCase
	log     *zap.Logger
}

func NewEmailTaskHandler(uc usecase.IEmailTaskUseCase, log *zap.Logger) *EmailTaskHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailTaskHandler{usecase: uc, log: log}
}

// CreateTasks enqueues statement emails for one statement or a list of statements.
func (h *EmailTaskHandler) CreateTasks(c *gin.Context) {
	var payload request.EmailTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	ctx := c.Request.Context()
	if payload.IsBatch() {
		ids, err := h.usecase.AddTasks(ctx, payload.BillingStatementIDs)
		if err != nil {
			respondError(c, h.log, "email-task", err)
			return
		}
		h.log.Info("[email-task][handler] tasks queued", zap.Int("count", len(ids)))
		c.JSON(http.StatusCreated, response.EmailTaskResponse{TaskIDs: ids})
		return
	}

	statementID, err := payload.ResolveBillingStatementID()
	if err != nil {
		respondError(c, h.log, "email-task", err)
		return
	}
	id, err := h.usecase.AddTask(ctx, statementID, payload.SendAction)
	if err != nil {
		respondError(c, h.log, "email-task", err)
		return
	}
	h.log.Info("[email-task][handler] task queued", zap.String("billing_statement_id", statementID), zap.String("task_id", id))
	c.JSON(http.StatusCreated, response.EmailTaskResponse{TaskIDs: []string{id}})
}
