package handlers

import (
	"errors"
	"net/http"

	request "billing_core/internal/adapter/http/dto/request"
	"billing_core/internal/usecase"
	"billing_core/internal/usecase/interfaces"
	"billing_core/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatementID),
		errors.Is(err, usecase.ErrInvalidStatementStatus),
		errors.Is(err, usecase.ErrInvalidForecastData),
		errors.Is(err, usecase.ErrInvalidYear),
		errors.Is(err, usecase.ErrInvalidSiteNumber),
		errors.Is(err, usecase.ErrInvalidBillingPeriod),
		errors.Is(err, usecase.ErrInvalidCustomerSiteID),
		errors.Is(err, request.ErrInvalidForecastPayload),
		errors.Is(err, request.ErrMissingCustomerSite),
		errors.Is(err, request.ErrMissingStatement):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatementNotFound):
		return pkg.NewDomainErrorSimple("STATEMENT_NOT_FOUND", "Billing statement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "No contract found for customer site", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskAlreadyPending):
		return pkg.NewDomainErrorSimple("TASK_ALREADY_PENDING", "A statement task is already pending for this site", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailTaskAlreadyPending):
		return pkg.NewDomainErrorSimple("TASK_ALREADY_PENDING", "An email task is already pending for this statement", http.StatusConflict)
	case errors.Is(err, usecase.ErrLockUnavailable):
		return pkg.NewDomainError("RESOURCE_LOCKED", "Resource is locked by another process", err, http.StatusLocked)
	case errors.Is(err, interfaces.ErrLockConflict), errors.Is(err, interfaces.ErrLockAlreadyExists):
		return pkg.NewDomainError("LOCK_CONFLICT", "Resource was modified concurrently, retry", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrGatewayNotConfigured), errors.Is(err, interfaces.ErrGatewayUnavailable):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "Analytics gateway unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError writes the mapped error; server-side failures are logged with their cause.
func respondError(c *gin.Context, log *zap.Logger, area string, err error) {
	appErr := mapUseCaseError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("["+area+"][handler] request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
