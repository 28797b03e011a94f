package handlers

import (
	"errors"
	"net/http"

	request "oficina_nova_brasil/internal/adapter/http/dto/request"
	"oficina_nova_brasil/internal/usecase"
	"oficina_nova_brasil/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

var notFoundCodes = []struct {
	err     error
	code    string
	message string
}{
	{usecase.ErrClientNotFound, "CLIENT_NOT_FOUND", "Client not found"},
	{usecase.ErrCarNotFound, "CAR_NOT_FOUND", "Car not found"},
	{usecase.ErrEmployeeNotFound, "EMPLOYEE_NOT_FOUND", "Employee not found"},
	{usecase.ErrServiceNotFound, "SERVICE_NOT_FOUND", "Service not found"},
	{usecase.ErrServiceOrderNotFound, "SERVICE_ORDER_NOT_FOUND", "Service order not found"},
	{usecase.ErrOrderItemNotFound, "ORDER_ITEM_NOT_FOUND", "Service order item not found"},
}

// mapError translates use-case errors into the transport envelope.
// Validation messages are safe to echo back; anything unexpected is not.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("VALIDATION_FAILED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingReference):
		return pkg.NewDomainError("MISSING_REFERENCE", err.Error(), err, http.StatusUnprocessableEntity)
	}
	for _, nf := range notFoundCodes {
		if errors.Is(err, nf.err) {
			return pkg.NewDomainError(nf.code, nf.message, err, http.StatusNotFound)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, log *zap.Logger, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeBindError(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
