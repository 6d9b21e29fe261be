package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alast0rRL/testtaxi/internal/repository"
	"github.com/Alast0rRL/testtaxi/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidRiderID),
		errors.Is(err, service.ErrInvalidOrderID),
		errors.Is(err, service.ErrInvalidChatID),
		errors.Is(err, service.ErrInvalidCity),
		errors.Is(err, service.ErrInvalidTariff),
		errors.Is(err, service.ErrInvalidTripTime),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, service.ErrEmptyMessage):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, repository.ErrDuplicatePhone),
		errors.Is(err, service.ErrOrderUnavailable):
		return http.StatusConflict

	// Forbidden/Business rule errors
	case errors.Is(err, service.ErrDriverNotRegistered):
		return http.StatusForbidden

	// Upstream push failures
	case errors.Is(err, service.ErrNotifyFailed),
		errors.Is(err, service.ErrSupportForwardFailed):
		return http.StatusBadGateway

	// Service unavailable
	case errors.Is(err, repository.ErrStoreUnavailable),
		errors.Is(err, service.ErrSupportNotConfigured):
		return http.StatusServiceUnavailable

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
