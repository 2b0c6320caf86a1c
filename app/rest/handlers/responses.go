package handlers

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "growhub/app/utils/errors"
)

// ErrorResponse is the common error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a simple success message envelope
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the basic health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// HealthStatus represents one dependency's health
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Checks    map[string]HealthStatus `json:"checks"`
}

// respondError translates an error into the common error envelope. Unknown
// errors become opaque 500s so internals never leak to callers.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	status := apperrors.HTTPStatus(err)

	if appErr, ok := apperrors.AsAppError(err); ok {
		if status >= 500 {
			logger.Error("request failed", "path", c.Path(), "error", err)
		}
		return c.JSON(status, ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Details: appErr.Details,
		})
	}

	logger.Error("request failed", "path", c.Path(), "error", err)
	return c.JSON(status, ErrorResponse{
		Error: "internal server error",
		Code:  string(apperrors.ErrCodeInternalError),
	})
}
