package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// ActivityHandler handles the admin activity listing
type ActivityHandler struct {
	activity port.ActivityUsecase
	logger   *slog.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activity port.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
		logger:   logger,
	}
}

// ListOrganizationActivity lists the caller's organization members with their
// mirror state
// @Summary List organization activity
// @Tags admin
// @Produce json
// @Param orgProviderId path string true "Provider-side organization ID"
// @Success 200 {array} domain.ActivityEntry
// @Failure 403 {object} ErrorResponse
// @Router /v1/admin/organizations/{orgProviderId}/activity [get]
func (h *ActivityHandler) ListOrganizationActivity(c echo.Context) error {
	user, err := callerUser(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if !user.HasOrganization() {
		return respondError(c, h.logger, apperrors.ErrForbidden.WithDetails("no organization membership"))
	}

	// The activity listing is keyed by the provider-side organization id,
	// which the session's identity metadata carries.
	orgProviderID := c.Param("orgProviderId")
	if orgProviderID == "" {
		return respondError(c, h.logger, apperrors.Newf(apperrors.ErrCodeInvalidInput, "organization id is required"))
	}

	entries, err := h.activity.ListOrganizationActivity(c.Request().Context(), orgProviderID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, entries)
}
