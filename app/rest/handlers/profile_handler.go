package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
	"growhub/app/utils/validator"
)

// ProfileHandler handles the caller-facing profile HTTP requests
type ProfileHandler struct {
	profiles  port.ProfileUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles port.ProfileUsecase, v *validator.Validator, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles:  profiles,
		validator: v,
		logger:    logger,
	}
}

// PreferencesRequest is the payload for replacing the caller's preferences
type PreferencesRequest struct {
	Measurement   string                      `json:"measurement" validate:"required,oneof=metric imperial"`
	Notifications domain.NotificationSettings `json:"notifications"`
	Display       domain.DisplaySettings      `json:"display"`
	Custom        map[string]interface{}      `json:"custom,omitempty"`
}

// GetProfile returns the caller's mirrored user
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /v1/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := callerUser(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	profile, err := h.profiles.GetProfile(c.Request().Context(), user.ProviderID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdatePreferences replaces the caller's preference blob
// @Summary Update preferences
// @Tags profile
// @Accept json
// @Produce json
// @Param body body PreferencesRequest true "Preferences"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Router /v1/profile/preferences [put]
func (h *ProfileHandler) UpdatePreferences(c echo.Context) error {
	user, err := callerUser(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	updated, err := h.profiles.UpdatePreferences(c.Request().Context(), user.ProviderID, domain.UserPreferences{
		Measurement:   domain.MeasurementSystem(req.Measurement),
		Notifications: req.Notifications,
		Display:       req.Display,
		Custom:        req.Custom,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, updated)
}
