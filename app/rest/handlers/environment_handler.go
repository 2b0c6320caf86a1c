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

// EnvironmentHandler handles grow-space HTTP requests
type EnvironmentHandler struct {
	environments port.EnvironmentUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewEnvironmentHandler creates a new environment handler
func NewEnvironmentHandler(environments port.EnvironmentUsecase, v *validator.Validator, logger *slog.Logger) *EnvironmentHandler {
	return &EnvironmentHandler{
		environments: environments,
		validator:    v,
		logger:       logger,
	}
}

// EnvironmentRequest is the create/update payload for an environment
type EnvironmentRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	LightHoursOn   int     `json:"light_hours_on" validate:"min=0,max=24"`
	TempMinC       float64 `json:"temp_min_c"`
	TempMaxC       float64 `json:"temp_max_c"`
	HumidityMinPct float64 `json:"humidity_min_pct" validate:"min=0,max=100"`
	HumidityMaxPct float64 `json:"humidity_max_pct" validate:"min=0,max=100"`
	CO2PPM         int     `json:"co2_ppm" validate:"min=0"`
}

func (r *EnvironmentRequest) toDomain() *domain.Environment {
	return &domain.Environment{
		Name:           r.Name,
		LightHoursOn:   r.LightHoursOn,
		TempMinC:       r.TempMinC,
		TempMaxC:       r.TempMaxC,
		HumidityMinPct: r.HumidityMinPct,
		HumidityMaxPct: r.HumidityMaxPct,
		CO2PPM:         r.CO2PPM,
	}
}

// CreateEnvironment creates a new environment
// @Summary Create environment
// @Tags environments
// @Accept json
// @Produce json
// @Param body body EnvironmentRequest true "Environment"
// @Success 201 {object} domain.Environment
// @Failure 400 {object} ErrorResponse
// @Router /v1/environments [post]
func (h *EnvironmentHandler) CreateEnvironment(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req EnvironmentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	env, err := h.environments.CreateEnvironment(c.Request().Context(), orgID, req.toDomain())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, env)
}

// GetEnvironment returns one environment
// @Summary Get environment
// @Tags environments
// @Produce json
// @Param environmentId path string true "Environment ID"
// @Success 200 {object} domain.Environment
// @Failure 404 {object} ErrorResponse
// @Router /v1/environments/{environmentId} [get]
func (h *EnvironmentHandler) GetEnvironment(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "environmentId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	env, err := h.environments.GetEnvironment(c.Request().Context(), orgID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, env)
}

// ListEnvironments lists the organization's environments
// @Summary List environments
// @Tags environments
// @Produce json
// @Success 200 {array} domain.Environment
// @Router /v1/environments [get]
func (h *EnvironmentHandler) ListEnvironments(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	envs, err := h.environments.ListEnvironments(c.Request().Context(), orgID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, envs)
}

// UpdateEnvironment updates an existing environment
// @Summary Update environment
// @Tags environments
// @Accept json
// @Produce json
// @Param environmentId path string true "Environment ID"
// @Param body body EnvironmentRequest true "Environment"
// @Success 200 {object} domain.Environment
// @Failure 404 {object} ErrorResponse
// @Router /v1/environments/{environmentId} [put]
func (h *EnvironmentHandler) UpdateEnvironment(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "environmentId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req EnvironmentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	input := req.toDomain()
	input.ID = id

	env, err := h.environments.UpdateEnvironment(c.Request().Context(), orgID, input)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, env)
}

// DeleteEnvironment removes an environment
// @Summary Delete environment
// @Tags environments
// @Param environmentId path string true "Environment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/environments/{environmentId} [delete]
func (h *EnvironmentHandler) DeleteEnvironment(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "environmentId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.environments.DeleteEnvironment(c.Request().Context(), orgID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
