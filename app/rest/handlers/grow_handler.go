package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
	"growhub/app/utils/validator"
)

// GrowHandler handles grow and plant HTTP requests
type GrowHandler struct {
	grows     port.GrowUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewGrowHandler creates a new grow handler
func NewGrowHandler(grows port.GrowUsecase, v *validator.Validator, logger *slog.Logger) *GrowHandler {
	return &GrowHandler{
		grows:     grows,
		validator: v,
		logger:    logger,
	}
}

// GrowRequest is the create/update payload for a grow
type GrowRequest struct {
	Name          string     `json:"name" validate:"required,max=200"`
	EnvironmentID *uuid.UUID `json:"environment_id,omitempty"`
	Notes         string     `json:"notes" validate:"max=5000"`
}

// PlantRequest is the create/update payload for a plant
type PlantRequest struct {
	Tag      string     `json:"tag" validate:"required,max=100"`
	StrainID *uuid.UUID `json:"strain_id,omitempty"`
	Health   string     `json:"health" validate:"omitempty,oneof=healthy stressed pest_issue nutrient_deficiency dead"`
}

// CreateGrow starts a new cultivation cycle
// @Summary Create grow
// @Tags grows
// @Accept json
// @Produce json
// @Param body body GrowRequest true "Grow"
// @Success 201 {object} domain.Grow
// @Failure 400 {object} ErrorResponse
// @Router /v1/grows [post]
func (h *GrowHandler) CreateGrow(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req GrowRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	grow, err := h.grows.CreateGrow(c.Request().Context(), orgID, &domain.Grow{
		Name:          req.Name,
		EnvironmentID: req.EnvironmentID,
		Notes:         req.Notes,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, grow)
}

// GetGrow returns one grow
// @Summary Get grow
// @Tags grows
// @Produce json
// @Param growId path string true "Grow ID"
// @Success 200 {object} domain.Grow
// @Failure 404 {object} ErrorResponse
// @Router /v1/grows/{growId} [get]
func (h *GrowHandler) GetGrow(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "growId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	grow, err := h.grows.GetGrow(c.Request().Context(), orgID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, grow)
}

// ListGrows lists the organization's grows
// @Summary List grows
// @Tags grows
// @Produce json
// @Success 200 {array} domain.Grow
// @Router /v1/grows [get]
func (h *GrowHandler) ListGrows(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	grows, err := h.grows.ListGrows(c.Request().Context(), orgID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, grows)
}

// UpdateGrow updates an existing grow
// @Summary Update grow
// @Tags grows
// @Accept json
// @Produce json
// @Param growId path string true "Grow ID"
// @Param body body GrowRequest true "Grow"
// @Success 200 {object} domain.Grow
// @Failure 404 {object} ErrorResponse
// @Router /v1/grows/{growId} [put]
func (h *GrowHandler) UpdateGrow(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "growId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req GrowRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	grow, err := h.grows.UpdateGrow(c.Request().Context(), orgID, &domain.Grow{
		ID:            id,
		Name:          req.Name,
		EnvironmentID: req.EnvironmentID,
		Notes:         req.Notes,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, grow)
}

// DeleteGrow removes a grow and its plants
// @Summary Delete grow
// @Tags grows
// @Param growId path string true "Grow ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/grows/{growId} [delete]
func (h *GrowHandler) DeleteGrow(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "growId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.grows.DeleteGrow(c.Request().Context(), orgID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdvanceGrow moves a grow to its next lifecycle stage
// @Summary Advance grow stage
// @Tags grows
// @Produce json
// @Param growId path string true "Grow ID"
// @Success 200 {object} domain.Grow
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/grows/{growId}/advance [post]
func (h *GrowHandler) AdvanceGrow(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "growId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	grow, err := h.grows.AdvanceGrow(c.Request().Context(), orgID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, grow)
}

// AddPlant attaches a new plant to a grow
// @Summary Add plant
// @Tags plants
// @Accept json
// @Produce json
// @Param growId path string true "Grow ID"
// @Param body body PlantRequest true "Plant"
// @Success 201 {object} domain.Plant
// @Failure 400 {object} ErrorResponse
// @Router /v1/grows/{growId}/plants [post]
func (h *GrowHandler) AddPlant(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	growID, err := pathUUID(c, "growId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req PlantRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	plant, err := h.grows.AddPlant(c.Request().Context(), orgID, growID, &domain.Plant{
		Tag:      req.Tag,
		StrainID: req.StrainID,
		Health:   domain.PlantHealth(req.Health),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, plant)
}

// ListPlants lists the plants in a grow
// @Summary List plants
// @Tags plants
// @Produce json
// @Param growId path string true "Grow ID"
// @Success 200 {array} domain.Plant
// @Router /v1/grows/{growId}/plants [get]
func (h *GrowHandler) ListPlants(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	growID, err := pathUUID(c, "growId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	plants, err := h.grows.ListPlants(c.Request().Context(), orgID, growID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, plants)
}

// GetPlant returns one plant
// @Summary Get plant
// @Tags plants
// @Produce json
// @Param plantId path string true "Plant ID"
// @Success 200 {object} domain.Plant
// @Failure 404 {object} ErrorResponse
// @Router /v1/plants/{plantId} [get]
func (h *GrowHandler) GetPlant(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "plantId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	plant, err := h.grows.GetPlant(c.Request().Context(), orgID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, plant)
}

// UpdatePlant updates an existing plant
// @Summary Update plant
// @Tags plants
// @Accept json
// @Produce json
// @Param plantId path string true "Plant ID"
// @Param body body PlantRequest true "Plant"
// @Success 200 {object} domain.Plant
// @Failure 404 {object} ErrorResponse
// @Router /v1/plants/{plantId} [put]
func (h *GrowHandler) UpdatePlant(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "plantId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req PlantRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	plant, err := h.grows.UpdatePlant(c.Request().Context(), orgID, &domain.Plant{
		ID:       id,
		Tag:      req.Tag,
		StrainID: req.StrainID,
		Health:   domain.PlantHealth(req.Health),
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, plant)
}

// DeletePlant removes a plant
// @Summary Delete plant
// @Tags plants
// @Param plantId path string true "Plant ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/plants/{plantId} [delete]
func (h *GrowHandler) DeletePlant(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "plantId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.grows.DeletePlant(c.Request().Context(), orgID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HarvestPlant records a plant's harvest
// @Summary Harvest plant
// @Tags plants
// @Produce json
// @Param plantId path string true "Plant ID"
// @Success 200 {object} domain.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/plants/{plantId}/harvest [post]
func (h *GrowHandler) HarvestPlant(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "plantId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	plant, err := h.grows.HarvestPlant(c.Request().Context(), orgID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, plant)
}
