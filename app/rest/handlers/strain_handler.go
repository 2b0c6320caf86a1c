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

// StrainHandler handles strain catalog HTTP requests
type StrainHandler struct {
	strains   port.StrainUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewStrainHandler creates a new strain handler
func NewStrainHandler(strains port.StrainUsecase, v *validator.Validator, logger *slog.Logger) *StrainHandler {
	return &StrainHandler{
		strains:   strains,
		validator: v,
		logger:    logger,
	}
}

// StrainRequest is the create/update payload for a strain
type StrainRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Genetics      string  `json:"genetics" validate:"required,oneof=indica sativa hybrid"`
	THCPercentMin float64 `json:"thc_percent_min" validate:"min=0,max=100"`
	THCPercentMax float64 `json:"thc_percent_max" validate:"min=0,max=100"`
	CBDPercentMin float64 `json:"cbd_percent_min" validate:"min=0,max=100"`
	CBDPercentMax float64 `json:"cbd_percent_max" validate:"min=0,max=100"`
	FloweringDays int     `json:"flowering_days" validate:"min=0,max=365"`
	Notes         string  `json:"notes" validate:"max=5000"`
}

func (r *StrainRequest) toDomain() *domain.Strain {
	return &domain.Strain{
		Name:          r.Name,
		Genetics:      domain.GeneticType(r.Genetics),
		THCPercentMin: r.THCPercentMin,
		THCPercentMax: r.THCPercentMax,
		CBDPercentMin: r.CBDPercentMin,
		CBDPercentMax: r.CBDPercentMax,
		FloweringDays: r.FloweringDays,
		Notes:         r.Notes,
	}
}

// CreateStrain creates a new strain
// @Summary Create strain
// @Tags strains
// @Accept json
// @Produce json
// @Param body body StrainRequest true "Strain"
// @Success 201 {object} domain.Strain
// @Failure 400 {object} ErrorResponse
// @Router /v1/strains [post]
func (h *StrainHandler) CreateStrain(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req StrainRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	strain, err := h.strains.CreateStrain(c.Request().Context(), orgID, req.toDomain())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, strain)
}

// GetStrain returns one strain
// @Summary Get strain
// @Tags strains
// @Produce json
// @Param strainId path string true "Strain ID"
// @Success 200 {object} domain.Strain
// @Failure 404 {object} ErrorResponse
// @Router /v1/strains/{strainId} [get]
func (h *StrainHandler) GetStrain(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "strainId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	strain, err := h.strains.GetStrain(c.Request().Context(), orgID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, strain)
}

// ListStrains lists the organization's strains
// @Summary List strains
// @Tags strains
// @Produce json
// @Success 200 {array} domain.Strain
// @Router /v1/strains [get]
func (h *StrainHandler) ListStrains(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	strains, err := h.strains.ListStrains(c.Request().Context(), orgID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, strains)
}

// UpdateStrain updates an existing strain
// @Summary Update strain
// @Tags strains
// @Accept json
// @Produce json
// @Param strainId path string true "Strain ID"
// @Param body body StrainRequest true "Strain"
// @Success 200 {object} domain.Strain
// @Failure 404 {object} ErrorResponse
// @Router /v1/strains/{strainId} [put]
func (h *StrainHandler) UpdateStrain(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "strainId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req StrainRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	input := req.toDomain()
	input.ID = id

	strain, err := h.strains.UpdateStrain(c.Request().Context(), orgID, input)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, strain)
}

// DeleteStrain removes a strain
// @Summary Delete strain
// @Tags strains
// @Param strainId path string true "Strain ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/strains/{strainId} [delete]
func (h *StrainHandler) DeleteStrain(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "strainId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.strains.DeleteStrain(c.Request().Context(), orgID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
