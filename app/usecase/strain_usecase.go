package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// StrainUseCase implements strain catalog business logic
type StrainUseCase struct {
	strains port.StrainRepository
	logger  *slog.Logger
}

// NewStrainUseCase creates a new StrainUseCase instance
func NewStrainUseCase(strains port.StrainRepository, logger *slog.Logger) *StrainUseCase {
	return &StrainUseCase{
		strains: strains,
		logger:  logger.With(slog.String("component", "strain_usecase")),
	}
}

// CreateStrain validates and stores a new strain for the organization
func (uc *StrainUseCase) CreateStrain(ctx context.Context, orgID uuid.UUID, input *domain.Strain) (*domain.Strain, error) {
	strain, err := domain.NewStrain(orgID, input.Name, input.Genetics)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	strain.THCPercentMin = input.THCPercentMin
	strain.THCPercentMax = input.THCPercentMax
	strain.CBDPercentMin = input.CBDPercentMin
	strain.CBDPercentMax = input.CBDPercentMax
	strain.FloweringDays = input.FloweringDays
	strain.Notes = input.Notes

	if err := strain.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.strains.Create(ctx, strain); err != nil {
		return nil, err
	}

	uc.logger.Info("strain created",
		slog.String("strain_id", strain.ID.String()),
		slog.String("organization_id", orgID.String()))

	return strain, nil
}

// GetStrain returns one strain within the organization
func (uc *StrainUseCase) GetStrain(ctx context.Context, orgID, id uuid.UUID) (*domain.Strain, error) {
	return uc.strains.GetByID(ctx, orgID, id)
}

// ListStrains returns all strains for the organization
func (uc *StrainUseCase) ListStrains(ctx context.Context, orgID uuid.UUID) ([]*domain.Strain, error) {
	return uc.strains.ListByOrganization(ctx, orgID)
}

// UpdateStrain applies caller changes to an existing strain
func (uc *StrainUseCase) UpdateStrain(ctx context.Context, orgID uuid.UUID, input *domain.Strain) (*domain.Strain, error) {
	strain, err := uc.strains.GetByID(ctx, orgID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		strain.Name = input.Name
	}
	if input.Genetics != "" {
		if !input.Genetics.IsValid() {
			return nil, apperrors.NewValidationError("invalid genetic type")
		}
		strain.Genetics = input.Genetics
	}
	strain.THCPercentMin = input.THCPercentMin
	strain.THCPercentMax = input.THCPercentMax
	strain.CBDPercentMin = input.CBDPercentMin
	strain.CBDPercentMax = input.CBDPercentMax
	strain.FloweringDays = input.FloweringDays
	strain.Notes = input.Notes

	if err := strain.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.strains.Update(ctx, strain); err != nil {
		return nil, err
	}

	return strain, nil
}

// DeleteStrain removes a strain from the organization's catalog
func (uc *StrainUseCase) DeleteStrain(ctx context.Context, orgID, id uuid.UUID) error {
	return uc.strains.Delete(ctx, orgID, id)
}
