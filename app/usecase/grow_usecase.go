package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// GrowUseCase implements grow lifecycle and plant tracking business logic
type GrowUseCase struct {
	grows        port.GrowRepository
	plants       port.PlantRepository
	environments port.EnvironmentRepository
	logger       *slog.Logger
}

// NewGrowUseCase creates a new GrowUseCase instance
func NewGrowUseCase(
	grows port.GrowRepository,
	plants port.PlantRepository,
	environments port.EnvironmentRepository,
	logger *slog.Logger,
) *GrowUseCase {
	return &GrowUseCase{
		grows:        grows,
		plants:       plants,
		environments: environments,
		logger:       logger.With(slog.String("component", "grow_usecase")),
	}
}

// CreateGrow starts a new cultivation cycle in the seedling stage
func (uc *GrowUseCase) CreateGrow(ctx context.Context, orgID uuid.UUID, input *domain.Grow) (*domain.Grow, error) {
	grow, err := domain.NewGrow(orgID, input.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	grow.Notes = input.Notes

	if input.EnvironmentID != nil {
		// The environment must belong to the same organization.
		if _, err := uc.environments.GetByID(ctx, orgID, *input.EnvironmentID); err != nil {
			return nil, err
		}
		grow.EnvironmentID = input.EnvironmentID
	}

	if err := uc.grows.Create(ctx, grow); err != nil {
		return nil, err
	}

	uc.logger.Info("grow created",
		slog.String("grow_id", grow.ID.String()),
		slog.String("organization_id", orgID.String()))

	return grow, nil
}

// GetGrow returns one grow within the organization
func (uc *GrowUseCase) GetGrow(ctx context.Context, orgID, id uuid.UUID) (*domain.Grow, error) {
	return uc.grows.GetByID(ctx, orgID, id)
}

// ListGrows returns all grows for the organization
func (uc *GrowUseCase) ListGrows(ctx context.Context, orgID uuid.UUID) ([]*domain.Grow, error) {
	return uc.grows.ListByOrganization(ctx, orgID)
}

// UpdateGrow applies caller changes to an existing grow. The stage is
// advanced through AdvanceGrow only, never set directly.
func (uc *GrowUseCase) UpdateGrow(ctx context.Context, orgID uuid.UUID, input *domain.Grow) (*domain.Grow, error) {
	grow, err := uc.grows.GetByID(ctx, orgID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		grow.Name = input.Name
	}
	grow.Notes = input.Notes

	if input.EnvironmentID != nil {
		if _, err := uc.environments.GetByID(ctx, orgID, *input.EnvironmentID); err != nil {
			return nil, err
		}
		grow.EnvironmentID = input.EnvironmentID
	}

	if err := uc.grows.Update(ctx, grow); err != nil {
		return nil, err
	}

	return grow, nil
}

// DeleteGrow removes a grow and, through the schema's cascade, its plants
func (uc *GrowUseCase) DeleteGrow(ctx context.Context, orgID, id uuid.UUID) error {
	return uc.grows.Delete(ctx, orgID, id)
}

// AdvanceGrow moves a grow to its next lifecycle stage
func (uc *GrowUseCase) AdvanceGrow(ctx context.Context, orgID, id uuid.UUID) (*domain.Grow, error) {
	grow, err := uc.grows.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if err := grow.Advance(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTransition, "cannot advance grow", err)
	}

	if err := uc.grows.Update(ctx, grow); err != nil {
		return nil, err
	}

	uc.logger.Info("grow advanced",
		slog.String("grow_id", grow.ID.String()),
		slog.String("stage", string(grow.Stage)))

	return grow, nil
}

// AddPlant attaches a new plant to a grow in the organization
func (uc *GrowUseCase) AddPlant(ctx context.Context, orgID, growID uuid.UUID, input *domain.Plant) (*domain.Plant, error) {
	grow, err := uc.grows.GetByID(ctx, orgID, growID)
	if err != nil {
		return nil, err
	}
	if !grow.IsActive() {
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidTransition, "grow %s is complete", grow.ID)
	}

	plant, err := domain.NewPlant(growID, input.Tag)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	plant.StrainID = input.StrainID
	if input.Health != "" {
		if !input.Health.IsValid() {
			return nil, apperrors.NewValidationError("invalid plant health status")
		}
		plant.Health = input.Health
	}

	if err := uc.plants.Create(ctx, plant); err != nil {
		return nil, err
	}

	return plant, nil
}

// GetPlant returns one plant, scoped through its grow's organization
func (uc *GrowUseCase) GetPlant(ctx context.Context, orgID, id uuid.UUID) (*domain.Plant, error) {
	return uc.plants.GetByID(ctx, orgID, id)
}

// ListPlants returns all plants in a grow
func (uc *GrowUseCase) ListPlants(ctx context.Context, orgID, growID uuid.UUID) ([]*domain.Plant, error) {
	if _, err := uc.grows.GetByID(ctx, orgID, growID); err != nil {
		return nil, err
	}
	return uc.plants.ListByGrow(ctx, orgID, growID)
}

// UpdatePlant applies caller changes to an existing plant
func (uc *GrowUseCase) UpdatePlant(ctx context.Context, orgID uuid.UUID, input *domain.Plant) (*domain.Plant, error) {
	plant, err := uc.plants.GetByID(ctx, orgID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Tag != "" {
		plant.Tag = input.Tag
	}
	if input.Health != "" {
		if !input.Health.IsValid() {
			return nil, apperrors.NewValidationError("invalid plant health status")
		}
		plant.Health = input.Health
	}
	plant.StrainID = input.StrainID

	if err := uc.plants.Update(ctx, plant); err != nil {
		return nil, err
	}

	return plant, nil
}

// DeletePlant removes a plant from its grow
func (uc *GrowUseCase) DeletePlant(ctx context.Context, orgID, id uuid.UUID) error {
	return uc.plants.Delete(ctx, orgID, id)
}

// HarvestPlant records the harvest time for a plant
func (uc *GrowUseCase) HarvestPlant(ctx context.Context, orgID, id uuid.UUID) (*domain.Plant, error) {
	plant, err := uc.plants.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if err := plant.Harvest(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTransition, "cannot harvest plant", err)
	}

	if err := uc.plants.Update(ctx, plant); err != nil {
		return nil, err
	}

	uc.logger.Info("plant harvested",
		slog.String("plant_id", plant.ID.String()),
		slog.String("grow_id", plant.GrowID.String()))

	return plant, nil
}
