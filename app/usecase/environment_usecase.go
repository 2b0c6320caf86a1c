package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// EnvironmentUseCase implements grow-space business logic
type EnvironmentUseCase struct {
	environments port.EnvironmentRepository
	logger       *slog.Logger
}

// NewEnvironmentUseCase creates a new EnvironmentUseCase instance
func NewEnvironmentUseCase(environments port.EnvironmentRepository, logger *slog.Logger) *EnvironmentUseCase {
	return &EnvironmentUseCase{
		environments: environments,
		logger:       logger.With(slog.String("component", "environment_usecase")),
	}
}

// CreateEnvironment validates and stores a new environment
func (uc *EnvironmentUseCase) CreateEnvironment(ctx context.Context, orgID uuid.UUID, input *domain.Environment) (*domain.Environment, error) {
	env, err := domain.NewEnvironment(orgID, input.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	applyEnvironmentSetpoints(env, input)

	if err := env.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.environments.Create(ctx, env); err != nil {
		return nil, err
	}

	uc.logger.Info("environment created",
		slog.String("environment_id", env.ID.String()),
		slog.String("organization_id", orgID.String()))

	return env, nil
}

// GetEnvironment returns one environment within the organization
func (uc *EnvironmentUseCase) GetEnvironment(ctx context.Context, orgID, id uuid.UUID) (*domain.Environment, error) {
	return uc.environments.GetByID(ctx, orgID, id)
}

// ListEnvironments returns all environments for the organization
func (uc *EnvironmentUseCase) ListEnvironments(ctx context.Context, orgID uuid.UUID) ([]*domain.Environment, error) {
	return uc.environments.ListByOrganization(ctx, orgID)
}

// UpdateEnvironment applies caller changes to an existing environment
func (uc *EnvironmentUseCase) UpdateEnvironment(ctx context.Context, orgID uuid.UUID, input *domain.Environment) (*domain.Environment, error) {
	env, err := uc.environments.GetByID(ctx, orgID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		env.Name = input.Name
	}
	applyEnvironmentSetpoints(env, input)

	if err := env.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.environments.Update(ctx, env); err != nil {
		return nil, err
	}

	return env, nil
}

// DeleteEnvironment removes an environment. Grows keep running, their
// environment reference is nulled by the schema.
func (uc *EnvironmentUseCase) DeleteEnvironment(ctx context.Context, orgID, id uuid.UUID) error {
	return uc.environments.Delete(ctx, orgID, id)
}

func applyEnvironmentSetpoints(env, input *domain.Environment) {
	env.LightHoursOn = input.LightHoursOn
	env.TempMinC = input.TempMinC
	env.TempMaxC = input.TempMaxC
	env.HumidityMinPct = input.HumidityMinPct
	env.HumidityMaxPct = input.HumidityMaxPct
	env.CO2PPM = input.CO2PPM
}
