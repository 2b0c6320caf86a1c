package port

//go:generate mockgen -source=usecase_port.go -destination=../mocks/mock_usecase_port.go

import (
	"context"

	"github.com/google/uuid"

	"growhub/app/domain"
)

// StrainUsecase defines strain business logic
type StrainUsecase interface {
	CreateStrain(ctx context.Context, orgID uuid.UUID, strain *domain.Strain) (*domain.Strain, error)
	GetStrain(ctx context.Context, orgID, id uuid.UUID) (*domain.Strain, error)
	ListStrains(ctx context.Context, orgID uuid.UUID) ([]*domain.Strain, error)
	UpdateStrain(ctx context.Context, orgID uuid.UUID, strain *domain.Strain) (*domain.Strain, error)
	DeleteStrain(ctx context.Context, orgID, id uuid.UUID) error
}

// GrowUsecase defines grow and plant business logic
type GrowUsecase interface {
	CreateGrow(ctx context.Context, orgID uuid.UUID, grow *domain.Grow) (*domain.Grow, error)
	GetGrow(ctx context.Context, orgID, id uuid.UUID) (*domain.Grow, error)
	ListGrows(ctx context.Context, orgID uuid.UUID) ([]*domain.Grow, error)
	UpdateGrow(ctx context.Context, orgID uuid.UUID, grow *domain.Grow) (*domain.Grow, error)
	DeleteGrow(ctx context.Context, orgID, id uuid.UUID) error
	AdvanceGrow(ctx context.Context, orgID, id uuid.UUID) (*domain.Grow, error)

	AddPlant(ctx context.Context, orgID, growID uuid.UUID, plant *domain.Plant) (*domain.Plant, error)
	GetPlant(ctx context.Context, orgID, id uuid.UUID) (*domain.Plant, error)
	ListPlants(ctx context.Context, orgID, growID uuid.UUID) ([]*domain.Plant, error)
	UpdatePlant(ctx context.Context, orgID uuid.UUID, plant *domain.Plant) (*domain.Plant, error)
	DeletePlant(ctx context.Context, orgID, id uuid.UUID) error
	HarvestPlant(ctx context.Context, orgID, id uuid.UUID) (*domain.Plant, error)
}

// EnvironmentUsecase defines environment business logic
type EnvironmentUsecase interface {
	CreateEnvironment(ctx context.Context, orgID uuid.UUID, env *domain.Environment) (*domain.Environment, error)
	GetEnvironment(ctx context.Context, orgID, id uuid.UUID) (*domain.Environment, error)
	ListEnvironments(ctx context.Context, orgID uuid.UUID) ([]*domain.Environment, error)
	UpdateEnvironment(ctx context.Context, orgID uuid.UUID, env *domain.Environment) (*domain.Environment, error)
	DeleteEnvironment(ctx context.Context, orgID, id uuid.UUID) error
}

// TaskUsecase defines task business logic
type TaskUsecase interface {
	CreateTask(ctx context.Context, orgID uuid.UUID, task *domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context, orgID uuid.UUID) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, orgID uuid.UUID, task *domain.Task) (*domain.Task, error)
	DeleteTask(ctx context.Context, orgID, id uuid.UUID) error
	CompleteTask(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error)
}

// ProfileUsecase defines the caller-facing profile operations
type ProfileUsecase interface {
	GetProfile(ctx context.Context, providerID string) (*domain.User, error)
	UpdatePreferences(ctx context.Context, providerID string, prefs domain.UserPreferences) (*domain.User, error)
}

// ActivityUsecase merges provider memberships with the local mirror for the
// admin activity listing
type ActivityUsecase interface {
	ListOrganizationActivity(ctx context.Context, orgProviderID string) ([]domain.ActivityEntry, error)
}
