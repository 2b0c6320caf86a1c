package port

//go:generate mockgen -source=cultivation_port.go -destination=../mocks/mock_cultivation_port.go

import (
	"context"

	"github.com/google/uuid"

	"growhub/app/domain"
)

// StrainRepository defines strain data access, scoped by organization
type StrainRepository interface {
	Create(ctx context.Context, strain *domain.Strain) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Strain, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Strain, error)
	Update(ctx context.Context, strain *domain.Strain) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// GrowRepository defines grow data access, scoped by organization
type GrowRepository interface {
	Create(ctx context.Context, grow *domain.Grow) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Grow, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Grow, error)
	Update(ctx context.Context, grow *domain.Grow) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// PlantRepository defines plant data access. Plants are scoped through their
// grow's organization.
type PlantRepository interface {
	Create(ctx context.Context, plant *domain.Plant) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Plant, error)
	ListByGrow(ctx context.Context, orgID, growID uuid.UUID) ([]*domain.Plant, error)
	Update(ctx context.Context, plant *domain.Plant) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// EnvironmentRepository defines environment data access, scoped by organization
type EnvironmentRepository interface {
	Create(ctx context.Context, env *domain.Environment) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Environment, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Environment, error)
	Update(ctx context.Context, env *domain.Environment) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// TaskRepository defines task data access, scoped by organization
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}
