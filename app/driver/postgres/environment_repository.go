package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// EnvironmentRepository implements port.EnvironmentRepository for PostgreSQL
type EnvironmentRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewEnvironmentRepository creates a new PostgreSQL environment repository
func NewEnvironmentRepository(db DatabaseIface, logger *slog.Logger) port.EnvironmentRepository {
	return &EnvironmentRepository{
		db:     db,
		logger: logger.With("component", "environment_repository"),
	}
}

const environmentColumns = `id, organization_id, name, light_hours_on, temp_min_c, temp_max_c,
	humidity_min_pct, humidity_max_pct, co2_ppm, created_at, updated_at`

// Create inserts a new environment
func (r *EnvironmentRepository) Create(ctx context.Context, env *domain.Environment) error {
	query := `
		INSERT INTO environments (
			id, organization_id, name, light_hours_on, temp_min_c, temp_max_c,
			humidity_min_pct, humidity_max_pct, co2_ppm, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	_, err := r.db.Exec(ctx, query,
		env.ID,
		env.OrganizationID,
		env.Name,
		env.LightHoursOn,
		env.TempMinC,
		env.TempMaxC,
		env.HumidityMinPct,
		env.HumidityMaxPct,
		env.CO2PPM,
		time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error("failed to create environment", "environment_id", env.ID, "error", err)
		return fmt.Errorf("failed to create environment: %w", err)
	}

	return nil
}

// GetByID retrieves an environment scoped to an organization
func (r *EnvironmentRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Environment, error) {
	query := `SELECT ` + environmentColumns + ` FROM environments WHERE organization_id = $1 AND id = $2`

	env, err := scanEnvironment(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("environment %s: %w", id, apperrors.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("failed to get environment: %w", err)
	}

	return env, nil
}

// ListByOrganization lists an organization's environments
func (r *EnvironmentRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Environment, error) {
	query := `SELECT ` + environmentColumns + ` FROM environments WHERE organization_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list environments: %w", err)
	}
	defer rows.Close()

	envs := make([]*domain.Environment, 0)
	for rows.Next() {
		env, err := scanEnvironment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan environment row: %w", err)
		}
		envs = append(envs, env)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating environment rows: %w", err)
	}

	return envs, nil
}

// Update replaces an environment's mutable fields
func (r *EnvironmentRepository) Update(ctx context.Context, env *domain.Environment) error {
	query := `
		UPDATE environments
		SET name = $3, light_hours_on = $4, temp_min_c = $5, temp_max_c = $6,
			humidity_min_pct = $7, humidity_max_pct = $8, co2_ppm = $9, updated_at = $10
		WHERE organization_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query,
		env.OrganizationID,
		env.ID,
		env.Name,
		env.LightHoursOn,
		env.TempMinC,
		env.TempMaxC,
		env.HumidityMinPct,
		env.HumidityMaxPct,
		env.CO2PPM,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update environment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("environment %s: %w", env.ID, apperrors.ErrResourceNotFound)
	}

	return nil
}

// Delete removes an environment scoped to an organization
func (r *EnvironmentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM environments WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete environment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("environment %s: %w", id, apperrors.ErrResourceNotFound)
	}
	return nil
}

func scanEnvironment(row pgx.Row) (*domain.Environment, error) {
	var env domain.Environment
	err := row.Scan(
		&env.ID,
		&env.OrganizationID,
		&env.Name,
		&env.LightHoursOn,
		&env.TempMinC,
		&env.TempMaxC,
		&env.HumidityMinPct,
		&env.HumidityMaxPct,
		&env.CO2PPM,
		&env.CreatedAt,
		&env.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &env, nil
}
