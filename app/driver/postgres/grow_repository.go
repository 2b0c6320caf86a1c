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

// GrowRepository implements port.GrowRepository for PostgreSQL
type GrowRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewGrowRepository creates a new PostgreSQL grow repository
func NewGrowRepository(db DatabaseIface, logger *slog.Logger) port.GrowRepository {
	return &GrowRepository{
		db:     db,
		logger: logger.With("component", "grow_repository"),
	}
}

const growColumns = `id, organization_id, environment_id, name, stage, started_at, notes, created_at, updated_at`

// Create inserts a new grow
func (r *GrowRepository) Create(ctx context.Context, grow *domain.Grow) error {
	query := `
		INSERT INTO grows (
			id, organization_id, environment_id, name, stage, started_at, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	_, err := r.db.Exec(ctx, query,
		grow.ID,
		grow.OrganizationID,
		grow.EnvironmentID,
		grow.Name,
		grow.Stage,
		grow.StartedAt,
		grow.Notes,
		time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error("failed to create grow", "grow_id", grow.ID, "error", err)
		return fmt.Errorf("failed to create grow: %w", err)
	}

	return nil
}

// GetByID retrieves a grow scoped to an organization
func (r *GrowRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Grow, error) {
	query := `SELECT ` + growColumns + ` FROM grows WHERE organization_id = $1 AND id = $2`

	grow, err := scanGrow(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("grow %s: %w", id, apperrors.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("failed to get grow: %w", err)
	}

	return grow, nil
}

// ListByOrganization lists an organization's grows, newest first
func (r *GrowRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Grow, error) {
	query := `SELECT ` + growColumns + ` FROM grows WHERE organization_id = $1 ORDER BY started_at DESC`

	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grows: %w", err)
	}
	defer rows.Close()

	grows := make([]*domain.Grow, 0)
	for rows.Next() {
		grow, err := scanGrow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grow row: %w", err)
		}
		grows = append(grows, grow)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grow rows: %w", err)
	}

	return grows, nil
}

// Update replaces a grow's mutable fields
func (r *GrowRepository) Update(ctx context.Context, grow *domain.Grow) error {
	query := `
		UPDATE grows
		SET environment_id = $3, name = $4, stage = $5, notes = $6, updated_at = $7
		WHERE organization_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query,
		grow.OrganizationID,
		grow.ID,
		grow.EnvironmentID,
		grow.Name,
		grow.Stage,
		grow.Notes,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update grow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grow %s: %w", grow.ID, apperrors.ErrResourceNotFound)
	}

	return nil
}

// Delete removes a grow scoped to an organization
func (r *GrowRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM grows WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete grow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("grow %s: %w", id, apperrors.ErrResourceNotFound)
	}
	return nil
}

func scanGrow(row pgx.Row) (*domain.Grow, error) {
	var grow domain.Grow
	err := row.Scan(
		&grow.ID,
		&grow.OrganizationID,
		&grow.EnvironmentID,
		&grow.Name,
		&grow.Stage,
		&grow.StartedAt,
		&grow.Notes,
		&grow.CreatedAt,
		&grow.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &grow, nil
}
