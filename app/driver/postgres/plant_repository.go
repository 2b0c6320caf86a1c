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

// PlantRepository implements port.PlantRepository for PostgreSQL.
// Plants have no organization column of their own; scoping joins through the
// owning grow.
type PlantRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewPlantRepository creates a new PostgreSQL plant repository
func NewPlantRepository(db DatabaseIface, logger *slog.Logger) port.PlantRepository {
	return &PlantRepository{
		db:     db,
		logger: logger.With("component", "plant_repository"),
	}
}

const plantColumns = `p.id, p.grow_id, p.strain_id, p.tag, p.health, p.planted_at, p.harvested_at, p.created_at, p.updated_at`

// Create inserts a new plant
func (r *PlantRepository) Create(ctx context.Context, plant *domain.Plant) error {
	query := `
		INSERT INTO plants (
			id, grow_id, strain_id, tag, health, planted_at, harvested_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	_, err := r.db.Exec(ctx, query,
		plant.ID,
		plant.GrowID,
		plant.StrainID,
		plant.Tag,
		plant.Health,
		plant.PlantedAt,
		plant.HarvestedAt,
		time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error("failed to create plant", "plant_id", plant.ID, "error", err)
		return fmt.Errorf("failed to create plant: %w", err)
	}

	return nil
}

// GetByID retrieves a plant scoped through its grow's organization
func (r *PlantRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Plant, error) {
	query := `
		SELECT ` + plantColumns + `
		FROM plants p
		JOIN grows g ON g.id = p.grow_id
		WHERE g.organization_id = $1 AND p.id = $2`

	plant, err := scanPlant(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("plant %s: %w", id, apperrors.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}

	return plant, nil
}

// ListByGrow lists a grow's plants
func (r *PlantRepository) ListByGrow(ctx context.Context, orgID, growID uuid.UUID) ([]*domain.Plant, error) {
	query := `
		SELECT ` + plantColumns + `
		FROM plants p
		JOIN grows g ON g.id = p.grow_id
		WHERE g.organization_id = $1 AND p.grow_id = $2
		ORDER BY p.tag`

	rows, err := r.db.Query(ctx, query, orgID, growID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	defer rows.Close()

	plants := make([]*domain.Plant, 0)
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant row: %w", err)
		}
		plants = append(plants, plant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plant rows: %w", err)
	}

	return plants, nil
}

// Update replaces a plant's mutable fields. Callers resolve the plant
// through an org-scoped lookup first; the grow reference itself is immutable.
func (r *PlantRepository) Update(ctx context.Context, plant *domain.Plant) error {
	query := `
		UPDATE plants
		SET strain_id = $2, tag = $3, health = $4, harvested_at = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		plant.ID,
		plant.StrainID,
		plant.Tag,
		plant.Health,
		plant.HarvestedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plant %s: %w", plant.ID, apperrors.ErrResourceNotFound)
	}

	return nil
}

// Delete removes a plant scoped through its grow's organization
func (r *PlantRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	query := `
		DELETE FROM plants p
		USING grows g
		WHERE g.id = p.grow_id AND g.organization_id = $1 AND p.id = $2`

	tag, err := r.db.Exec(ctx, query, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plant %s: %w", id, apperrors.ErrResourceNotFound)
	}
	return nil
}

func scanPlant(row pgx.Row) (*domain.Plant, error) {
	var plant domain.Plant
	err := row.Scan(
		&plant.ID,
		&plant.GrowID,
		&plant.StrainID,
		&plant.Tag,
		&plant.Health,
		&plant.PlantedAt,
		&plant.HarvestedAt,
		&plant.CreatedAt,
		&plant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &plant, nil
}
