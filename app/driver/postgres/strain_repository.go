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

// StrainRepository implements port.StrainRepository for PostgreSQL
type StrainRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewStrainRepository creates a new PostgreSQL strain repository
func NewStrainRepository(db DatabaseIface, logger *slog.Logger) port.StrainRepository {
	return &StrainRepository{
		db:     db,
		logger: logger.With("component", "strain_repository"),
	}
}

const strainColumns = `id, organization_id, name, genetics, thc_percent_min, thc_percent_max,
	cbd_percent_min, cbd_percent_max, flowering_days, notes, created_at, updated_at`

// Create inserts a new strain
func (r *StrainRepository) Create(ctx context.Context, strain *domain.Strain) error {
	query := `
		INSERT INTO strains (
			id, organization_id, name, genetics, thc_percent_min, thc_percent_max,
			cbd_percent_min, cbd_percent_max, flowering_days, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`

	_, err := r.db.Exec(ctx, query,
		strain.ID,
		strain.OrganizationID,
		strain.Name,
		strain.Genetics,
		strain.THCPercentMin,
		strain.THCPercentMax,
		strain.CBDPercentMin,
		strain.CBDPercentMax,
		strain.FloweringDays,
		strain.Notes,
		time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error("failed to create strain", "strain_id", strain.ID, "error", err)
		return fmt.Errorf("failed to create strain: %w", err)
	}

	return nil
}

// GetByID retrieves a strain scoped to an organization
func (r *StrainRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Strain, error) {
	query := `SELECT ` + strainColumns + ` FROM strains WHERE organization_id = $1 AND id = $2`

	strain, err := scanStrain(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("strain %s: %w", id, apperrors.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("failed to get strain: %w", err)
	}

	return strain, nil
}

// ListByOrganization lists an organization's strains
func (r *StrainRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Strain, error) {
	query := `SELECT ` + strainColumns + ` FROM strains WHERE organization_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list strains: %w", err)
	}
	defer rows.Close()

	strains := make([]*domain.Strain, 0)
	for rows.Next() {
		strain, err := scanStrain(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan strain row: %w", err)
		}
		strains = append(strains, strain)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating strain rows: %w", err)
	}

	return strains, nil
}

// Update replaces a strain's mutable fields
func (r *StrainRepository) Update(ctx context.Context, strain *domain.Strain) error {
	query := `
		UPDATE strains
		SET name = $3, genetics = $4, thc_percent_min = $5, thc_percent_max = $6,
			cbd_percent_min = $7, cbd_percent_max = $8, flowering_days = $9,
			notes = $10, updated_at = $11
		WHERE organization_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query,
		strain.OrganizationID,
		strain.ID,
		strain.Name,
		strain.Genetics,
		strain.THCPercentMin,
		strain.THCPercentMax,
		strain.CBDPercentMin,
		strain.CBDPercentMax,
		strain.FloweringDays,
		strain.Notes,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update strain: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("strain %s: %w", strain.ID, apperrors.ErrResourceNotFound)
	}

	return nil
}

// Delete removes a strain scoped to an organization
func (r *StrainRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM strains WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete strain: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("strain %s: %w", id, apperrors.ErrResourceNotFound)
	}
	return nil
}

func scanStrain(row pgx.Row) (*domain.Strain, error) {
	var strain domain.Strain
	err := row.Scan(
		&strain.ID,
		&strain.OrganizationID,
		&strain.Name,
		&strain.Genetics,
		&strain.THCPercentMin,
		&strain.THCPercentMax,
		&strain.CBDPercentMin,
		&strain.CBDPercentMax,
		&strain.FloweringDays,
		&strain.Notes,
		&strain.CreatedAt,
		&strain.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &strain, nil
}
