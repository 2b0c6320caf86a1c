package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// OrganizationRepository implements port.OrganizationRepository for PostgreSQL
type OrganizationRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewOrganizationRepository creates a new PostgreSQL organization repository
func NewOrganizationRepository(db DatabaseIface, logger *slog.Logger) port.OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		logger: logger.With("component", "organization_repository"),
	}
}

const orgColumns = `id, provider_id, name, slug, domain, created_at, updated_at`

// UpsertFromProvider inserts the organization or refreshes name and slug when
// the provider id already exists. The legacy domain field is never changed on
// conflict; it anchors email-domain matching for existing members.
func (r *OrganizationRepository) UpsertFromProvider(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	query := `
		INSERT INTO organizations (
			id, provider_id, name, slug, domain, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $6
		)
		ON CONFLICT (provider_id) DO UPDATE SET
			name       = EXCLUDED.name,
			slug       = EXCLUDED.slug,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + orgColumns

	r.logger.Info("upserting organization from provider",
		"provider_id", org.ProviderID,
		"slug", org.Slug,
		"domain", org.Domain)

	row := r.db.QueryRow(ctx, query,
		org.ID,
		org.ProviderID,
		org.Name,
		org.Slug,
		org.Domain,
		time.Now().UTC(),
	)

	stored, err := scanOrganization(row)
	if err != nil {
		r.logger.Error("failed to upsert organization",
			"provider_id", org.ProviderID,
			"error", err)
		return nil, fmt.Errorf("failed to upsert organization: %w", err)
	}

	return stored, nil
}

// GetByProviderID retrieves an organization by its identity-provider id
func (r *OrganizationRepository) GetByProviderID(ctx context.Context, providerID string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE provider_id = $1`
	return r.getOne(ctx, query, providerID)
}

// GetByDomain retrieves an organization by its legacy email domain
func (r *OrganizationRepository) GetByDomain(ctx context.Context, domainName string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE domain = $1`
	return r.getOne(ctx, query, strings.ToLower(domainName))
}

// GetBySlug retrieves an organization by slug
func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *OrganizationRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Organization, error) {
	org, err := scanOrganization(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("organization %v: %w", arg, apperrors.ErrOrganizationNotFound)
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func scanOrganization(row pgx.Row) (*domain.Organization, error) {
	var org domain.Organization
	err := row.Scan(
		&org.ID,
		&org.ProviderID,
		&org.Name,
		&org.Slug,
		&org.Domain,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &org, nil
}
