package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

const userColumns = `id, provider_id, email, first_name, last_name, image_url, organization_id, preferences, created_at, updated_at`

// UpsertFromProvider inserts the user or, when the provider id already
// exists, refreshes the profile fields. The organization reference and
// preferences of an existing row are left untouched so redelivered
// user.created events cannot unlink an already-joined user.
func (r *UserRepository) UpsertFromProvider(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (
			id, provider_id, email, first_name, last_name, image_url,
			organization_id, preferences, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $9
		)
		ON CONFLICT (provider_id) DO UPDATE SET
			email      = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			image_url  = EXCLUDED.image_url,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + userColumns

	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}

	r.logger.Info("upserting user from provider",
		"provider_id", user.ProviderID,
		"email", user.Email)

	row := r.db.QueryRow(ctx, query,
		user.ID,
		user.ProviderID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.ImageURL,
		user.OrganizationID,
		prefs,
		time.Now().UTC(),
	)

	stored, err := scanUser(row)
	if err != nil {
		// The provider-id conflict is absorbed by the upsert, so a unique
		// violation here means this email is already mirrored under a
		// different provider id.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.Wrap(apperrors.ErrCodeConflict,
				fmt.Sprintf("email %s already mirrored for another user", user.Email), err)
		}
		r.logger.Error("failed to upsert user",
			"provider_id", user.ProviderID,
			"error", err)
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return stored, nil
}

// UpdateProfile updates the mutable profile fields by provider id
func (r *UserRepository) UpdateProfile(ctx context.Context, providerID, firstName, lastName, imageURL string) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, image_url = $4, updated_at = $5
		WHERE provider_id = $1`

	tag, err := r.db.Exec(ctx, query, providerID, firstName, lastName, imageURL, time.Now().UTC())
	if err != nil {
		r.logger.Error("failed to update user profile",
			"provider_id", providerID,
			"error", err)
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update profile %s: %w", providerID, apperrors.ErrUserNotFound)
	}

	return nil
}

// SetOrganization links the user to an organization
func (r *UserRepository) SetOrganization(ctx context.Context, providerID string, orgID uuid.UUID) error {
	query := `
		UPDATE users
		SET organization_id = $2, updated_at = $3
		WHERE provider_id = $1`

	tag, err := r.db.Exec(ctx, query, providerID, orgID, time.Now().UTC())
	if err != nil {
		r.logger.Error("failed to set user organization",
			"provider_id", providerID,
			"organization_id", orgID,
			"error", err)
		return fmt.Errorf("failed to set user organization: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set organization for %s: %w", providerID, apperrors.ErrUserNotFound)
	}

	r.logger.Info("user linked to organization",
		"provider_id", providerID,
		"organization_id", orgID)

	return nil
}

// UpdatePreferences replaces the user's preference blob
func (r *UserRepository) UpdatePreferences(ctx context.Context, providerID string, prefs domain.UserPreferences) error {
	blob, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	query := `
		UPDATE users
		SET preferences = $2, updated_at = $3
		WHERE provider_id = $1`

	tag, err := r.db.Exec(ctx, query, providerID, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update preferences for %s: %w", providerID, apperrors.ErrUserNotFound)
	}

	return nil
}

// GetByProviderID retrieves a user by its identity-provider id
func (r *UserRepository) GetByProviderID(ctx context.Context, providerID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE provider_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, providerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", providerID, apperrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by provider id: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var prefs []byte

	err := row.Scan(
		&user.ID,
		&user.ProviderID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.ImageURL,
		&user.OrganizationID,
		&prefs,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &user.Preferences); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
		}
	}

	return &user, nil
}
