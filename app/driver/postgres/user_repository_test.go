package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"growhub/app/domain"
	apperrors "growhub/app/utils/errors"
	"growhub/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test user repository with mocked database
func createTestUserRepository(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewUserRepository(mockDB, testLogger).(*UserRepository)

	return repo, mockDB
}

// Helper function to create a test user
func createTestUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUserFromProvider(
		"user_2abc123",
		"grower@greenleaf.example",
		"Jane",
		"Doe",
		"https://img.example/jane.png",
	)
	require.NoError(t, err)

	return user
}

func userRows(user *domain.User) *pgxmock.Rows {
	prefs, _ := json.Marshal(user.Preferences)
	now := time.Now().UTC()
	return pgxmock.NewRows([]string{
		"id", "provider_id", "email", "first_name", "last_name", "image_url",
		"organization_id", "preferences", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.ProviderID, user.Email, user.FirstName, user.LastName,
		user.ImageURL, user.OrganizationID, prefs, now, now,
	)
}

func TestUserRepository_UpsertFromProvider(t *testing.T) {
	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface, *domain.User)
		wantErr  bool
		errorMsg string
	}{
		{
			name: "successful upsert",
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				prefs, _ := json.Marshal(user.Preferences)
				mockDB.ExpectQuery("INSERT INTO users").
					WithArgs(
						user.ID,
						user.ProviderID,
						user.Email,
						user.FirstName,
						user.LastName,
						user.ImageURL,
						user.OrganizationID,
						prefs,
						pgxmock.AnyArg(), // updated_at
					).
					WillReturnRows(userRows(user))
			},
			wantErr: false,
		},
		{
			name: "database error during upsert",
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectQuery("INSERT INTO users").
					WithArgs(
						user.ID,
						user.ProviderID,
						user.Email,
						user.FirstName,
						user.LastName,
						user.ImageURL,
						user.OrganizationID,
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
					).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr:  true,
			errorMsg: "failed to upsert user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			user := createTestUser(t)
			tt.setupDB(mockDB, user)

			stored, err := repo.UpsertFromProvider(context.Background(), user)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, stored)
				assert.Equal(t, user.ProviderID, stored.ProviderID)
				assert.Equal(t, user.Email, stored.Email)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_UpsertFromProvider_EmailHeldByAnotherUser(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	user := createTestUser(t)
	mockDB.ExpectQuery("INSERT INTO users").
		WithArgs(
			user.ID,
			user.ProviderID,
			user.Email,
			user.FirstName,
			user.LastName,
			user.ImageURL,
			user.OrganizationID,
			pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	stored, err := repo.UpsertFromProvider(context.Background(), user)

	assert.Nil(t, stored)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConflict, appErr.Code)
	assert.Contains(t, appErr.Message, user.Email)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "profile updated",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE users").
					WithArgs("user_2abc123", "Jane", "Smith", "https://img.example/new.png", pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "unknown provider id",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE users").
					WithArgs("user_2abc123", "Jane", "Smith", "https://img.example/new.png", pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := repo.UpdateProfile(context.Background(), "user_2abc123", "Jane", "Smith", "https://img.example/new.png")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_SetOrganization(t *testing.T) {
	orgID := uuid.New()

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "user linked",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE users").
					WithArgs("user_2abc123", orgID, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "unknown provider id",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE users").
					WithArgs("user_2abc123", orgID, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := repo.SetOrganization(context.Background(), "user_2abc123", orgID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByProviderID(t *testing.T) {
	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface, *domain.User)
		wantErr error
	}{
		{
			name: "user found",
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectQuery("SELECT (.+) FROM users WHERE provider_id").
					WithArgs(user.ProviderID).
					WillReturnRows(userRows(user))
			},
		},
		{
			name: "user not found maps to domain error",
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectQuery("SELECT (.+) FROM users WHERE provider_id").
					WithArgs(user.ProviderID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			user := createTestUser(t)
			tt.setupDB(mockDB, user)

			got, err := repo.GetByProviderID(context.Background(), user.ProviderID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, pgx.ErrNoRows)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, user.ProviderID, got.ProviderID)
				assert.Equal(t, domain.MeasurementMetric, got.Preferences.Measurement)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_UpdatePreferences(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	prefs := domain.DefaultPreferences()
	prefs.Measurement = domain.MeasurementImperial
	blob, err := json.Marshal(prefs)
	require.NoError(t, err)

	mockDB.ExpectExec("UPDATE users").
		WithArgs("user_2abc123", blob, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdatePreferences(context.Background(), "user_2abc123", prefs)

	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
