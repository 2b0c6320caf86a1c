package postgres

import (
	"context"
	"testing"
	"time"

	"growhub/app/domain"
	"growhub/app/utils/logger"
	apperrors "growhub/app/utils/errors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrganizationRepository(t *testing.T) (*OrganizationRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewOrganizationRepository(mockDB, testLogger).(*OrganizationRepository)

	return repo, mockDB
}

func createTestOrganization(t *testing.T) *domain.Organization {
	t.Helper()

	org, err := domain.NewOrganizationFromProvider("org_2xyz789", "Green Leaf Farms", "green-leaf-farms", "greenleaf.example")
	require.NoError(t, err)

	return org
}

func orgRows(org *domain.Organization) *pgxmock.Rows {
	now := time.Now().UTC()
	return pgxmock.NewRows([]string{
		"id", "provider_id", "name", "slug", "domain", "created_at", "updated_at",
	}).AddRow(
		org.ID, org.ProviderID, org.Name, org.Slug, org.Domain, now, now,
	)
}

func TestOrganizationRepository_UpsertFromProvider(t *testing.T) {
	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface, *domain.Organization)
		wantErr  bool
		errorMsg string
	}{
		{
			name: "successful upsert",
			setupDB: func(mockDB pgxmock.PgxPoolIface, org *domain.Organization) {
				mockDB.ExpectQuery("INSERT INTO organizations").
					WithArgs(org.ID, org.ProviderID, org.Name, org.Slug, org.Domain, pgxmock.AnyArg()).
					WillReturnRows(orgRows(org))
			},
			wantErr: false,
		},
		{
			name: "database error during upsert",
			setupDB: func(mockDB pgxmock.PgxPoolIface, org *domain.Organization) {
				mockDB.ExpectQuery("INSERT INTO organizations").
					WithArgs(org.ID, org.ProviderID, org.Name, org.Slug, org.Domain, pgxmock.AnyArg()).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr:  true,
			errorMsg: "failed to upsert organization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestOrganizationRepository(t)
			defer mockDB.Close()

			org := createTestOrganization(t)
			tt.setupDB(mockDB, org)

			stored, err := repo.UpsertFromProvider(context.Background(), org)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, stored)
				assert.Equal(t, org.ProviderID, stored.ProviderID)
				assert.Equal(t, org.Slug, stored.Slug)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestOrganizationRepository_GetByDomain(t *testing.T) {
	tests := []struct {
		name    string
		lookup  string
		wantArg string
		setupDB func(pgxmock.PgxPoolIface, *domain.Organization, string)
		wantErr error
	}{
		{
			name:    "domain found",
			lookup:  "greenleaf.example",
			wantArg: "greenleaf.example",
			setupDB: func(mockDB pgxmock.PgxPoolIface, org *domain.Organization, arg string) {
				mockDB.ExpectQuery("SELECT (.+) FROM organizations WHERE domain").
					WithArgs(arg).
					WillReturnRows(orgRows(org))
			},
		},
		{
			name:    "lookup is lowercased before querying",
			lookup:  "GreenLeaf.Example",
			wantArg: "greenleaf.example",
			setupDB: func(mockDB pgxmock.PgxPoolIface, org *domain.Organization, arg string) {
				mockDB.ExpectQuery("SELECT (.+) FROM organizations WHERE domain").
					WithArgs(arg).
					WillReturnRows(orgRows(org))
			},
		},
		{
			name:    "no organization for domain",
			lookup:  "unknown.example",
			wantArg: "unknown.example",
			setupDB: func(mockDB pgxmock.PgxPoolIface, org *domain.Organization, arg string) {
				mockDB.ExpectQuery("SELECT (.+) FROM organizations WHERE domain").
					WithArgs(arg).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: apperrors.ErrOrganizationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestOrganizationRepository(t)
			defer mockDB.Close()

			org := createTestOrganization(t)
			tt.setupDB(mockDB, org, tt.wantArg)

			got, err := repo.GetByDomain(context.Background(), tt.lookup)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, pgx.ErrNoRows)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, org.Domain, got.Domain)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestOrganizationRepository_GetByProviderID(t *testing.T) {
	repo, mockDB := createTestOrganizationRepository(t)
	defer mockDB.Close()

	org := createTestOrganization(t)

	mockDB.ExpectQuery("SELECT (.+) FROM organizations WHERE provider_id").
		WithArgs(org.ProviderID).
		WillReturnRows(orgRows(org))

	got, err := repo.GetByProviderID(context.Background(), org.ProviderID)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, org.Name, got.Name)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
