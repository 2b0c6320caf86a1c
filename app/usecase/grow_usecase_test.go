package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"growhub/app/domain"
	"growhub/app/mocks"
	apperrors "growhub/app/utils/errors"
	"growhub/app/utils/logger"
)

type growMocks struct {
	grows        *mocks.MockGrowRepository
	plants       *mocks.MockPlantRepository
	environments *mocks.MockEnvironmentRepository
}

func newTestGrowUseCase(t *testing.T) (*GrowUseCase, *growMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &growMocks{
		grows:        mocks.NewMockGrowRepository(ctrl),
		plants:       mocks.NewMockPlantRepository(ctrl),
		environments: mocks.NewMockEnvironmentRepository(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewGrowUseCase(m.grows, m.plants, m.environments, testLogger), m
}

func TestCreateGrow(t *testing.T) {
	orgID := uuid.New()

	t.Run("starts in seedling stage", func(t *testing.T) {
		uc, m := newTestGrowUseCase(t)

		m.grows.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, grow *domain.Grow) error {
				assert.Equal(t, domain.StageSeedling, grow.Stage)
				assert.Equal(t, orgID, grow.OrganizationID)
				return nil
			})

		grow, err := uc.CreateGrow(context.Background(), orgID, &domain.Grow{Name: "Spring Run"})

		require.NoError(t, err)
		assert.Equal(t, "Spring Run", grow.Name)
	})

	t.Run("rejects environment from another organization", func(t *testing.T) {
		uc, m := newTestGrowUseCase(t)

		envID := uuid.New()
		m.environments.EXPECT().GetByID(gomock.Any(), orgID, envID).
			Return(nil, apperrors.ErrResourceNotFound)

		_, err := uc.CreateGrow(context.Background(), orgID, &domain.Grow{
			Name:          "Spring Run",
			EnvironmentID: &envID,
		})

		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc, _ := newTestGrowUseCase(t)

		_, err := uc.CreateGrow(context.Background(), orgID, &domain.Grow{})

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidationFailed, appErr.Code)
	})
}

func TestAdvanceGrow(t *testing.T) {
	orgID := uuid.New()

	t.Run("moves to the next stage", func(t *testing.T) {
		uc, m := newTestGrowUseCase(t)

		grow := &domain.Grow{ID: uuid.New(), OrganizationID: orgID, Name: "Run", Stage: domain.StageVegetative}

		m.grows.EXPECT().GetByID(gomock.Any(), orgID, grow.ID).Return(grow, nil)
		m.grows.EXPECT().Update(gomock.Any(), grow).Return(nil)

		advanced, err := uc.AdvanceGrow(context.Background(), orgID, grow.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.StageFlowering, advanced.Stage)
	})

	t.Run("completed grow cannot advance", func(t *testing.T) {
		uc, m := newTestGrowUseCase(t)

		grow := &domain.Grow{ID: uuid.New(), OrganizationID: orgID, Name: "Run", Stage: domain.StageComplete}

		m.grows.EXPECT().GetByID(gomock.Any(), orgID, grow.ID).Return(grow, nil)

		_, err := uc.AdvanceGrow(context.Background(), orgID, grow.ID)

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeInvalidTransition, appErr.Code)
	})
}

func TestAddPlant(t *testing.T) {
	orgID := uuid.New()
	growID := uuid.New()

	t.Run("attaches plant to active grow", func(t *testing.T) {
		uc, m := newTestGrowUseCase(t)

		grow := &domain.Grow{ID: growID, OrganizationID: orgID, Stage: domain.StageVegetative}

		m.grows.EXPECT().GetByID(gomock.Any(), orgID, growID).Return(grow, nil)
		m.plants.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, plant *domain.Plant) error {
				assert.Equal(t, growID, plant.GrowID)
				assert.Equal(t, domain.HealthHealthy, plant.Health)
				return nil
			})

		plant, err := uc.AddPlant(context.Background(), orgID, growID, &domain.Plant{Tag: "GH-001"})

		require.NoError(t, err)
		assert.Equal(t, "GH-001", plant.Tag)
	})

	t.Run("completed grow takes no new plants", func(t *testing.T) {
		uc, m := newTestGrowUseCase(t)

		grow := &domain.Grow{ID: growID, OrganizationID: orgID, Stage: domain.StageComplete}

		m.grows.EXPECT().GetByID(gomock.Any(), orgID, growID).Return(grow, nil)

		_, err := uc.AddPlant(context.Background(), orgID, growID, &domain.Plant{Tag: "GH-001"})

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeInvalidTransition, appErr.Code)
	})
}

func TestHarvestPlant(t *testing.T) {
	orgID := uuid.New()

	t.Run("records harvest time once", func(t *testing.T) {
		uc, m := newTestGrowUseCase(t)

		plant := &domain.Plant{ID: uuid.New(), GrowID: uuid.New(), Tag: "GH-001", Health: domain.HealthHealthy}

		m.plants.EXPECT().GetByID(gomock.Any(), orgID, plant.ID).Return(plant, nil)
		m.plants.EXPECT().Update(gomock.Any(), plant).Return(nil)

		harvested, err := uc.HarvestPlant(context.Background(), orgID, plant.ID)

		require.NoError(t, err)
		require.NotNil(t, harvested.HarvestedAt)
	})

	t.Run("double harvest is rejected", func(t *testing.T) {
		uc, m := newTestGrowUseCase(t)

		then := time.Now().UTC().Add(-24 * time.Hour)
		plant := &domain.Plant{ID: uuid.New(), Tag: "GH-001", Health: domain.HealthHealthy, HarvestedAt: &then}

		m.plants.EXPECT().GetByID(gomock.Any(), orgID, plant.ID).Return(plant, nil)

		_, err := uc.HarvestPlant(context.Background(), orgID, plant.ID)

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeInvalidTransition, appErr.Code)
	})
}
