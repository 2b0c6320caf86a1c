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

func newTestTaskUseCase(t *testing.T) (*TaskUseCase, *mocks.MockTaskRepository, *mocks.MockGrowRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tasks := mocks.NewMockTaskRepository(ctrl)
	grows := mocks.NewMockGrowRepository(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewTaskUseCase(tasks, grows, testLogger), tasks, grows
}

func TestCreateTask(t *testing.T) {
	orgID := uuid.New()

	t.Run("creates open task", func(t *testing.T) {
		uc, tasks, _ := newTestTaskUseCase(t)

		due := time.Now().Add(48 * time.Hour)

		tasks.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *domain.Task) error {
				assert.Equal(t, domain.TaskOpen, task.Status)
				assert.Equal(t, orgID, task.OrganizationID)
				return nil
			})

		task, err := uc.CreateTask(context.Background(), orgID, &domain.Task{
			Title: "Flush reservoir",
			DueAt: &due,
		})

		require.NoError(t, err)
		assert.Equal(t, "Flush reservoir", task.Title)
		require.NotNil(t, task.DueAt)
	})

	t.Run("grow reference is organization scoped", func(t *testing.T) {
		uc, _, grows := newTestTaskUseCase(t)

		growID := uuid.New()
		grows.EXPECT().GetByID(gomock.Any(), orgID, growID).
			Return(nil, apperrors.ErrResourceNotFound)

		_, err := uc.CreateTask(context.Background(), orgID, &domain.Task{
			Title:  "Defoliate",
			GrowID: &growID,
		})

		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestCompleteTask(t *testing.T) {
	orgID := uuid.New()

	t.Run("marks open task done", func(t *testing.T) {
		uc, tasks, _ := newTestTaskUseCase(t)

		task := &domain.Task{ID: uuid.New(), OrganizationID: orgID, Title: "Water", Status: domain.TaskOpen}

		tasks.EXPECT().GetByID(gomock.Any(), orgID, task.ID).Return(task, nil)
		tasks.EXPECT().Update(gomock.Any(), task).Return(nil)

		done, err := uc.CompleteTask(context.Background(), orgID, task.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.TaskDone, done.Status)
		require.NotNil(t, done.CompletedAt)
	})

	t.Run("completing a done task is rejected", func(t *testing.T) {
		uc, tasks, _ := newTestTaskUseCase(t)

		task := &domain.Task{ID: uuid.New(), OrganizationID: orgID, Title: "Water", Status: domain.TaskDone}

		tasks.EXPECT().GetByID(gomock.Any(), orgID, task.ID).Return(task, nil)

		_, err := uc.CompleteTask(context.Background(), orgID, task.ID)

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeInvalidTransition, appErr.Code)
	})
}
