package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
)

// TaskUseCase implements cultivation chore business logic
type TaskUseCase struct {
	tasks  port.TaskRepository
	grows  port.GrowRepository
	logger *slog.Logger
}

// NewTaskUseCase creates a new TaskUseCase instance
func NewTaskUseCase(tasks port.TaskRepository, grows port.GrowRepository, logger *slog.Logger) *TaskUseCase {
	return &TaskUseCase{
		tasks:  tasks,
		grows:  grows,
		logger: logger.With(slog.String("component", "task_usecase")),
	}
}

// CreateTask validates and stores a new open task
func (uc *TaskUseCase) CreateTask(ctx context.Context, orgID uuid.UUID, input *domain.Task) (*domain.Task, error) {
	task, err := domain.NewTask(orgID, input.Title)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	task.Details = input.Details
	task.DueAt = input.DueAt
	task.AssigneeID = input.AssigneeID

	if input.GrowID != nil {
		// The referenced grow must belong to the same organization.
		if _, err := uc.grows.GetByID(ctx, orgID, *input.GrowID); err != nil {
			return nil, err
		}
		task.GrowID = input.GrowID
	}

	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	uc.logger.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("organization_id", orgID.String()))

	return task, nil
}

// GetTask returns one task within the organization
func (uc *TaskUseCase) GetTask(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, orgID, id)
}

// ListTasks returns all tasks for the organization
func (uc *TaskUseCase) ListTasks(ctx context.Context, orgID uuid.UUID) ([]*domain.Task, error) {
	return uc.tasks.ListByOrganization(ctx, orgID)
}

// UpdateTask applies caller changes to an existing task
func (uc *TaskUseCase) UpdateTask(ctx context.Context, orgID uuid.UUID, input *domain.Task) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, orgID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		task.Title = input.Title
	}
	task.Details = input.Details
	task.DueAt = input.DueAt
	task.AssigneeID = input.AssigneeID

	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, apperrors.NewValidationError("invalid task status")
		}
		task.Status = input.Status
	}

	if input.GrowID != nil && (task.GrowID == nil || *task.GrowID != *input.GrowID) {
		if _, err := uc.grows.GetByID(ctx, orgID, *input.GrowID); err != nil {
			return nil, err
		}
		task.GrowID = input.GrowID
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask removes a task
func (uc *TaskUseCase) DeleteTask(ctx context.Context, orgID, id uuid.UUID) error {
	return uc.tasks.Delete(ctx, orgID, id)
}

// CompleteTask marks an open task done
func (uc *TaskUseCase) CompleteTask(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if err := task.Complete(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTransition, "cannot complete task", err)
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}
