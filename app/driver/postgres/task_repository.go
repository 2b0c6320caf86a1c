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

// TaskRepository implements port.TaskRepository for PostgreSQL
type TaskRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTaskRepository creates a new PostgreSQL task repository
func NewTaskRepository(db DatabaseIface, logger *slog.Logger) port.TaskRepository {
	return &TaskRepository{
		db:     db,
		logger: logger.With("component", "task_repository"),
	}
}

const taskColumns = `id, organization_id, grow_id, assignee_id, title, details, status,
	due_at, completed_at, created_at, updated_at`

// Create inserts a new task
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (
			id, organization_id, grow_id, assignee_id, title, details, status,
			due_at, completed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	_, err := r.db.Exec(ctx, query,
		task.ID,
		task.OrganizationID,
		task.GrowID,
		task.AssigneeID,
		task.Title,
		task.Details,
		task.Status,
		task.DueAt,
		task.CompletedAt,
		time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error("failed to create task", "task_id", task.ID, "error", err)
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID retrieves a task scoped to an organization
func (r *TaskRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE organization_id = $1 AND id = $2`

	task, err := scanTask(r.db.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, apperrors.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListByOrganization lists an organization's tasks, due-soonest first
func (r *TaskRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE organization_id = $1 ORDER BY due_at NULLS LAST, created_at`

	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// Update replaces a task's mutable fields
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET grow_id = $3, assignee_id = $4, title = $5, details = $6, status = $7,
			due_at = $8, completed_at = $9, updated_at = $10
		WHERE organization_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query,
		task.OrganizationID,
		task.ID,
		task.GrowID,
		task.AssigneeID,
		task.Title,
		task.Details,
		task.Status,
		task.DueAt,
		task.CompletedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", task.ID, apperrors.ErrResourceNotFound)
	}

	return nil
}

// Delete removes a task scoped to an organization
func (r *TaskRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE organization_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, apperrors.ErrResourceNotFound)
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.OrganizationID,
		&task.GrowID,
		&task.AssigneeID,
		&task.Title,
		&task.Details,
		&task.Status,
		&task.DueAt,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
