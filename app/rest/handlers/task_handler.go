package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"growhub/app/domain"
	"growhub/app/port"
	apperrors "growhub/app/utils/errors"
	"growhub/app/utils/validator"
)

// TaskHandler handles cultivation task HTTP requests
type TaskHandler struct {
	tasks     port.TaskUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks port.TaskUsecase, v *validator.Validator, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:     tasks,
		validator: v,
		logger:    logger,
	}
}

// TaskRequest is the create/update payload for a task
type TaskRequest struct {
	Title      string     `json:"title" validate:"required,max=300"`
	Details    string     `json:"details" validate:"max=5000"`
	Status     string     `json:"status" validate:"omitempty,oneof=open done skipped"`
	GrowID     *uuid.UUID `json:"grow_id,omitempty"`
	AssigneeID *uuid.UUID `json:"assignee_id,omitempty"`
	DueAt      *time.Time `json:"due_at,omitempty"`
}

func (r *TaskRequest) toDomain() *domain.Task {
	return &domain.Task{
		Title:      r.Title,
		Details:    r.Details,
		Status:     domain.TaskStatus(r.Status),
		GrowID:     r.GrowID,
		AssigneeID: r.AssigneeID,
		DueAt:      r.DueAt,
	}
}

// CreateTask creates a new open task
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param body body TaskRequest true "Task"
// @Success 201 {object} domain.Task
// @Failure 400 {object} ErrorResponse
// @Router /v1/tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), orgID, req.toDomain())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask returns one task
// @Summary Get task
// @Tags tasks
// @Produce json
// @Param taskId path string true "Task ID"
// @Success 200 {object} domain.Task
// @Failure 404 {object} ErrorResponse
// @Router /v1/tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "taskId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	task, err := h.tasks.GetTask(c.Request().Context(), orgID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, task)
}

// ListTasks lists the organization's tasks
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} domain.Task
// @Router /v1/tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	tasks, err := h.tasks.ListTasks(c.Request().Context(), orgID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// UpdateTask updates an existing task
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskId path string true "Task ID"
// @Param body body TaskRequest true "Task"
// @Success 200 {object} domain.Task
// @Failure 404 {object} ErrorResponse
// @Router /v1/tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "taskId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	input := req.toDomain()
	input.ID = id

	task, err := h.tasks.UpdateTask(c.Request().Context(), orgID, input)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
// @Summary Delete task
// @Tags tasks
// @Param taskId path string true "Task ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "taskId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.tasks.DeleteTask(c.Request().Context(), orgID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteTask marks an open task done
// @Summary Complete task
// @Tags tasks
// @Produce json
// @Param taskId path string true "Task ID"
// @Success 200 {object} domain.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/tasks/{taskId}/complete [post]
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	orgID, err := callerOrganizationID(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	id, err := pathUUID(c, "taskId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	task, err := h.tasks.CompleteTask(c.Request().Context(), orgID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, task)
}
