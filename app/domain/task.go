package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle status of a task
type TaskStatus string

const (
	TaskOpen    TaskStatus = "open"
	TaskDone    TaskStatus = "done"
	TaskSkipped TaskStatus = "skipped"
)

// IsValid reports whether the status is a known value
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskOpen, TaskDone, TaskSkipped:
		return true
	}
	return false
}

// Task is an organization-scoped cultivation chore, optionally tied to a grow
// and assigned to a user
type Task struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	GrowID         *uuid.UUID `json:"grow_id,omitempty"`
	AssigneeID     *uuid.UUID `json:"assignee_id,omitempty"`
	Title          string     `json:"title"`
	Details        string     `json:"details"`
	Status         TaskStatus `json:"status"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewTask creates an open task
func NewTask(orgID uuid.UUID, title string) (*Task, error) {
	if orgID == uuid.Nil {
		return nil, fmt.Errorf("organization id is required")
	}
	if title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	now := time.Now().UTC()

	return &Task{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Title:          title,
		Status:         TaskOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Complete marks the task done. Completing a non-open task is an error.
func (t *Task) Complete() error {
	if t.Status != TaskOpen {
		return fmt.Errorf("task %s is %s, only open tasks can be completed", t.ID, t.Status)
	}
	now := time.Now().UTC()
	t.Status = TaskDone
	t.CompletedAt = &now
	t.UpdatedAt = now
	return nil
}

// IsOverdue reports whether an open task is past its due time
func (t *Task) IsOverdue() bool {
	return t.Status == TaskOpen && t.DueAt != nil && t.DueAt.Before(time.Now())
}
