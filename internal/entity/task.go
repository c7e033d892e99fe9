package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "InProgress"
	TaskStatusResolved   = "Resolved"
)

func IsValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusInProgress || s == TaskStatusResolved
}

type Task struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Subject     string        `json:"subject" bson:"subject"`
	RelatedTo   string        `json:"relatedTo,omitempty" bson:"relatedTo,omitempty"`
	Name        string        `json:"name,omitempty" bson:"name,omitempty"`
	Assigned    string        `json:"assigned,omitempty" bson:"assigned,omitempty"`
	TaskDate    time.Time     `json:"taskDate" bson:"taskDate"`
	DueDate     time.Time     `json:"dueDate" bson:"dueDate"`
	Status      string        `json:"status" bson:"status"`
	Priority    string        `json:"priority" bson:"priority"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (t *Task) Normalize() {
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}

func (t *Task) Validate() error {
	if t.Subject == "" {
		return errors.New("subject is required")
	}
	if !IsValidTaskStatus(t.Status) {
		return errors.New("status must be Pending, InProgress or Resolved")
	}
	if !IsValidPriority(t.Priority) {
		return errors.New("priority must be High, Medium or Low")
	}
	return nil
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *Task) error
	FindAll(ctx context.Context) ([]Task, error)
	FindByID(ctx context.Context, id string) (*Task, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*Task, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, limit int64) ([]Task, error)
}
