package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	EventTypeMeeting  = "Meeting"
	EventTypeCall     = "Call"
	EventTypeDemo     = "Demo"
	EventTypeFollowUp = "Follow-up"
	EventTypeOther    = "Other"
)

const (
	RecurrenceOnce    = "Once"
	RecurrenceDaily   = "Daily"
	RecurrenceWeekly  = "Weekly"
	RecurrenceMonthly = "Monthly"
)

func IsValidEventType(s string) bool {
	switch s {
	case EventTypeMeeting, EventTypeCall, EventTypeDemo, EventTypeFollowUp, EventTypeOther:
		return true
	}
	return false
}

func IsValidRecurrence(s string) bool {
	switch s {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

type ScheduledEvent struct {
	ID           bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Subject      string        `json:"subject" bson:"subject"`
	AssignedUser string        `json:"assignedUser,omitempty" bson:"assignedUser,omitempty"`
	Attendees    []string      `json:"attendees,omitempty" bson:"attendees,omitempty"`
	Location     string        `json:"location,omitempty" bson:"location,omitempty"`
	EventType    string        `json:"eventType" bson:"eventType"`
	Recurrence   string        `json:"recurrence" bson:"recurrence"`
	Priority     string        `json:"priority" bson:"priority"`
	Date         time.Time     `json:"date" bson:"date"`
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (e *ScheduledEvent) Normalize() {
	if e.EventType == "" {
		e.EventType = EventTypeMeeting
	}
	if e.Recurrence == "" {
		e.Recurrence = RecurrenceOnce
	}
	if e.Priority == "" {
		e.Priority = PriorityMedium
	}
}

func (e *ScheduledEvent) Validate() error {
	if e.Subject == "" {
		return errors.New("subject is required")
	}
	if !IsValidEventType(e.EventType) {
		return errors.New("eventType must be Meeting, Call, Demo, Follow-up or Other")
	}
	if !IsValidRecurrence(e.Recurrence) {
		return errors.New("recurrence must be Once, Daily, Weekly or Monthly")
	}
	if !IsValidPriority(e.Priority) {
		return errors.New("priority must be High, Medium or Low")
	}
	return nil
}

type ScheduledEventRepositoryInterface interface {
	Create(ctx context.Context, ev *ScheduledEvent) error
	FindAll(ctx context.Context) ([]ScheduledEvent, error)
	FindByID(ctx context.Context, id string) (*ScheduledEvent, error)
	Update(ctx context.Context, id string, fields map[string]any) (*ScheduledEvent, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, limit int64) ([]ScheduledEvent, error)
}
