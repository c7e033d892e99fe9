package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CalendarEvent is a plain calendar entry; CalendarID is the integer category
// the frontend calendar widget uses to pick a color.
type CalendarEvent struct {
	ID         bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Event      string        `json:"event" bson:"event"`
	Date       time.Time     `json:"date" bson:"date"`
	CalendarID int           `json:"calendarId" bson:"calendarId"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (c *CalendarEvent) Validate() error {
	if c.Event == "" {
		return errors.New("event is required")
	}
	if c.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

type CalendarEventRepositoryInterface interface {
	Create(ctx context.Context, ev *CalendarEvent) error
	FindAll(ctx context.Context) ([]CalendarEvent, error)
	FindByID(ctx context.Context, id string) (*CalendarEvent, error)
	Update(ctx context.Context, id string, fields map[string]any) (*CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}
