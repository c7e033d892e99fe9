package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Notification stores whatever payload the client submitted, verbatim, so the
// realtime bridge can rebroadcast it without interpreting it.
type Notification struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Data      bson.M        `json:"data" bson:"data"`
	Read      bool          `json:"read" bson:"read"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (n *Notification) Validate() error {
	if len(n.Data) == 0 {
		return errors.New("data is required")
	}
	return nil
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *Notification) error
	FindAll(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) (*Notification, error)
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}
