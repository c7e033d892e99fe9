package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection("notifications")}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	now := time.Now()
	n.ID = bson.NewObjectID()
	n.CreatedAt = now
	n.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepository) FindAll(ctx context.Context) ([]entity.Notification, error) {
	return findAll[entity.Notification](ctx, r.coll, bson.M{})
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	return updateByID[entity.Notification](ctx, r.coll, id, map[string]any{"read": true})
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.coll.UpdateMany(
		ctx,
		bson.M{"read": false},
		bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}},
	)
	return err
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
