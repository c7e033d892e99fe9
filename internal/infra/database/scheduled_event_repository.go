package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type ScheduledEventRepository struct {
	coll *mongo.Collection
}

func NewScheduledEventRepository(db *mongo.Database) *ScheduledEventRepository {
	return &ScheduledEventRepository{coll: db.Collection("scheduled_events")}
}

var scheduledEventSearchFields = []string{
	"subject", "assignedUser", "location", "description",
}

func (r *ScheduledEventRepository) Create(ctx context.Context, ev *entity.ScheduledEvent) error {
	now := time.Now()
	ev.ID = bson.NewObjectID()
	ev.CreatedAt = now
	ev.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, ev)
	return err
}

func (r *ScheduledEventRepository) FindAll(ctx context.Context) ([]entity.ScheduledEvent, error) {
	return findAll[entity.ScheduledEvent](ctx, r.coll, bson.M{})
}

func (r *ScheduledEventRepository) FindByID(ctx context.Context, id string) (*entity.ScheduledEvent, error) {
	return findByID[entity.ScheduledEvent](ctx, r.coll, id)
}

func (r *ScheduledEventRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.ScheduledEvent, error) {
	return updateByID[entity.ScheduledEvent](ctx, r.coll, id, fields)
}

func (r *ScheduledEventRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *ScheduledEventRepository) Search(ctx context.Context, q string, limit int64) ([]entity.ScheduledEvent, error) {
	return searchRegex[entity.ScheduledEvent](ctx, r.coll, q, scheduledEventSearchFields, limit)
}
