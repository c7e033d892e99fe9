package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type CalendarEventRepository struct {
	coll *mongo.Collection
}

func NewCalendarEventRepository(db *mongo.Database) *CalendarEventRepository {
	return &CalendarEventRepository{coll: db.Collection("calendar_events")}
}

func (r *CalendarEventRepository) Create(ctx context.Context, ev *entity.CalendarEvent) error {
	now := time.Now()
	ev.ID = bson.NewObjectID()
	ev.CreatedAt = now
	ev.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, ev)
	return err
}

func (r *CalendarEventRepository) FindAll(ctx context.Context) ([]entity.CalendarEvent, error) {
	return findAll[entity.CalendarEvent](ctx, r.coll, bson.M{})
}

func (r *CalendarEventRepository) FindByID(ctx context.Context, id string) (*entity.CalendarEvent, error) {
	return findByID[entity.CalendarEvent](ctx, r.coll, id)
}

func (r *CalendarEventRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.CalendarEvent, error) {
	return updateByID[entity.CalendarEvent](ctx, r.coll, id, fields)
}

func (r *CalendarEventRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
