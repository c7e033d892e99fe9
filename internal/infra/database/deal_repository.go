package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type DealRepository struct {
	coll *mongo.Collection
}

func NewDealRepository(db *mongo.Database) *DealRepository {
	return &DealRepository{coll: db.Collection("deals")}
}

var dealSearchFields = []string{
	"companyName", "customerName", "contactNumber", "emailAddress",
	"address", "productName", "gstNumber", "notes",
}

func (r *DealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	now := time.Now()
	deal.ID = bson.NewObjectID()
	deal.CreatedAt = now
	deal.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, deal)
	return err
}

func (r *DealRepository) FindAll(ctx context.Context, status string) ([]entity.Deal, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return findAll[entity.Deal](ctx, r.coll, filter)
}

func (r *DealRepository) FindByID(ctx context.Context, id string) (*entity.Deal, error) {
	return findByID[entity.Deal](ctx, r.coll, id)
}

func (r *DealRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Deal, error) {
	return updateByID[entity.Deal](ctx, r.coll, id, fields)
}

func (r *DealRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Deal, error) {
	return updateByID[entity.Deal](ctx, r.coll, id, map[string]any{"status": status})
}

func (r *DealRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *DealRepository) FindByMonth(ctx context.Context, year, month int) ([]entity.Deal, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return findAll[entity.Deal](ctx, r.coll, dateBetween(from, from.AddDate(0, 1, 0)))
}

func (r *DealRepository) FindByYear(ctx context.Context, year int) ([]entity.Deal, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return findAll[entity.Deal](ctx, r.coll, dateBetween(from, from.AddDate(1, 0, 0)))
}

func (r *DealRepository) FindByDate(ctx context.Context, day time.Time) ([]entity.Deal, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return findAll[entity.Deal](ctx, r.coll, dateBetween(from, from.AddDate(0, 0, 1)))
}

func (r *DealRepository) Search(ctx context.Context, q string, limit int64) ([]entity.Deal, error) {
	return searchRegex[entity.Deal](ctx, r.coll, q, dealSearchFields, limit)
}
