package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection("leads")}
}

var leadSearchFields = []string{
	"companyName", "customerName", "contactNumber", "emailAddress",
	"address", "productName", "gstNumber", "notes",
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	now := time.Now()
	lead.ID = bson.NewObjectID()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, lead)
	return err
}

func (r *LeadRepository) FindAll(ctx context.Context, status string) ([]entity.Lead, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return findAll[entity.Lead](ctx, r.coll, filter)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	return findByID[entity.Lead](ctx, r.coll, id)
}

func (r *LeadRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Lead, error) {
	return updateByID[entity.Lead](ctx, r.coll, id, fields)
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error) {
	return updateByID[entity.Lead](ctx, r.coll, id, map[string]any{"status": status})
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *LeadRepository) FindByMonth(ctx context.Context, year, month int) ([]entity.Lead, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return findAll[entity.Lead](ctx, r.coll, dateBetween(from, from.AddDate(0, 1, 0)))
}

func (r *LeadRepository) FindByYear(ctx context.Context, year int) ([]entity.Lead, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return findAll[entity.Lead](ctx, r.coll, dateBetween(from, from.AddDate(1, 0, 0)))
}

func (r *LeadRepository) FindByDate(ctx context.Context, day time.Time) ([]entity.Lead, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return findAll[entity.Lead](ctx, r.coll, dateBetween(from, from.AddDate(0, 0, 1)))
}

func (r *LeadRepository) Search(ctx context.Context, q string, limit int64) ([]entity.Lead, error) {
	return searchRegex[entity.Lead](ctx, r.coll, q, leadSearchFields, limit)
}
