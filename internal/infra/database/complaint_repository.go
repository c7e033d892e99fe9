package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection("complaints")}
}

var complaintSearchFields = []string{
	"complainerName", "companyName", "contactNumber", "emailAddress",
	"subject", "caseOrigin", "description",
}

func (r *ComplaintRepository) Create(ctx context.Context, c *entity.Complaint) error {
	now := time.Now()
	c.ID = bson.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *ComplaintRepository) FindAll(ctx context.Context) ([]entity.Complaint, error) {
	return findAll[entity.Complaint](ctx, r.coll, bson.M{})
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*entity.Complaint, error) {
	return findByID[entity.Complaint](ctx, r.coll, id)
}

func (r *ComplaintRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Complaint, error) {
	return updateByID[entity.Complaint](ctx, r.coll, id, fields)
}

func (r *ComplaintRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *ComplaintRepository) Search(ctx context.Context, q string, limit int64) ([]entity.Complaint, error) {
	return searchRegex[entity.Complaint](ctx, r.coll, q, complaintSearchFields, limit)
}
