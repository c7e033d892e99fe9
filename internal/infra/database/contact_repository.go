package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection("contacts")}
}

var contactSearchFields = []string{
	"companyName", "customerName", "contactNumber", "emailAddress",
	"address", "gstNumber", "description",
}

func (r *ContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	now := time.Now()
	contact.ID = bson.NewObjectID()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, contact)
	return err
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]entity.Contact, error) {
	return findAll[entity.Contact](ctx, r.coll, bson.M{})
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	return findByID[entity.Contact](ctx, r.coll, id)
}

func (r *ContactRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Contact, error) {
	return updateByID[entity.Contact](ctx, r.coll, id, fields)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *ContactRepository) Search(ctx context.Context, q string, limit int64) ([]entity.Contact, error) {
	return searchRegex[entity.Contact](ctx, r.coll, q, contactSearchFields, limit)
}
