package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type InvoiceRepository struct {
	coll *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{coll: db.Collection("invoices")}
}

var invoiceSearchFields = []string{
	"companyName", "customerName", "contactNumber", "emailAddress",
	"address", "productName", "gstNumber",
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	now := time.Now()
	inv.ID = bson.NewObjectID()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, inv)
	return err
}

func (r *InvoiceRepository) FindAll(ctx context.Context, status string) ([]entity.Invoice, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return findAll[entity.Invoice](ctx, r.coll, filter)
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return findByID[entity.Invoice](ctx, r.coll, id)
}

func (r *InvoiceRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Invoice, error) {
	return updateByID[entity.Invoice](ctx, r.coll, id, fields)
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Invoice, error) {
	return updateByID[entity.Invoice](ctx, r.coll, id, map[string]any{"status": status})
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *InvoiceRepository) Search(ctx context.Context, q string, limit int64) ([]entity.Invoice, error) {
	return searchRegex[entity.Invoice](ctx, r.coll, q, invoiceSearchFields, limit)
}
