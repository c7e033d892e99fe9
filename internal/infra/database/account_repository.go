package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection("accounts")}
}

var accountSearchFields = []string{
	"accountName", "accountNumber", "bankName", "ifscCode", "upiId",
}

func (r *AccountRepository) Create(ctx context.Context, acc *entity.Account) error {
	now := time.Now()
	acc.ID = bson.NewObjectID()
	acc.CreatedAt = now
	acc.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, acc)
	return err
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]entity.Account, error) {
	return findAll[entity.Account](ctx, r.coll, bson.M{})
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	return findByID[entity.Account](ctx, r.coll, id)
}

func (r *AccountRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Account, error) {
	return updateByID[entity.Account](ctx, r.coll, id, fields)
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *AccountRepository) Search(ctx context.Context, q string, limit int64) ([]entity.Account, error) {
	return searchRegex[entity.Account](ctx, r.coll, q, accountSearchFields, limit)
}
