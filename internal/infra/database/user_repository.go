package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	now := time.Now()
	u.ID = bson.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return findByID[entity.User](ctx, r.coll, id)
}

func (r *UserRepository) FindByVerifyToken(ctx context.Context, token string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"verifyToken": token})
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"resetToken": token})
}

func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	return updateByID[entity.User](ctx, r.coll, id, fields)
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var u entity.User
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
