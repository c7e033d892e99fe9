package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type FileRepository struct {
	coll *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{coll: db.Collection("files")}
}

func (r *FileRepository) Create(ctx context.Context, f *entity.File) error {
	now := time.Now()
	f.ID = bson.NewObjectID()
	f.CreatedAt = now
	f.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, f)
	return err
}

// FindAll lists one level of the hierarchy: root entries when parentID is
// empty, a folder's entries otherwise.
func (r *FileRepository) FindAll(ctx context.Context, parentID string) ([]entity.File, error) {
	filter := bson.M{"parentId": nil}
	if parentID != "" {
		oid, err := objectID(parentID)
		if err != nil {
			return nil, err
		}
		filter = bson.M{"parentId": oid}
	}
	return findAll[entity.File](ctx, r.coll, filter)
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*entity.File, error) {
	return findByID[entity.File](ctx, r.coll, id)
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
