package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection("tasks")}
}

var taskSearchFields = []string{
	"subject", "relatedTo", "name", "assigned", "description",
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	now := time.Now()
	task.ID = bson.NewObjectID()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, task)
	return err
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]entity.Task, error) {
	return findAll[entity.Task](ctx, r.coll, bson.M{})
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	return findByID[entity.Task](ctx, r.coll, id)
}

func (r *TaskRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Task, error) {
	return updateByID[entity.Task](ctx, r.coll, id, fields)
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Task, error) {
	return updateByID[entity.Task](ctx, r.coll, id, map[string]any{"status": status})
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *TaskRepository) Search(ctx context.Context, q string, limit int64) ([]entity.Task, error) {
	return searchRegex[entity.Task](ctx, r.coll, q, taskSearchFields, limit)
}
