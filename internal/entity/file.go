package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	FileKindFile   = "file"
	FileKindFolder = "folder"
)

// File is either an uploaded file or a folder; the hierarchy is one level deep
// (ParentID nil for root entries, set for entries inside a folder).
type File struct {
	ID          bson.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string         `json:"name" bson:"name"`
	Kind        string         `json:"kind" bson:"kind"`
	ParentID    *bson.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty"`
	StoredPath  string         `json:"storedPath,omitempty" bson:"storedPath,omitempty"`
	ContentType string         `json:"contentType,omitempty" bson:"contentType,omitempty"`
	Size        int64          `json:"size,omitempty" bson:"size,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (f *File) Validate() error {
	if f.Name == "" {
		return errors.New("name is required")
	}
	if f.Kind != FileKindFile && f.Kind != FileKindFolder {
		return errors.New("kind must be file or folder")
	}
	return nil
}

type FileRepositoryInterface interface {
	Create(ctx context.Context, f *File) error
	FindAll(ctx context.Context, parentID string) ([]File, error)
	FindByID(ctx context.Context, id string) (*File, error)
	Delete(ctx context.Context, id string) error
}
