package database

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

// Shared helpers for the per-entity repositories. Every collection follows the
// same conventions: ObjectID _id, createdAt/updatedAt timestamps, newest-first
// listing, last-write-wins partial updates via $set.

func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document.
		return bson.ObjectID{}, entity.ErrNotFound
	}
	return oid, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func updateByID[T any](ctx context.Context, coll *mongo.Collection, id string, fields map[string]any) (*T, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	delete(fields, "id")
	delete(fields, "_id")
	delete(fields, "createdAt")
	normalizeDates(fields)
	fields["updatedAt"] = time.Now()

	var doc T
	err = coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func searchRegex[T any](ctx context.Context, coll *mongo.Collection, q string, fields []string, limit int64) ([]T, error) {
	pattern := regexp.QuoteMeta(q)
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	cur, err := coll.Find(ctx, bson.M{"$or": or}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func dateBetween(from, to time.Time) bson.M {
	return bson.M{"date": bson.M{"$gte": from, "$lt": to}}
}

// dateFields are the schema fields stored as BSON dates. Only these are
// coerced on partial updates; free-text fields keep date-shaped strings as
// strings.
var dateFields = map[string]bool{
	"date":     true,
	"endDate":  true,
	"taskDate": true,
	"dueDate":  true,
}

// normalizeDates converts date strings coming from a decoded JSON body into
// time.Time so $set keeps the stored field a BSON date rather than a string.
func normalizeDates(fields map[string]any) {
	for k, v := range fields {
		if !dateFields[k] {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			fields[k] = t
			continue
		}
		if t, err := time.Parse("2006-01-02", s); err == nil {
			fields[k] = t
		}
	}
}
