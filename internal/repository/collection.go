package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse_api/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionRepository implements domain.Repository over one collection.
type collectionRepository[T any] struct {
	coll   *mongo.Collection
	schema schema
	log    *logrus.Logger
	now    func() time.Time
}

func newCollectionRepository[T any](db *mongo.Database, collection string, s schema, logger *logrus.Logger) *collectionRepository[T] {
	return &collectionRepository[T]{
		coll:   db.Collection(collection),
		schema: s,
		log:    logger,
		now:    time.Now,
	}
}

func (r *collectionRepository[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		r.log.Errorf("Failed to list %s: %v", r.coll.Name(), err)
		return nil, domain.NewStoreError("could not list "+r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		r.log.Errorf("Failed to decode %s: %v", r.coll.Name(), err)
		return nil, domain.NewStoreError("could not decode "+r.coll.Name(), err)
	}
	if items == nil {
		items = []T{}
	}

	r.log.Infof("Retrieved %d %s", len(items), r.coll.Name())
	return items, nil
}

func (r *collectionRepository[T]) Create(ctx context.Context, fields map[string]any) (*T, error) {
	doc, err := r.schema.forCreate(fields)
	if err != nil {
		r.log.Warnf("Rejected %s document: %v", r.schema.resource, err)
		return nil, err
	}

	now := r.timestamp()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.log.Errorf("Failed to insert %s: %v", r.schema.resource, err)
		return nil, domain.NewStoreError("could not create "+strings.ToLower(r.schema.resource), err)
	}
	doc["_id"] = res.InsertedID

	created, err := decodeDocument[T](doc)
	if err != nil {
		r.log.Errorf("Failed to decode created %s: %v", r.schema.resource, err)
		return nil, domain.NewStoreError("could not decode created "+strings.ToLower(r.schema.resource), err)
	}

	r.log.Infof("%s created successfully with ID: %v", r.schema.resource, res.InsertedID)
	return created, nil
}

func (r *collectionRepository[T]) UpdateByID(ctx context.Context, id string, fields map[string]any) (*T, error) {
	oid, err := r.parseID(id)
	if err != nil {
		return nil, err
	}

	set, unset, err := r.schema.forUpdate(fields)
	if err != nil {
		r.log.Warnf("Rejected %s update for ID %s: %v", r.schema.resource, id, err)
		return nil, err
	}
	set["updatedAt"] = r.timestamp()

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated T
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("%s with ID %s not found for update", r.schema.resource, id)
			return nil, r.notFound()
		}
		r.log.Errorf("Failed to update %s ID %s: %v", r.schema.resource, id, err)
		return nil, domain.NewStoreError("could not update "+strings.ToLower(r.schema.resource), err)
	}

	r.log.Infof("%s updated successfully with ID: %s", r.schema.resource, id)
	return &updated, nil
}

// DeleteByID is a no-op when nothing matches.
func (r *collectionRepository[T]) DeleteByID(ctx context.Context, id string) error {
	oid, err := r.parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Errorf("Failed to delete %s ID %s: %v", r.schema.resource, id, err)
		return domain.NewStoreError("could not delete "+strings.ToLower(r.schema.resource), err)
	}
	if res.DeletedCount == 0 {
		r.log.Warnf("Attempted to delete non-existent %s ID %s", r.schema.resource, id)
		return nil
	}

	r.log.Infof("%s deleted successfully with ID: %s", r.schema.resource, id)
	return nil
}

func (r *collectionRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := r.parseID(id)
	if err != nil {
		return nil, err
	}

	var item T
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("%s with ID %s not found", r.schema.resource, id)
			return nil, r.notFound()
		}
		r.log.Errorf("Failed to get %s by ID %s: %v", r.schema.resource, id, err)
		return nil, domain.NewStoreError("could not get "+strings.ToLower(r.schema.resource)+" by id", err)
	}

	r.log.Infof("%s retrieved successfully with ID: %s", r.schema.resource, id)
	return &item, nil
}

func (r *collectionRepository[T]) parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.log.Warnf("Invalid %s ID: %q", strings.ToLower(r.schema.resource), id)
		return primitive.NilObjectID, domain.NewValidationError(
			fmt.Sprintf("Invalid %s id", strings.ToLower(r.schema.resource)),
			domain.Violation{Field: "id", Message: "must be a valid MongoDB ObjectId", Value: id},
		)
	}
	return oid, nil
}

func (r *collectionRepository[T]) notFound() error {
	return domain.NewNotFoundError(r.schema.resource + " not found")
}

// timestamp is truncated to the store's millisecond precision so the
// returned record matches what a later read yields.
func (r *collectionRepository[T]) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func decodeDocument[T any](doc bson.M) (*T, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
