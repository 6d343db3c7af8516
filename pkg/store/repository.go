package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"turismo/pkg/model"
)

// Repository is the data access contract shared by every collection.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) (string, error)
	UpdateByID(ctx context.Context, id string, changes model.Changes) error
	DeleteByID(ctx context.Context, id string) error
}

type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

type mongoRepository[T model.Referent] struct {
	collection *mongo.Collection
	timeouts   Timeouts
}

// NewMongoRepository binds T to the collection named by T.CollectionName().
func NewMongoRepository[T model.Referent](db *mongo.Database, timeouts Timeouts) Repository[T] {
	var target T
	return &mongoRepository[T]{
		collection: db.Collection(target.CollectionName()),
		timeouts:   timeouts,
	}
}

// withTimeout keeps the caller's deadline when it is tighter than timeout.
func (r *mongoRepository[T]) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoRepository[T]) name() string {
	return r.collection.Name()
}

func (r *mongoRepository[T]) FindAll(ctx context.Context) ([]*T, error) {
	ctx, cancel := r.withTimeout(ctx, r.timeouts.Read)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.name(), err)
	}
	defer cursor.Close(ctx)

	docs := []*T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.name(), err)
	}
	return docs, nil
}

func (r *mongoRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := r.withTimeout(ctx, r.timeouts.Read)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	var doc T
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, r.name(), id)
		}
		return nil, fmt.Errorf("failed to find %s: %w", r.name(), err)
	}
	return &doc, nil
}

func (r *mongoRepository[T]) Create(ctx context.Context, doc *T) (string, error) {
	ctx, cancel := r.withTimeout(ctx, r.timeouts.Write)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", r.name(), err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}

// UpdateByID sets only the given fields. Whether a document matched is not
// reported; an unknown id is a silent no-op.
func (r *mongoRepository[T]) UpdateByID(ctx context.Context, id string, changes model.Changes) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	if len(changes) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx, r.timeouts.Write)
	defer cancel()

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": changes})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.name(), err)
	}
	return nil
}

// DeleteByID removes the document. Documents referencing it are left as they are.
func (r *mongoRepository[T]) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	ctx, cancel := r.withTimeout(ctx, r.timeouts.Write)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.name(), err)
	}
	return nil
}
