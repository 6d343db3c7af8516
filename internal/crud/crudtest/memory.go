// Package crudtest provides in-memory doubles for service tests.
package crudtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"turismo/pkg/model"
	"turismo/pkg/store"
)

// MemoryRepository keeps documents as BSON maps so updates follow the same
// $set semantics as the Mongo repository, dotted keys included.
type MemoryRepository[T any] struct {
	mu   sync.Mutex
	ids  []string
	docs map[string]bson.M

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryRepository[T any]() *MemoryRepository[T] {
	return &MemoryRepository[T]{docs: map[string]bson.M{}}
}

func (r *MemoryRepository[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// Raw returns the stored map for id, for assertions on the stored shape.
func (r *MemoryRepository[T]) Raw(id string) bson.M {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.docs[id]
}

func (r *MemoryRepository[T]) FindAll(context.Context) ([]*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]*T, 0, len(r.ids))
	for _, id := range r.ids {
		doc, err := decode[T](r.docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (r *MemoryRepository[T]) FindByID(_ context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: %s", store.ErrInvalidID, id)
	}

	m, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	return decode[T](m)
}

func (r *MemoryRepository[T]) Create(_ context.Context, doc *T) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	m := bson.M{}
	if err := bson.Unmarshal(data, &m); err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	m["_id"] = oid
	id := oid.Hex()
	r.ids = append(r.ids, id)
	r.docs[id] = m
	return id, nil
}

func (r *MemoryRepository[T]) UpdateByID(_ context.Context, id string, changes model.Changes) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w: %s", store.ErrInvalidID, id)
	}

	m, ok := r.docs[id]
	if !ok {
		return nil
	}
	for key, value := range changes {
		set(m, strings.Split(key, "."), value)
	}
	return nil
}

func (r *MemoryRepository[T]) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w: %s", store.ErrInvalidID, id)
	}

	delete(r.docs, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

func set(m bson.M, path []string, value any) {
	if len(path) == 1 {
		m[path[0]] = value
		return
	}
	var child bson.M
	switch existing := m[path[0]].(type) {
	case bson.M:
		child = existing
	case bson.D:
		child = existing.Map()
	default:
		child = bson.M{}
	}
	m[path[0]] = child
	set(child, path[1:], value)
}

func decode[T any](m bson.M) (*T, error) {
	data, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
