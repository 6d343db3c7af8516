package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Referent is implemented by every entity that can be the target of a Ref.
type Referent interface {
	CollectionName() string
}

// Ref points at a document of T's collection. It is stored as a bare ObjectID
// and is never checked for existence: the target may have been deleted.
type Ref[T Referent] struct {
	ID string
}

func NewRef[T Referent](id string) Ref[T] {
	return Ref[T]{ID: strings.TrimSpace(id)}
}

func (r Ref[T]) Collection() string {
	var target T
	return target.CollectionName()
}

func (r Ref[T]) IsZero() bool {
	return r.ID == ""
}

func (r Ref[T]) String() string {
	return r.ID
}

func (r Ref[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.ID == "" {
		return bson.TypeNull, nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(r.ID)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid %s reference %q: %w", r.Collection(), r.ID, err)
	}
	return bson.MarshalValue(oid)
}

func (r *Ref[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		r.ID = ""
	case bson.TypeObjectID:
		r.ID = raw.ObjectID().Hex()
	case bson.TypeString:
		r.ID = raw.StringValue()
	default:
		return fmt.Errorf("cannot decode %s reference from bson type %s", r.Collection(), t)
	}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
