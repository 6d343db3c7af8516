package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Changes collects the fields of an update request that were actually
// submitted. Keys absent from Changes keep their stored value.
type Changes = bson.M

func put[V any](c Changes, key string, v *V) {
	if v != nil {
		c[key] = *v
	}
}

func putTime(c Changes, key string, v time.Time) {
	if !v.IsZero() {
		c[key] = v
	}
}

func putRef[T Referent](c Changes, key string, id *string) {
	if id != nil {
		c[key] = NewRef[T](*id)
	}
}

func deref[V any](v *V) V {
	var zero V
	if v == nil {
		return zero
	}
	return *v
}
