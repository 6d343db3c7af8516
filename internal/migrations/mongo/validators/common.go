package validators

import "go.mongodb.org/mongo-driver/bson"

var (
	number    = bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}}
	text      = bson.M{"bsonType": "string"}
	date      = bson.M{"bsonType": "date"}
	objectID  = bson.M{"bsonType": "objectId"}
	reference = bson.M{"bsonType": bson.A{"objectId", "null"}}
)

func schema(required []string, properties bson.M) bson.M {
	s := bson.M{
		"bsonType":             "object",
		"additionalProperties": true,
		"properties":           properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return bson.M{"$jsonSchema": s}
}
