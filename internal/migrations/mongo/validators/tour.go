package validators

import "go.mongodb.org/mongo-driver/bson"

var TourValidator = schema(nil, bson.M{
	"_id":         objectID,
	"nameTour":    text,
	"descripcion": text,
	"image": bson.M{
		"bsonType": "object",
		"required": []string{"data", "contentType"},
		"properties": bson.M{
			"data":        bson.M{"bsonType": "binData"},
			"contentType": text,
		},
	},
})
