package validators

import "go.mongodb.org/mongo-driver/bson"

var geoPoint = bson.M{
	"bsonType": "object",
	"properties": bson.M{
		"lat": number,
		"lng": number,
	},
}

var VueloValidator = schema(nil, bson.M{
	"_id":          objectID,
	"origin":       geoPoint,
	"destiny":      geoPoint,
	"origin_name":  text,
	"destiny_name": text,
	"price":        number,
	"aero_line":    text,
})
