package validators

import "go.mongodb.org/mongo-driver/bson"

var HotelValidator = schema(nil, bson.M{
	"_id":     objectID,
	"name":    text,
	"address": text,
	"rating":  number,
	"price":   number,
})
