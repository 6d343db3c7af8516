package validators

import "go.mongodb.org/mongo-driver/bson"

var ClienteValidator = schema(nil, bson.M{
	"_id":              objectID,
	"dni":              text,
	"fullName":         text,
	"creditCard":       text,
	"totalVuelos":      number,
	"totalAlojamiento": number,
	"totalTours":       number,
	"phoneNumber":      text,
})
