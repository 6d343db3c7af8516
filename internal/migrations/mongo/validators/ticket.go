package validators

import "go.mongodb.org/mongo-driver/bson"

var TicketValidator = schema(nil, bson.M{
	"_id":            objectID,
	"price":          number,
	"tour":           reference,
	"vuelo":          reference,
	"cliente":        reference,
	"departure_date": date,
	"arrival_date":   date,
	"date_purchase":  date,
})
