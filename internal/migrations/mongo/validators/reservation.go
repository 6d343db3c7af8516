package validators

import "go.mongodb.org/mongo-driver/bson"

var ReservationValidator = schema(
	[]string{"date_start", "date_end", "total_days", "price"},
	bson.M{
		"_id":              objectID,
		"date_reservation": date,
		"tour":             reference,
		"hotel":            reference,
		"cliente":          reference,
		"date_start":       date,
		"date_end":         date,
		"total_days":       number,
		"price":            number,
	},
)
