package model

import "time"

type Reservation struct {
	ID              string       `json:"id,omitempty" bson:"_id,omitempty"`
	DateReservation time.Time    `json:"date_reservation" bson:"date_reservation"`
	Tour            Ref[Tour]    `json:"tour" bson:"tour,omitempty"`
	Hotel           Ref[Hotel]   `json:"hotel" bson:"hotel,omitempty"`
	Cliente         Ref[Cliente] `json:"cliente" bson:"cliente,omitempty"`
	DateStart       time.Time    `json:"date_start" bson:"date_start"`
	DateEnd         time.Time    `json:"date_end" bson:"date_end"`
	TotalDays       *float64     `json:"total_days" bson:"total_days"`
	Price           *float64     `json:"price" bson:"price"`
}

func (Reservation) CollectionName() string { return "reservations" }

// ReservationInput is shared by create and update. The required tags are only
// enforced on create; an update keeps whatever it does not mention.
type ReservationInput struct {
	Tour      *string   `form:"tour"`
	Hotel     *string   `form:"hotel"`
	Cliente   *string   `form:"cliente"`
	DateStart time.Time `form:"date_start" validate:"required"`
	DateEnd   time.Time `form:"date_end" validate:"required"`
	TotalDays *float64  `form:"total_days" validate:"required"`
	Price     *float64  `form:"price" validate:"required"`
}

func (in *ReservationInput) Reservation(now time.Time) *Reservation {
	return &Reservation{
		DateReservation: now,
		Tour:            NewRef[Tour](deref(in.Tour)),
		Hotel:           NewRef[Hotel](deref(in.Hotel)),
		Cliente:         NewRef[Cliente](deref(in.Cliente)),
		DateStart:       in.DateStart,
		DateEnd:         in.DateEnd,
		TotalDays:       in.TotalDays,
		Price:           in.Price,
	}
}

func (in *ReservationInput) Changes() Changes {
	c := Changes{}
	putRef[Tour](c, "tour", in.Tour)
	putRef[Hotel](c, "hotel", in.Hotel)
	putRef[Cliente](c, "cliente", in.Cliente)
	putTime(c, "date_start", in.DateStart)
	putTime(c, "date_end", in.DateEnd)
	put(c, "total_days", in.TotalDays)
	put(c, "price", in.Price)
	return c
}
