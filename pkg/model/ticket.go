package model

import "time"

type Ticket struct {
	ID            string       `json:"id,omitempty" bson:"_id,omitempty"`
	Price         *float64     `json:"price,omitempty" bson:"price,omitempty"`
	Tour          Ref[Tour]    `json:"tour" bson:"tour,omitempty"`
	Vuelo         Ref[Vuelo]   `json:"vuelo" bson:"vuelo,omitempty"`
	Cliente       Ref[Cliente] `json:"cliente" bson:"cliente,omitempty"`
	DepartureDate time.Time    `json:"departure_date" bson:"departure_date,omitempty"`
	ArrivalDate   time.Time    `json:"arrival_date" bson:"arrival_date,omitempty"`
	DatePurchase  time.Time    `json:"date_purchase" bson:"date_purchase,omitempty"`
}

func (Ticket) CollectionName() string { return "tickets" }

type TicketInput struct {
	Price         *float64  `form:"price"`
	Tour          *string   `form:"tour"`
	Vuelo         *string   `form:"vuelo"`
	Cliente       *string   `form:"cliente"`
	DepartureDate time.Time `form:"departure_date"`
	ArrivalDate   time.Time `form:"arrival_date"`
	DatePurchase  time.Time `form:"date_purchase"`
}

func (in *TicketInput) Ticket() *Ticket {
	return &Ticket{
		Price:         in.Price,
		Tour:          NewRef[Tour](deref(in.Tour)),
		Vuelo:         NewRef[Vuelo](deref(in.Vuelo)),
		Cliente:       NewRef[Cliente](deref(in.Cliente)),
		DepartureDate: in.DepartureDate,
		ArrivalDate:   in.ArrivalDate,
		DatePurchase:  in.DatePurchase,
	}
}

func (in *TicketInput) Changes() Changes {
	c := Changes{}
	put(c, "price", in.Price)
	putRef[Tour](c, "tour", in.Tour)
	putRef[Vuelo](c, "vuelo", in.Vuelo)
	putRef[Cliente](c, "cliente", in.Cliente)
	putTime(c, "departure_date", in.DepartureDate)
	putTime(c, "arrival_date", in.ArrivalDate)
	putTime(c, "date_purchase", in.DatePurchase)
	return c
}
