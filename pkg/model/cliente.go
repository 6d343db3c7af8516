package model

// Cliente counters are plain stored numbers; no route maintains them.
type Cliente struct {
	ID               string `json:"id,omitempty" bson:"_id,omitempty"`
	Dni              string `json:"dni" bson:"dni"`
	FullName         string `json:"fullName" bson:"fullName"`
	CreditCard       string `json:"creditCard" bson:"creditCard"`
	TotalVuelos      *int   `json:"totalVuelos,omitempty" bson:"totalVuelos,omitempty"`
	TotalAlojamiento *int   `json:"totalAlojamiento,omitempty" bson:"totalAlojamiento,omitempty"`
	TotalTours       *int   `json:"totalTours,omitempty" bson:"totalTours,omitempty"`
	PhoneNumber      string `json:"phoneNumber" bson:"phoneNumber"`
}

func (Cliente) CollectionName() string { return "clientes" }

type ClienteInput struct {
	Dni              *string `form:"dni"`
	FullName         *string `form:"fullName"`
	CreditCard       *string `form:"creditCard"`
	TotalVuelos      *int    `form:"totalVuelos"`
	TotalAlojamiento *int    `form:"totalAlojamiento"`
	TotalTours       *int    `form:"totalTours"`
	PhoneNumber      *string `form:"phoneNumber"`
}

func (in *ClienteInput) Cliente() *Cliente {
	return &Cliente{
		Dni:              deref(in.Dni),
		FullName:         deref(in.FullName),
		CreditCard:       deref(in.CreditCard),
		TotalVuelos:      in.TotalVuelos,
		TotalAlojamiento: in.TotalAlojamiento,
		TotalTours:       in.TotalTours,
		PhoneNumber:      deref(in.PhoneNumber),
	}
}

func (in *ClienteInput) Changes() Changes {
	c := Changes{}
	put(c, "dni", in.Dni)
	put(c, "fullName", in.FullName)
	put(c, "creditCard", in.CreditCard)
	put(c, "totalVuelos", in.TotalVuelos)
	put(c, "totalAlojamiento", in.TotalAlojamiento)
	put(c, "totalTours", in.TotalTours)
	put(c, "phoneNumber", in.PhoneNumber)
	return c
}
