package model

type Hotel struct {
	ID      string   `json:"id,omitempty" bson:"_id,omitempty"`
	Name    string   `json:"name" bson:"name"`
	Address string   `json:"address" bson:"address"`
	Rating  *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	Price   *float64 `json:"price,omitempty" bson:"price,omitempty"`
}

func (Hotel) CollectionName() string { return "hotels" }

type HotelInput struct {
	Name    *string  `form:"name"`
	Address *string  `form:"address"`
	Rating  *float64 `form:"rating"`
	Price   *float64 `form:"price"`
}

func (in *HotelInput) Hotel() *Hotel {
	return &Hotel{
		Name:    deref(in.Name),
		Address: deref(in.Address),
		Rating:  in.Rating,
		Price:   in.Price,
	}
}

func (in *HotelInput) Changes() Changes {
	c := Changes{}
	put(c, "name", in.Name)
	put(c, "address", in.Address)
	put(c, "rating", in.Rating)
	put(c, "price", in.Price)
	return c
}
