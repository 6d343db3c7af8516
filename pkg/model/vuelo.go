package model

type GeoPoint struct {
	Lat *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

type Vuelo struct {
	ID          string   `json:"id,omitempty" bson:"_id,omitempty"`
	Origin      GeoPoint `json:"origin" bson:"origin"`
	Destiny     GeoPoint `json:"destiny" bson:"destiny"`
	OriginName  string   `json:"origin_name" bson:"origin_name"`
	DestinyName string   `json:"destiny_name" bson:"destiny_name"`
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty"`
	AeroLine    string   `json:"aero_line" bson:"aero_line"`
}

func (Vuelo) CollectionName() string { return "vuelos" }

type VueloInput struct {
	OriginLat   *float64 `form:"origin_lat"`
	OriginLng   *float64 `form:"origin_lng"`
	DestinyLat  *float64 `form:"destiny_lat"`
	DestinyLng  *float64 `form:"destiny_lng"`
	OriginName  *string  `form:"origin_name"`
	DestinyName *string  `form:"destiny_name"`
	Price       *float64 `form:"price"`
	AeroLine    *string  `form:"aero_line"`
}

func (in *VueloInput) Vuelo() *Vuelo {
	return &Vuelo{
		Origin:      GeoPoint{Lat: in.OriginLat, Lng: in.OriginLng},
		Destiny:     GeoPoint{Lat: in.DestinyLat, Lng: in.DestinyLng},
		OriginName:  deref(in.OriginName),
		DestinyName: deref(in.DestinyName),
		Price:       in.Price,
		AeroLine:    deref(in.AeroLine),
	}
}

// Changes uses dotted keys so updating one coordinate keeps the other.
func (in *VueloInput) Changes() Changes {
	c := Changes{}
	put(c, "origin.lat", in.OriginLat)
	put(c, "origin.lng", in.OriginLng)
	put(c, "destiny.lat", in.DestinyLat)
	put(c, "destiny.lng", in.DestinyLng)
	put(c, "origin_name", in.OriginName)
	put(c, "destiny_name", in.DestinyName)
	put(c, "price", in.Price)
	put(c, "aero_line", in.AeroLine)
	return c
}
