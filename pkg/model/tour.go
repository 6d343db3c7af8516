package model

// Image is stored inline in the tour document. Data and ContentType always
// travel together.
type Image struct {
	Data        []byte `json:"-" bson:"data"`
	ContentType string `json:"contentType" bson:"contentType"`
}

type Tour struct {
	ID          string `json:"id,omitempty" bson:"_id,omitempty"`
	NameTour    string `json:"nameTour" bson:"nameTour"`
	Image       *Image `json:"image,omitempty" bson:"image,omitempty"`
	Descripcion string `json:"descripcion" bson:"descripcion"`
}

func (Tour) CollectionName() string { return "tours" }

func (t *Tour) HasImage() bool {
	return t.Image != nil && len(t.Image.Data) > 0
}

// TourInput is the tour form. Image is nil when no file was submitted, in
// which case an update leaves the stored image alone.
type TourInput struct {
	NameTour    *string `form:"nameTour"`
	Descripcion *string `form:"descripcion"`
	Image       *Image  `form:"-"`
}

func (in *TourInput) Tour() *Tour {
	return &Tour{
		NameTour:    deref(in.NameTour),
		Descripcion: deref(in.Descripcion),
		Image:       in.Image,
	}
}

func (in *TourInput) Changes() Changes {
	c := Changes{}
	put(c, "nameTour", in.NameTour)
	put(c, "descripcion", in.Descripcion)
	put(c, "image", in.Image)
	return c
}
