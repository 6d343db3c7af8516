package model

import (
	"testing"
	"time"
)

func ptr[V any](v V) *V { return &v }

func TestHotelInput_ChangesOnlySubmittedFields(t *testing.T) {
	in := &HotelInput{Name: ptr("Plaza"), Price: ptr(150.0)}
	changes := in.Changes()

	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d: %v", len(changes), changes)
	}
	if changes["name"] != "Plaza" {
		t.Errorf("expected name Plaza, got %v", changes["name"])
	}
	if changes["price"] != 150.0 {
		t.Errorf("expected price 150, got %v", changes["price"])
	}
	if _, ok := changes["address"]; ok {
		t.Errorf("address was not submitted and must not be overwritten")
	}
}

func TestTourInput_ImageReplacedWhole(t *testing.T) {
	withoutFile := (&TourInput{NameTour: ptr("Machu Picchu")}).Changes()
	if _, ok := withoutFile["image"]; ok {
		t.Errorf("image must be preserved when no file is submitted")
	}

	img := &Image{Data: []byte{0x89, 0x50}, ContentType: "image/png"}
	withFile := (&TourInput{Image: img}).Changes()
	got, ok := withFile["image"].(Image)
	if !ok {
		t.Fatalf("expected image to be set as one embedded value, got %T", withFile["image"])
	}
	if got.ContentType != "image/png" || len(got.Data) != 2 {
		t.Errorf("unexpected image %+v", got)
	}
}

func TestVueloInput_DottedCoordinates(t *testing.T) {
	changes := (&VueloInput{OriginLat: ptr(-12.04)}).Changes()
	if _, ok := changes["origin.lat"]; !ok {
		t.Errorf("expected origin.lat in changes, got %v", changes)
	}
	if _, ok := changes["origin"]; ok {
		t.Errorf("whole origin document must not be replaced")
	}
}

func TestReservationInput_Reservation(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := &ReservationInput{
		Hotel:     ptr(" 65a1f0c2e4b0a1b2c3d4e5f6 "),
		DateStart: now.AddDate(0, 1, 0),
		DateEnd:   now.AddDate(0, 1, 5),
		TotalDays: ptr(5.0),
		Price:     ptr(600.0),
	}

	r := in.Reservation(now)
	if !r.DateReservation.Equal(now) {
		t.Errorf("date_reservation should default to creation time")
	}
	if r.Hotel.ID != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Errorf("expected trimmed hotel id, got %q", r.Hotel.ID)
	}
	if !r.Tour.IsZero() {
		t.Errorf("tour was not submitted, expected empty reference")
	}
}

func TestTicketInput_ChangesSkipsZeroDates(t *testing.T) {
	changes := (&TicketInput{Vuelo: ptr("65a1f0c2e4b0a1b2c3d4e5f6")}).Changes()
	if _, ok := changes["departure_date"]; ok {
		t.Errorf("zero departure date must not be written")
	}
	ref, ok := changes["vuelo"].(Ref[Vuelo])
	if !ok || ref.ID != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Errorf("expected vuelo reference, got %#v", changes["vuelo"])
	}
}
