package service

import (
	"context"
	"testing"

	"turismo/internal/crud/crudtest"
	apperrors "turismo/pkg/errors"
	"turismo/pkg/logger"
	"turismo/pkg/model"
)

func ptr[V any](v V) *V { return &v }

func newService() (HotelService, *crudtest.MemoryRepository[model.Hotel]) {
	repo := crudtest.NewMemoryRepository[model.Hotel]()
	return NewHotelService(repo, &crudtest.RecordingPublisher{}, logger.Discard()), repo
}

func TestCreate_ListContainsSubmittedFields(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.HotelInput{
		Name:    ptr("  Hotel   Plaza "),
		Address: ptr("5th Ave"),
		Rating:  ptr(4.0),
		Price:   ptr(120.0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	hotels, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(hotels))
	}
	h := hotels[0]
	if h.Name != "  Hotel   Plaza " || h.Address != "5th Ave" || *h.Rating != 4 || *h.Price != 120 {
		t.Errorf("unexpected hotel %+v", h)
	}
}

func TestCreate_StoresNumbersAsSubmitted(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	id, err := svc.Create(ctx, &model.HotelInput{Name: ptr("Plaza"), Rating: ptr(-1.0), Price: ptr(-5.0)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 hotel, got %d", repo.Len())
	}

	h, _ := svc.GetForEdit(ctx, id)
	if *h.Rating != -1 || *h.Price != -5 {
		t.Errorf("unexpected hotel %+v", h)
	}
}

func TestCreate_EmptyTextFieldsStoredAsEmptyStrings(t *testing.T) {
	svc, repo := newService()

	id, err := svc.Create(context.Background(), &model.HotelInput{Name: ptr(""), Price: ptr(80.0)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	raw := repo.Raw(id)
	for _, key := range []string{"name", "address"} {
		if v, ok := raw[key]; !ok || v != "" {
			t.Errorf("expected %s stored as empty string, got %v (present %v)", key, v, ok)
		}
	}
	if _, ok := raw["rating"]; ok {
		t.Error("an empty number should not be stored")
	}
}

func TestUpdate_KeepsOmittedFields(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	id, _ := svc.Create(ctx, &model.HotelInput{Name: ptr("Plaza"), Address: ptr("5th Ave"), Price: ptr(100.0)})
	if err := svc.Update(ctx, id, &model.HotelInput{Price: ptr(150.0)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	h, err := svc.GetForEdit(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *h.Price != 150 || h.Name != "Plaza" || h.Address != "5th Ave" {
		t.Errorf("unexpected hotel after update %+v", h)
	}
}

func TestDelete_ThenGetIsNotFound(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	id, _ := svc.Create(ctx, &model.HotelInput{Name: ptr("Plaza")})
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetForEdit(ctx, id); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
