package service

import (
	"context"
	"errors"
	"testing"

	"turismo/internal/crud/crudtest"
	apperrors "turismo/pkg/errors"
	"turismo/pkg/kafka"
	"turismo/pkg/logger"
	"turismo/pkg/model"
)

func ptr[V any](v V) *V { return &v }

func newService() (ClienteService, *crudtest.MemoryRepository[model.Cliente], *crudtest.RecordingPublisher) {
	repo := crudtest.NewMemoryRepository[model.Cliente]()
	events := &crudtest.RecordingPublisher{}
	return NewClienteService(repo, events, logger.Discard()), repo, events
}

func TestCreate_StoresFieldsAsSubmitted(t *testing.T) {
	svc, _, events := newService()
	ctx := context.Background()

	in := &model.ClienteInput{
		Dni:         ptr("12.345-678"),
		FullName:    ptr("Ana  Pérez"),
		CreditCard:  ptr("4111 1111"),
		PhoneNumber: ptr("987654321"),
		TotalVuelos: ptr(-1),
		TotalTours:  ptr(2),
	}
	id, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clientes, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clientes) != 1 {
		t.Fatalf("expected 1 cliente, got %d", len(clientes))
	}
	c := clientes[0]
	if c.Dni != "12.345-678" || c.FullName != "Ana  Pérez" || c.CreditCard != "4111 1111" || c.PhoneNumber != "987654321" {
		t.Errorf("text fields were rewritten: %+v", c)
	}
	if *c.TotalVuelos != -1 || *c.TotalTours != 2 || c.TotalAlojamiento != nil {
		t.Errorf("unexpected counters %v %v %v", c.TotalVuelos, c.TotalAlojamiento, c.TotalTours)
	}

	got := events.Events()
	if len(got) != 1 || got[0].Entity != Entity || got[0].Action != kafka.ActionCreated || got[0].ID != id {
		t.Errorf("unexpected events %+v", got)
	}
}

func TestUpdate_KeepsOmittedFields(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	id, _ := svc.Create(ctx, &model.ClienteInput{Dni: ptr("123"), FullName: ptr("Ana")})
	if err := svc.Update(ctx, id, &model.ClienteInput{FullName: ptr("Ana María")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	c, _ := svc.GetForEdit(ctx, id)
	if c.FullName != "Ana María" || c.Dni != "123" {
		t.Errorf("unexpected cliente %+v", c)
	}
}

func TestList_StoreFailure(t *testing.T) {
	svc, repo, _ := newService()
	repo.Err = errors.New("connection refused")

	_, err := svc.List(context.Background())
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeStoreRead || appErr.Message != "Error retrieving clientes" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestDelete_ThenNotFound(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	id, _ := svc.Create(ctx, &model.ClienteInput{Dni: ptr("123")})
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err := svc.GetForEdit(ctx, id)
	if appErr := apperrors.AsAppError(err); appErr.Message != "Cliente no encontrado" {
		t.Errorf("unexpected error %v", err)
	}
}
