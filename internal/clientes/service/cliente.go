package service

import (
	"context"

	"turismo/internal/crud"
	"turismo/pkg/kafka"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/store"
)

const Entity = "cliente"

type ClienteService interface {
	List(ctx context.Context) ([]*model.Cliente, error)
	GetForEdit(ctx context.Context, id string) (*model.Cliente, error)
	Create(ctx context.Context, in *model.ClienteInput) (string, error)
	Update(ctx context.Context, id string, in *model.ClienteInput) error
	Delete(ctx context.Context, id string) error
}

type clienteService struct {
	base *crud.Service[model.Cliente]
}

func NewClienteService(
	repo store.Repository[model.Cliente],
	events kafka.EventPublisher,
	log *logger.Logger,
) ClienteService {
	return &clienteService{
		base: crud.NewService(Entity, crud.Noun{Singular: "cliente", Plural: "clientes"}, repo, events, log),
	}
}

func (s *clienteService) List(ctx context.Context) ([]*model.Cliente, error) {
	return s.base.List(ctx)
}

func (s *clienteService) GetForEdit(ctx context.Context, id string) (*model.Cliente, error) {
	return s.base.Get(ctx, id)
}

func (s *clienteService) Create(ctx context.Context, in *model.ClienteInput) (string, error) {
	return s.base.Create(ctx, in.Cliente())
}

func (s *clienteService) Update(ctx context.Context, id string, in *model.ClienteInput) error {
	return s.base.Update(ctx, id, in.Changes())
}

func (s *clienteService) Delete(ctx context.Context, id string) error {
	return s.base.Delete(ctx, id)
}
