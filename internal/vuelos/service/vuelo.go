package service

import (
	"context"

	"turismo/internal/crud"
	"turismo/pkg/kafka"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/store"
)

const Entity = "vuelo"

type VueloService interface {
	List(ctx context.Context) ([]*model.Vuelo, error)
	GetForEdit(ctx context.Context, id string) (*model.Vuelo, error)
	Create(ctx context.Context, in *model.VueloInput) (string, error)
	Update(ctx context.Context, id string, in *model.VueloInput) error
	Delete(ctx context.Context, id string) error
}

type vueloService struct {
	base *crud.Service[model.Vuelo]
}

func NewVueloService(
	repo store.Repository[model.Vuelo],
	events kafka.EventPublisher,
	log *logger.Logger,
) VueloService {
	return &vueloService{
		base: crud.NewService(Entity, crud.Noun{Singular: "vuelo", Plural: "vuelos"}, repo, events, log),
	}
}

func (s *vueloService) List(ctx context.Context) ([]*model.Vuelo, error) {
	return s.base.List(ctx)
}

func (s *vueloService) GetForEdit(ctx context.Context, id string) (*model.Vuelo, error) {
	return s.base.Get(ctx, id)
}

func (s *vueloService) Create(ctx context.Context, in *model.VueloInput) (string, error) {
	return s.base.Create(ctx, in.Vuelo())
}

func (s *vueloService) Update(ctx context.Context, id string, in *model.VueloInput) error {
	return s.base.Update(ctx, id, in.Changes())
}

func (s *vueloService) Delete(ctx context.Context, id string) error {
	return s.base.Delete(ctx, id)
}
