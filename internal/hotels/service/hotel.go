package service

import (
	"context"

	"turismo/internal/crud"
	"turismo/pkg/kafka"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/store"
)

const Entity = "hotel"

type HotelService interface {
	List(ctx context.Context) ([]*model.Hotel, error)
	GetForEdit(ctx context.Context, id string) (*model.Hotel, error)
	Create(ctx context.Context, in *model.HotelInput) (string, error)
	Update(ctx context.Context, id string, in *model.HotelInput) error
	Delete(ctx context.Context, id string) error
}

type hotelService struct {
	base *crud.Service[model.Hotel]
}

func NewHotelService(
	repo store.Repository[model.Hotel],
	events kafka.EventPublisher,
	log *logger.Logger,
) HotelService {
	return &hotelService{
		base: crud.NewService(Entity, crud.Noun{Singular: "hotel", Plural: "hotels"}, repo, events, log),
	}
}

func (s *hotelService) List(ctx context.Context) ([]*model.Hotel, error) {
	return s.base.List(ctx)
}

func (s *hotelService) GetForEdit(ctx context.Context, id string) (*model.Hotel, error) {
	return s.base.Get(ctx, id)
}

func (s *hotelService) Create(ctx context.Context, in *model.HotelInput) (string, error) {
	return s.base.Create(ctx, in.Hotel())
}

func (s *hotelService) Update(ctx context.Context, id string, in *model.HotelInput) error {
	return s.base.Update(ctx, id, in.Changes())
}

func (s *hotelService) Delete(ctx context.Context, id string) error {
	return s.base.Delete(ctx, id)
}
