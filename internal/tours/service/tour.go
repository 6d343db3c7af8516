package service

import (
	"context"

	"turismo/internal/crud"
	apperrors "turismo/pkg/errors"
	"turismo/pkg/kafka"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/store"
)

const Entity = "tour"

const msgImageNotFound = "Imagen no encontrada"

type TourService interface {
	List(ctx context.Context) ([]*model.Tour, error)
	GetForEdit(ctx context.Context, id string) (*model.Tour, error)
	Create(ctx context.Context, in *model.TourInput) (string, error)
	Update(ctx context.Context, id string, in *model.TourInput) error
	Delete(ctx context.Context, id string) error
	Image(ctx context.Context, id string) (*model.Image, error)
}

type tourService struct {
	base *crud.Service[model.Tour]
}

func NewTourService(
	repo store.Repository[model.Tour],
	events kafka.EventPublisher,
	log *logger.Logger,
) TourService {
	return &tourService{
		base: crud.NewService(Entity, crud.Noun{Singular: "tour", Plural: "tours"}, repo, events, log),
	}
}

func (s *tourService) List(ctx context.Context) ([]*model.Tour, error) {
	return s.base.List(ctx)
}

func (s *tourService) GetForEdit(ctx context.Context, id string) (*model.Tour, error) {
	return s.base.Get(ctx, id)
}

func (s *tourService) Create(ctx context.Context, in *model.TourInput) (string, error) {
	return s.base.Create(ctx, in.Tour())
}

// Update replaces the stored image only when in carries one. Bytes and
// content type are written in the same $set.
func (s *tourService) Update(ctx context.Context, id string, in *model.TourInput) error {
	if in.Image != nil {
		s.base.Log().Info("Replacing tour image", "id", id, "content_type", in.Image.ContentType, "size", len(in.Image.Data))
	}
	return s.base.Update(ctx, id, in.Changes())
}

func (s *tourService) Delete(ctx context.Context, id string) error {
	return s.base.Delete(ctx, id)
}

// Image returns the stored picture of a tour, or a not found error when the
// tour has none.
func (s *tourService) Image(ctx context.Context, id string) (*model.Image, error) {
	tour, err := s.base.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tour.HasImage() {
		return nil, apperrors.New(apperrors.CodeNotFound, msgImageNotFound).
			WithDetails(map[string]any{"resource": "image", "id": id})
	}
	return tour.Image, nil
}
