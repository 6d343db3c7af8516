package service

import (
	"context"
	"time"

	"turismo/internal/crud"
	apperrors "turismo/pkg/errors"
	"turismo/pkg/kafka"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/store"
	"turismo/pkg/validation"

	"golang.org/x/sync/errgroup"
)

const Entity = "reservation"

// Row is a reservation joined with the documents it references. A reference
// whose target no longer exists leaves the matching field nil.
type Row struct {
	Reservation *model.Reservation
	Hotel       *model.Hotel
	Tour        *model.Tour
	Cliente     *model.Cliente
}

// Choices are the documents offered in the reference selects of the forms.
type Choices struct {
	Hotels   []*model.Hotel
	Tours    []*model.Tour
	Clientes []*model.Cliente
}

type Listing struct {
	Rows []Row
	Choices
}

type EditView struct {
	Row Row
	Choices
}

type Repositories struct {
	Reservations store.Repository[model.Reservation]
	Hotels       store.Repository[model.Hotel]
	Tours        store.Repository[model.Tour]
	Clientes     store.Repository[model.Cliente]
}

type ReservationService interface {
	List(ctx context.Context) (*Listing, error)
	GetForEdit(ctx context.Context, id string) (*EditView, error)
	Create(ctx context.Context, in *model.ReservationInput) (string, error)
	Update(ctx context.Context, id string, in *model.ReservationInput) error
	Delete(ctx context.Context, id string) error
}

type reservationService struct {
	base      *crud.Service[model.Reservation]
	repos     Repositories
	validator *validation.Validator
	now       func() time.Time
}

func NewReservationService(
	repos Repositories,
	validator *validation.Validator,
	events kafka.EventPublisher,
	log *logger.Logger,
) ReservationService {
	noun := crud.Noun{Singular: "reservación", Plural: "reservations", Feminine: true}
	return &reservationService{
		base:      crud.NewService(Entity, noun, repos.Reservations, events, log),
		repos:     repos,
		validator: validator,
		now:       time.Now,
	}
}

func (s *reservationService) List(ctx context.Context) (*Listing, error) {
	var reservations []*model.Reservation
	var choices Choices

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = s.base.List(gctx)
		return err
	})
	s.fetchChoices(gctx, g, &choices, s.base.Messages().List)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Listing{Rows: s.join(reservations, choices), Choices: choices}, nil
}

func (s *reservationService) GetForEdit(ctx context.Context, id string) (*EditView, error) {
	var reservation *model.Reservation
	var choices Choices

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservation, err = s.base.Get(gctx, id)
		return err
	})
	s.fetchChoices(gctx, g, &choices, s.base.Messages().Edit)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := s.join([]*model.Reservation{reservation}, choices)
	return &EditView{Row: rows[0], Choices: choices}, nil
}

// Create requires the stay dates, the number of days and the price. A
// rejected reservation is never written.
func (s *reservationService) Create(ctx context.Context, in *model.ReservationInput) (string, error) {
	if err := s.validator.Validate(in); err != nil {
		return "", s.base.Rejected(s.base.Messages().Create, err)
	}
	return s.base.Create(ctx, in.Reservation(s.now().UTC()))
}

// Update writes whatever was submitted; fields left out keep their value.
func (s *reservationService) Update(ctx context.Context, id string, in *model.ReservationInput) error {
	return s.base.Update(ctx, id, in.Changes())
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	return s.base.Delete(ctx, id)
}

// fetchChoices loads the three referenced collections on g. Any failure is
// reported as msg.
func (s *reservationService) fetchChoices(ctx context.Context, g *errgroup.Group, c *Choices, msg string) {
	g.Go(func() error {
		var err error
		c.Hotels, err = s.repos.Hotels.FindAll(ctx)
		return s.readFailed(msg, "hotels", err)
	})
	g.Go(func() error {
		var err error
		c.Tours, err = s.repos.Tours.FindAll(ctx)
		return s.readFailed(msg, "tours", err)
	})
	g.Go(func() error {
		var err error
		c.Clientes, err = s.repos.Clientes.FindAll(ctx)
		return s.readFailed(msg, "clientes", err)
	})
}

func (s *reservationService) readFailed(msg, collection string, err error) error {
	if err == nil {
		return nil
	}
	s.base.Log().Error("Failed to load referenced collection", "collection", collection, "error", err)
	return apperrors.StoreRead(msg, err)
}

func (s *reservationService) join(reservations []*model.Reservation, c Choices) []Row {
	hotels := crud.IndexBy(c.Hotels, func(h *model.Hotel) string { return h.ID })
	tours := crud.IndexBy(c.Tours, func(t *model.Tour) string { return t.ID })
	clientes := crud.IndexBy(c.Clientes, func(cl *model.Cliente) string { return cl.ID })

	rows := make([]Row, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, Row{
			Reservation: r,
			Hotel:       hotels[r.Hotel.ID],
			Tour:        tours[r.Tour.ID],
			Cliente:     clientes[r.Cliente.ID],
		})
	}
	return rows
}
