package service

import (
	"context"
	"errors"

	"turismo/internal/crud"
	apperrors "turismo/pkg/errors"
	"turismo/pkg/kafka"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/store"

	"golang.org/x/sync/errgroup"
)

const Entity = "ticket"

const msgETicket = "Error generando e-ticket"

// Row is a ticket joined with the documents it references. Missing targets
// stay nil.
type Row struct {
	Ticket  *model.Ticket
	Tour    *model.Tour
	Vuelo   *model.Vuelo
	Cliente *model.Cliente
}

type Choices struct {
	Tours    []*model.Tour
	Vuelos   []*model.Vuelo
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

// Document is a generated file ready to be served.
type Document struct {
	Filename string
	Data     []byte
}

type Repositories struct {
	Tickets  store.Repository[model.Ticket]
	Tours    store.Repository[model.Tour]
	Vuelos   store.Repository[model.Vuelo]
	Clientes store.Repository[model.Cliente]
}

type TicketService interface {
	List(ctx context.Context) (*Listing, error)
	GetForEdit(ctx context.Context, id string) (*EditView, error)
	Create(ctx context.Context, in *model.TicketInput) (string, error)
	Update(ctx context.Context, id string, in *model.TicketInput) error
	Delete(ctx context.Context, id string) error
	ETicket(ctx context.Context, id string) (*Document, error)
}

type ticketService struct {
	base  *crud.Service[model.Ticket]
	repos Repositories
}

func NewTicketService(
	repos Repositories,
	events kafka.EventPublisher,
	log *logger.Logger,
) TicketService {
	return &ticketService{
		base:  crud.NewService(Entity, crud.Noun{Singular: "ticket", Plural: "tickets"}, repos.Tickets, events, log),
		repos: repos,
	}
}

func (s *ticketService) List(ctx context.Context) (*Listing, error) {
	var tickets []*model.Ticket
	var choices Choices

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tickets, err = s.base.List(gctx)
		return err
	})
	s.fetchChoices(gctx, g, &choices, s.base.Messages().List)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Listing{Rows: s.join(tickets, choices), Choices: choices}, nil
}

func (s *ticketService) GetForEdit(ctx context.Context, id string) (*EditView, error) {
	var ticket *model.Ticket
	var choices Choices

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ticket, err = s.base.Get(gctx, id)
		return err
	})
	s.fetchChoices(gctx, g, &choices, s.base.Messages().Edit)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := s.join([]*model.Ticket{ticket}, choices)
	return &EditView{Row: rows[0], Choices: choices}, nil
}

func (s *ticketService) Create(ctx context.Context, in *model.TicketInput) (string, error) {
	return s.base.Create(ctx, in.Ticket())
}

func (s *ticketService) Update(ctx context.Context, id string, in *model.TicketInput) error {
	return s.base.Update(ctx, id, in.Changes())
}

func (s *ticketService) Delete(ctx context.Context, id string) error {
	return s.base.Delete(ctx, id)
}

// ETicket renders the ticket as a one page PDF. References that no longer
// resolve are printed as blanks.
func (s *ticketService) ETicket(ctx context.Context, id string) (*Document, error) {
	ticket, err := s.base.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	row := Row{Ticket: ticket}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		row.Tour, err = findRef(gctx, s.repos.Tours, ticket.Tour)
		return err
	})
	g.Go(func() error {
		var err error
		row.Vuelo, err = findRef(gctx, s.repos.Vuelos, ticket.Vuelo)
		return err
	})
	g.Go(func() error {
		var err error
		row.Cliente, err = findRef(gctx, s.repos.Clientes, ticket.Cliente)
		return err
	})
	if err := g.Wait(); err != nil {
		s.base.Log().Error("Failed to load e-ticket references", "id", ticket.ID, "error", err)
		return nil, apperrors.StoreRead(msgETicket, err)
	}

	doc, err := buildETicketPDF(row)
	if err != nil {
		s.base.Log().Error("Failed to build e-ticket", "id", ticket.ID, "error", err)
		return nil, apperrors.Internal(msgETicket, err)
	}

	s.base.Log().Info("E-ticket generated", "id", ticket.ID, "size", len(doc.Data))
	return doc, nil
}

// findRef loads the target of ref. An empty, malformed or dangling
// reference yields nil without error.
func findRef[T model.Referent](ctx context.Context, repo store.Repository[T], ref model.Ref[T]) (*T, error) {
	if ref.IsZero() {
		return nil, nil
	}
	doc, err := repo.FindByID(ctx, ref.ID)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
		return nil, nil
	}
	return doc, err
}

func (s *ticketService) fetchChoices(ctx context.Context, g *errgroup.Group, c *Choices, msg string) {
	g.Go(func() error {
		var err error
		c.Tours, err = s.repos.Tours.FindAll(ctx)
		return s.readFailed(msg, "tours", err)
	})
	g.Go(func() error {
		var err error
		c.Vuelos, err = s.repos.Vuelos.FindAll(ctx)
		return s.readFailed(msg, "vuelos", err)
	})
	g.Go(func() error {
		var err error
		c.Clientes, err = s.repos.Clientes.FindAll(ctx)
		return s.readFailed(msg, "clientes", err)
	})
}

func (s *ticketService) readFailed(msg, collection string, err error) error {
	if err == nil {
		return nil
	}
	s.base.Log().Error("Failed to load referenced collection", "collection", collection, "error", err)
	return apperrors.StoreRead(msg, err)
}

func (s *ticketService) join(tickets []*model.Ticket, c Choices) []Row {
	tours := crud.IndexBy(c.Tours, func(t *model.Tour) string { return t.ID })
	vuelos := crud.IndexBy(c.Vuelos, func(v *model.Vuelo) string { return v.ID })
	clientes := crud.IndexBy(c.Clientes, func(cl *model.Cliente) string { return cl.ID })

	rows := make([]Row, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, Row{
			Ticket:  t,
			Tour:    tours[t.Tour.ID],
			Vuelo:   vuelos[t.Vuelo.ID],
			Cliente: clientes[t.Cliente.ID],
		})
	}
	return rows
}
