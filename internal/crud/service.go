package crud

import (
	"context"
	"errors"
	"strings"

	apperrors "turismo/pkg/errors"
	"turismo/pkg/kafka"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/store"
)

// Service runs the five store operations every entity shares and turns their
// failures into user facing errors. Successful writes are logged and announced
// as domain events.
type Service[T any] struct {
	repo   store.Repository[T]
	events kafka.EventPublisher
	log    *logger.Logger
	entity string
	msgs   Messages
}

func NewService[T any](entity string, noun Noun, repo store.Repository[T], events kafka.EventPublisher, log *logger.Logger) *Service[T] {
	if events == nil {
		events = kafka.NoopPublisher{}
	}
	return &Service[T]{
		repo:   repo,
		events: events,
		log:    log.ForEntity(entity),
		entity: entity,
		msgs:   MessagesFor(noun),
	}
}

func (s *Service[T]) Messages() Messages {
	return s.msgs
}

func (s *Service[T]) Log() *logger.Logger {
	return s.log
}

func (s *Service[T]) List(ctx context.Context) ([]*T, error) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list documents", "error", err)
		return nil, apperrors.StoreRead(s.msgs.List, err)
	}
	return docs, nil
}

// Get loads one document for the edit form.
func (s *Service[T]) Get(ctx context.Context, id string) (*T, error) {
	id = strings.TrimSpace(id)
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.log.Warn("Document not found", "id", id)
			return nil, apperrors.New(apperrors.CodeNotFound, s.msgs.NotFound).
				WithDetails(map[string]any{"resource": s.entity, "id": id})
		}
		s.log.Error("Failed to get document", "id", id, "error", err)
		return nil, apperrors.StoreRead(s.msgs.Edit, err)
	}
	return doc, nil
}

func (s *Service[T]) Create(ctx context.Context, doc *T) (string, error) {
	id, err := s.repo.Create(ctx, doc)
	if err != nil {
		s.log.Error("Failed to create document", "error", err)
		return "", apperrors.StoreWrite(s.msgs.Create, err)
	}

	s.log.Info("Document created", "id", id)
	s.events.PublishEvent(ctx, s.entity, kafka.ActionCreated, id)
	return id, nil
}

// Update sets only the submitted fields. An id that matches nothing is not an error.
func (s *Service[T]) Update(ctx context.Context, id string, changes model.Changes) error {
	id = strings.TrimSpace(id)
	if err := s.repo.UpdateByID(ctx, id, changes); err != nil {
		s.log.Error("Failed to update document", "id", id, "error", err)
		return apperrors.StoreWrite(s.msgs.Update, err)
	}

	s.log.Info("Document updated", "id", id, "fields", len(changes))
	s.events.PublishEvent(ctx, s.entity, kafka.ActionUpdated, id)
	return nil
}

// Delete removes the document and nothing else; references to it are left dangling.
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Error("Failed to delete document", "id", id, "error", err)
		return apperrors.StoreWrite(s.msgs.Delete, err)
	}

	s.log.Info("Document deleted", "id", id)
	s.events.PublishEvent(ctx, s.entity, kafka.ActionDeleted, id)
	return nil
}

// Rejected reports an input that failed validation as the generic failure of op.
func (s *Service[T]) Rejected(op string, err error) error {
	s.log.Warn("Input rejected", "operation", op, "error", err)
	return apperrors.Validation(op, err)
}

// IndexBy maps documents by the key returned from id.
func IndexBy[T any](docs []*T, id func(*T) string) map[string]*T {
	index := make(map[string]*T, len(docs))
	for _, doc := range docs {
		index[id(doc)] = doc
	}
	return index
}
