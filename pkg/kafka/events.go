package kafka

import (
	"context"
	"time"

	"turismo/pkg/logger"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	EventSource = "turismo"
)

// Event is the payload published after every successful write.
type Event struct {
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher announces committed writes. Implementations must not fail the write that
// produced the event.
type EventPublisher interface {
	PublishEvent(ctx context.Context, entity, action, id string)
}

// ProducerPublisher sends events through a Producer, logging delivery failures.
type ProducerPublisher struct {
	producer *Producer
	timeout  time.Duration
	log      *logger.Logger
}

func NewEventPublisher(producer *Producer, timeout time.Duration, log *logger.Logger) *ProducerPublisher {
	return &ProducerPublisher{producer: producer, timeout: timeout, log: log}
}

func (p *ProducerPublisher) PublishEvent(ctx context.Context, entity, action, id string) {
	event := Event{
		Type:       entity + "." + action,
		Entity:     entity,
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}

	msg, err := NewMessage().
		WithKey(id).
		WithValue(event).
		WithEventType(event.Type).
		WithCorrelationID(logger.RequestID(ctx)).
		WithSource(EventSource).
		Build()
	if err != nil {
		p.log.Error("failed to build event", "type", event.Type, "id", id, "error", err)
		return
	}

	// The request context may already be cancelled once the redirect is written.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.producer.Publish(pubCtx, msg); err != nil {
		p.log.Error("failed to publish event", "type", event.Type, "id", id, "error", err)
	}
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(context.Context, string, string, string) {}
