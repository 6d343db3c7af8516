package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"turismo/pkg/logger"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "turismo.events")

	msg, err := NewMessage().WithKey("abc").WithValue(map[string]string{"a": "b"}).WithEventType("hotel.created").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := p.Publish(context.Background(), msg); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(w.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.messages))
	}
	if string(w.messages[0].Key) != "abc" {
		t.Errorf("unexpected key %q", w.messages[0].Key)
	}
	if header(w.messages[0], HeaderEventType) != "hotel.created" {
		t.Errorf("missing event type header")
	}
	if header(w.messages[0], HeaderEventID) == "" {
		t.Errorf("missing event id header")
	}
}

func TestProducer_PublishRejectsInvalid(t *testing.T) {
	p := newProducer(&fakeWriter{}, "t")

	if err := p.Publish(context.Background(), Message{Value: []byte("x")}); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey, got %v", err)
	}
	if err := p.Publish(context.Background(), Message{Key: "k"}); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("expected ErrEmptyValue, got %v", err)
	}
}

func TestProducer_Closed(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "t")

	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !w.closed {
		t.Error("writer not closed")
	}
	if err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")}); !errors.Is(err, ErrProducerClosed) {
		t.Errorf("expected ErrProducerClosed, got %v", err)
	}
}

func TestProducer_MiddlewareOrder(t *testing.T) {
	p := newProducer(&fakeWriter{}, "t")
	var calls []string
	for _, name := range []string{"outer", "inner"} {
		name := name
		p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
			calls = append(calls, name)
			return next(ctx, msg)
		})
	}

	if err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(calls) != 2 || calls[0] != "outer" || calls[1] != "inner" {
		t.Errorf("unexpected middleware order %v", calls)
	}
}

func TestProducerPublisher_PublishEvent(t *testing.T) {
	w := &fakeWriter{}
	pub := NewEventPublisher(newProducer(w, "t"), time.Second, logger.Discard())

	ctx := logger.WithRequestID(context.Background(), "req-1")
	pub.PublishEvent(ctx, "hotel", ActionDeleted, "65f000000000000000000001")

	if len(w.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.messages))
	}
	var event Event
	if err := json.Unmarshal(w.messages[0].Value, &event); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if event.Type != "hotel.deleted" || event.EntityID != "65f000000000000000000001" {
		t.Errorf("unexpected event %+v", event)
	}
	if header(w.messages[0], HeaderCorrelationID) != "req-1" {
		t.Errorf("expected correlation id req-1")
	}
}

func TestProducerPublisher_FailureIsSwallowed(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	pub := NewEventPublisher(newProducer(w, "t"), time.Second, logger.Discard())

	pub.PublishEvent(context.Background(), "tour", ActionCreated, "id")
}
