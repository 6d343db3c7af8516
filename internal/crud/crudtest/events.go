package crudtest

import (
	"context"
	"sync"
)

type Event struct {
	Entity string
	Action string
	ID     string
}

// RecordingPublisher remembers every published event.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *RecordingPublisher) PublishEvent(_ context.Context, entity, action, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Event{Entity: entity, Action: action, ID: id})
}

func (p *RecordingPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}
