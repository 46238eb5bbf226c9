package stubs

import (
	"context"
	"sync"
	"usernetwork/src/domain"
)

// EventPublisherStub captura os eventos publicados, sem Kafka.
type EventPublisherStub struct {
	mu     sync.Mutex
	events []PublishedEvent
}

type PublishedEvent struct {
	EventType string
	Data      domain.ConnectionEventData
}

func NewEventPublisherStub() *EventPublisherStub {
	return &EventPublisherStub{}
}

func (s *EventPublisherStub) PublishConnectionEvent(ctx context.Context, eventType string, data domain.ConnectionEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, PublishedEvent{EventType: eventType, Data: data})
	return nil
}

func (s *EventPublisherStub) Published() []PublishedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]PublishedEvent, len(s.events))
	copy(out, s.events)
	return out
}
