package test

import (
	"context"
	"sync"

	"github.com/polkiloo/vegdelivery/internal/events"
)

// NotifierStub records published events.
type NotifierStub struct {
	Err error

	mu     sync.Mutex
	events []events.Event
}

// Publish stores event and returns configured error.
func (s *NotifierStub) Publish(_ context.Context, event events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.Err
}

// Events returns a snapshot of recorded events.
func (s *NotifierStub) Events() []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]events.Event(nil), s.events...)
}

// Last returns the latest event or false when none was recorded.
func (s *NotifierStub) Last() (events.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return events.Event{}, false
	}
	return s.events[len(s.events)-1], true
}

// PublisherStub mimics the broker publisher.
type PublisherStub struct {
	PublishFn func(context.Context, events.Event) error
	CloseErr  error

	mu        sync.Mutex
	Published []events.Event
	Closed    bool
}

// Publish records event or delegates to override.
func (s *PublisherStub) Publish(ctx context.Context, event events.Event) error {
	if s.PublishFn != nil {
		if err := s.PublishFn(ctx, event); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, event)
	return nil
}

// Count returns number of recorded events.
func (s *PublisherStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Published)
}

// Close marks publisher as closed.
func (s *PublisherStub) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
	return s.CloseErr
}
