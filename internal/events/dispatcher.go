package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Handler handles a published event.
type Handler func(context.Context, Event) error

// Dispatcher allows event publication and subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler Handler)
	SubscribeAll(handler Handler)
}

// InMemoryDispatcher synchronously fans events out to registered handlers.
type InMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Handler
	wildcard  []Handler
	logger    *slog.Logger
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher(logger *slog.Logger) *InMemoryDispatcher {
	return &InMemoryDispatcher{
		listeners: make(map[EventType][]Handler),
		logger:    logger,
	}
}

// Publish invokes every handler for the event type, then wildcard handlers.
// Handler failures are logged and joined; remaining handlers still run.
func (d *InMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := make([]Handler, 0, len(d.listeners[event.Type])+len(d.wildcard))
	handlers = append(handlers, d.listeners[event.Type]...)
	handlers = append(handlers, d.wildcard...)
	d.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			d.logger.Warn("event handler failed",
				slog.String("event", string(event.Type)),
				slog.String("id", event.ID),
				slog.String("error", err.Error()),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers a handler for the given event type.
func (d *InMemoryDispatcher) Subscribe(eventType EventType, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}

// SubscribeAll registers a handler for every event type.
func (d *InMemoryDispatcher) SubscribeAll(handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wildcard = append(d.wildcard, handler)
}

var _ Dispatcher = (*InMemoryDispatcher)(nil)
