package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/vegdelivery/internal/events"
)

const publishTimeout = 5 * time.Second

// Publisher is the outbound side of the relay.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// NotificationRelay hands events to a pool of workers that forward them to a Publisher.
// Producers never block: when the queue is full the event is dropped.
type NotificationRelay struct {
	publisher Publisher
	workers   int
	logger    *slog.Logger

	jobs    chan events.Event
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.RWMutex
	running bool
}

// NewNotificationRelay constructs relay worker pool.
func NewNotificationRelay(publisher Publisher, workers, queueSize int, logger *slog.Logger) *NotificationRelay {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &NotificationRelay{
		publisher: publisher,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan events.Event, queueSize),
	}
}

// Start launches background workers.
func (r *NotificationRelay) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.running = true

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}
}

// Stop cancels workers and waits for them to finish. Queued events are discarded.
func (r *NotificationRelay) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.running = false
	r.mu.Unlock()

	r.wg.Wait()
}

// Enqueue schedules event for publishing and reports whether it was accepted.
func (r *NotificationRelay) Enqueue(event events.Event) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.running {
		r.logger.Warn("notification relay not running, event dropped", slog.String("event_id", event.ID), slog.String("type", string(event.Type)))
		return false
	}

	select {
	case r.jobs <- event:
		return true
	default:
		r.logger.Warn("notification queue full, event dropped", slog.String("event_id", event.ID), slog.String("type", string(event.Type)))
		return false
	}
}

// Handler adapts the relay to a dispatcher subscriber.
func (r *NotificationRelay) Handler() events.Handler {
	return func(_ context.Context, event events.Event) error {
		r.Enqueue(event)
		return nil
	}
}

func (r *NotificationRelay) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-r.jobs:
			r.publish(ctx, event)
		}
	}
}

func (r *NotificationRelay) publish(ctx context.Context, event events.Event) {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := r.publisher.Publish(pubCtx, event); err != nil {
		r.logger.Error("notification publish failed", slog.String("event_id", event.ID), slog.String("error", err.Error()))
	}
}
