package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/domain/repository"
	"github.com/polkiloo/vegdelivery/internal/events"
)

// Notifier is the side channel for user-facing messages. Workflow logic never reads it back.
type Notifier interface {
	Publish(ctx context.Context, event events.Event) error
}

type nopNotifier struct{}

func (nopNotifier) Publish(context.Context, events.Event) error { return nil }

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

// transition moves order id to status to, applying extra inside the same update.
// It returns the updated order and the status it left.
func transition(ctx context.Context, orders repository.OrderRepository, id string, to model.OrderStatus, now time.Time, extra func(*model.Order) error) (*model.Order, model.OrderStatus, error) {
	var from model.OrderStatus
	order, err := orders.Update(ctx, id, func(o *model.Order) error {
		from = o.Status
		if !model.CanTransition(o.Status, to) {
			return fmt.Errorf("order %s: %s -> %s: %w", o.ID, o.Status, to, domainErrors.ErrInvalidTransition)
		}
		if extra != nil {
			if err := extra(o); err != nil {
				return err
			}
		}
		o.Status = to
		o.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, from, err
	}
	return order, from, nil
}

func statusChanged(actor model.Identity, order *model.Order, from model.OrderStatus) events.Event {
	return events.New(events.OrderStatusChanged, order.ID, actor.UserID,
		fmt.Sprintf("Order %s marked as %s", order.ID, order.Status),
		events.StatusChange{From: string(from), To: string(order.Status)})
}
