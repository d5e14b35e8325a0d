package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/domain/repository"
)

// DeliveryUseCase drives the queue of packed orders.
type DeliveryUseCase struct {
	orders   repository.OrderRepository
	notifier Notifier
	now      func() time.Time
}

// NewDeliveryUseCase constructs DeliveryUseCase.
func NewDeliveryUseCase(orders repository.OrderRepository, notifier Notifier) *DeliveryUseCase {
	return &DeliveryUseCase{orders: orders, notifier: notifierOrNop(notifier), now: time.Now}
}

// Queue returns orders ready for delivery.
func (u *DeliveryUseCase) Queue(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListByStatus(ctx, model.OrderStatusPacked)
}

// Assignments returns assigned orders of the acting delivery employee.
func (u *DeliveryUseCase) Assignments(ctx context.Context, actor model.Identity) ([]model.Order, error) {
	assigned, err := u.orders.ListByStatus(ctx, model.OrderStatusAssigned)
	if err != nil {
		return nil, err
	}
	var mine []model.Order
	for _, o := range assigned {
		if o.AssignedDeliveryEmployee == actor.UserID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

// Order returns single order.
func (u *DeliveryUseCase) Order(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// MarkDelivered completes a packed or assigned order.
func (u *DeliveryUseCase) MarkDelivered(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return u.finish(ctx, actor, id, model.OrderStatusDelivered)
}

// Cancel cancels a packed or assigned order.
func (u *DeliveryUseCase) Cancel(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return u.finish(ctx, actor, id, model.OrderStatusCancelled)
}

func (u *DeliveryUseCase) finish(ctx context.Context, actor model.Identity, id string, to model.OrderStatus) (*model.Order, error) {
	order, from, err := transition(ctx, u.orders, id, to, u.now(), requireDelivery)
	if err != nil {
		return nil, err
	}
	_ = u.notifier.Publish(ctx, statusChanged(actor, order, from))
	return order, nil
}

func requireDelivery(o *model.Order) error {
	if o.Status != model.OrderStatusPacked && o.Status != model.OrderStatusAssigned {
		return fmt.Errorf("order %s is %s, not out for delivery: %w", o.ID, o.Status, domainErrors.ErrInvalidTransition)
	}
	return nil
}
