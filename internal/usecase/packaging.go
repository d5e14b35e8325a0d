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

// PackagingUseCase drives the queue of accepted orders.
type PackagingUseCase struct {
	orders   repository.OrderRepository
	notifier Notifier
	now      func() time.Time
}

// NewPackagingUseCase constructs PackagingUseCase.
func NewPackagingUseCase(orders repository.OrderRepository, notifier Notifier) *PackagingUseCase {
	return &PackagingUseCase{orders: orders, notifier: notifierOrNop(notifier), now: time.Now}
}

// Queue returns orders waiting to be packed.
func (u *PackagingUseCase) Queue(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListByStatus(ctx, model.OrderStatusAccepted)
}

// Order returns single order.
func (u *PackagingUseCase) Order(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// SetItemAvailability flags an item of an accepted order as available or not.
func (u *PackagingUseCase) SetItemAvailability(ctx context.Context, actor model.Identity, orderID, itemID string, available bool) (*model.Order, error) {
	order, err := u.orders.Update(ctx, orderID, func(o *model.Order) error {
		if err := requirePacking(o); err != nil {
			return err
		}
		item, ok := o.Item(itemID)
		if !ok {
			return fmt.Errorf("item %s of order %s: %w", itemID, o.ID, domainErrors.ErrNotFound)
		}
		item.Available = available
		o.UpdatedAt = u.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	state := "available"
	if !available {
		state = "unavailable"
	}
	_ = u.notifier.Publish(ctx, events.New(events.OrderUpdated, order.ID, actor.UserID,
		fmt.Sprintf("Item %s marked as %s", itemID, state), nil))
	return order, nil
}

// RemoveItem drops an item from an accepted order and recomputes the total.
func (u *PackagingUseCase) RemoveItem(ctx context.Context, actor model.Identity, orderID, itemID string) (*model.Order, error) {
	order, err := u.orders.Update(ctx, orderID, func(o *model.Order) error {
		if err := requirePacking(o); err != nil {
			return err
		}
		kept := o.Items[:0]
		found := false
		for _, item := range o.Items {
			if item.ID == itemID {
				found = true
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return fmt.Errorf("item %s of order %s: %w", itemID, o.ID, domainErrors.ErrNotFound)
		}
		o.Items = kept
		o.Recalculate()
		o.UpdatedAt = u.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = u.notifier.Publish(ctx, events.New(events.OrderUpdated, order.ID, actor.UserID,
		fmt.Sprintf("Item %s removed from order %s", itemID, order.ID), nil))
	return order, nil
}

// MarkPacked moves an accepted order to packed, recording the packer if none is assigned.
func (u *PackagingUseCase) MarkPacked(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return u.finish(ctx, actor, id, model.OrderStatusPacked, func(o *model.Order) error {
		if o.AssignedPackagingEmployee == "" {
			o.AssignedPackagingEmployee = actor.UserID
		}
		return nil
	})
}

// Cancel cancels an accepted order.
func (u *PackagingUseCase) Cancel(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return u.finish(ctx, actor, id, model.OrderStatusCancelled, nil)
}

func (u *PackagingUseCase) finish(ctx context.Context, actor model.Identity, id string, to model.OrderStatus, extra func(*model.Order) error) (*model.Order, error) {
	order, from, err := transition(ctx, u.orders, id, to, u.now(), func(o *model.Order) error {
		if err := requirePacking(o); err != nil {
			return err
		}
		if extra != nil {
			return extra(o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	_ = u.notifier.Publish(ctx, statusChanged(actor, order, from))
	return order, nil
}

func requirePacking(o *model.Order) error {
	if o.Status != model.OrderStatusAccepted {
		return fmt.Errorf("order %s is %s, not awaiting packaging: %w", o.ID, o.Status, domainErrors.ErrInvalidTransition)
	}
	return nil
}
