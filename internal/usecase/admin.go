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

// AdminUseCase covers order triage, order editing and user role management.
type AdminUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	notifier Notifier
	now      func() time.Time
}

// OrderDetailsPatch lists editable order fields; nil fields are left as is.
type OrderDetailsPatch struct {
	CustomerName *string
	Phone        *string
	Address      *string
	DeliveryDate *string
}

// ItemPatch lists editable item fields; nil fields are left as is.
type ItemPatch struct {
	VegetableName *string
	Quantity      *float64
	Price         *float64
}

// AdminStats summarizes the admin dashboard.
type AdminStats struct {
	PlacedOrders int
	TotalOrders  int
	TotalUsers   int
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(orders repository.OrderRepository, users repository.UserRepository, notifier Notifier) *AdminUseCase {
	return &AdminUseCase{orders: orders, users: users, notifier: notifierOrNop(notifier), now: time.Now}
}

// Orders returns every order in store order.
func (u *AdminUseCase) Orders(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Order returns single order.
func (u *AdminUseCase) Order(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// Triage accepts or rejects a placed order.
func (u *AdminUseCase) Triage(ctx context.Context, actor model.Identity, id string, decision model.OrderStatus) (*model.Order, error) {
	if decision != model.OrderStatusAccepted && decision != model.OrderStatusRejected {
		return nil, fmt.Errorf("triage decision %q: %w", decision, domainErrors.ErrInvalidInput)
	}

	order, from, err := transition(ctx, u.orders, id, decision, u.now(), nil)
	if err != nil {
		return nil, err
	}

	_ = u.notifier.Publish(ctx, statusChanged(actor, order, from))
	return order, nil
}

// UpdateDetails edits customer contact and delivery date of an order.
func (u *AdminUseCase) UpdateDetails(ctx context.Context, actor model.Identity, id string, patch OrderDetailsPatch) (*model.Order, error) {
	if patch.DeliveryDate != nil && !ValidDate(*patch.DeliveryDate) {
		return nil, fmt.Errorf("delivery date %q: %w", *patch.DeliveryDate, domainErrors.ErrInvalidInput)
	}

	order, err := u.orders.Update(ctx, id, func(o *model.Order) error {
		if patch.CustomerName != nil {
			o.Customer.Name = *patch.CustomerName
		}
		if patch.Phone != nil {
			o.Customer.Phone = *patch.Phone
		}
		if patch.Address != nil {
			o.Customer.Address = *patch.Address
		}
		if patch.DeliveryDate != nil {
			o.DeliveryDate = *patch.DeliveryDate
		}
		o.UpdatedAt = u.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = u.notifier.Publish(ctx, events.New(events.OrderUpdated, order.ID, actor.UserID,
		fmt.Sprintf("Order %s details updated", order.ID), nil))
	return order, nil
}

// UpdateItem edits one item and recomputes the order total over all items.
func (u *AdminUseCase) UpdateItem(ctx context.Context, actor model.Identity, orderID, itemID string, patch ItemPatch) (*model.Order, error) {
	order, err := u.orders.Update(ctx, orderID, func(o *model.Order) error {
		item, ok := o.Item(itemID)
		if !ok {
			return fmt.Errorf("item %s of order %s: %w", itemID, o.ID, domainErrors.ErrNotFound)
		}
		if patch.VegetableName != nil {
			item.VegetableName = *patch.VegetableName
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		o.Recalculate()
		o.UpdatedAt = u.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = u.notifier.Publish(ctx, events.New(events.OrderUpdated, order.ID, actor.UserID,
		fmt.Sprintf("Order %s item %s updated", order.ID, itemID), nil))
	return order, nil
}

// Save acknowledges the edited order. Edits are already applied, so this only notifies.
func (u *AdminUseCase) Save(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = u.notifier.Publish(ctx, events.New(events.OrderSaved, order.ID, actor.UserID,
		fmt.Sprintf("Order %s has been updated successfully", order.ID), nil))
	return order, nil
}

// Users returns every known user.
func (u *AdminUseCase) Users(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// ChangeRole promotes a customer to packaging or delivery, or demotes staff back to customer.
func (u *AdminUseCase) ChangeRole(ctx context.Context, actor model.Identity, userID string, role model.Role) (*model.User, error) {
	if _, err := model.ParseRole(string(role)); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domainErrors.ErrInvalidRole)
	}

	var from model.Role
	usr, err := u.users.Update(ctx, userID, func(usr *model.User) error {
		from = usr.Role
		if !roleChangeAllowed(usr.Role, role) {
			return fmt.Errorf("user %s: %s -> %s: %w", usr.ID, usr.Role, role, domainErrors.ErrRoleChangeForbidden)
		}
		usr.Role = role
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = u.notifier.Publish(ctx, events.New(events.UserRoleChanged, usr.ID, actor.UserID,
		fmt.Sprintf("%s is now %s", usr.Name, usr.Role),
		events.RoleChange{From: string(from), To: string(usr.Role)}))
	return usr, nil
}

func roleChangeAllowed(from, to model.Role) bool {
	switch {
	case from == model.RoleCustomer:
		return to == model.RolePackaging || to == model.RoleDelivery
	case from != model.RoleAdmin:
		return to == model.RoleCustomer
	default:
		return false
	}
}

// Dashboard computes admin dashboard counters.
func (u *AdminUseCase) Dashboard(ctx context.Context) (AdminStats, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return AdminStats{}, err
	}

	stats := AdminStats{TotalOrders: len(orders), TotalUsers: len(users)}
	for _, o := range orders {
		if o.Status == model.OrderStatusPlaced {
			stats.PlacedOrders++
		}
	}
	return stats, nil
}
