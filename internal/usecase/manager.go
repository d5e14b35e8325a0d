package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/domain/repository"
	"github.com/polkiloo/vegdelivery/internal/events"
)

// ReferenceDate is the delivery date the manager plans and buys for.
type ReferenceDate string

// ManagerUseCase covers delivery assignment, requirements and vegetable pricing.
type ManagerUseCase struct {
	orders     repository.OrderRepository
	users      repository.UserRepository
	vegetables repository.VegetableRepository
	drafts     repository.PriceDraftRepository
	notifier   Notifier
	date       string
	now        func() time.Time
}

// ManagerStats summarizes the manager dashboard.
type ManagerStats struct {
	ReferenceDate    string
	PackedOrders     int
	TotalOrderValue  float64
	TotalVegRequired float64
}

// NewManagerUseCase constructs ManagerUseCase.
func NewManagerUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	vegetables repository.VegetableRepository,
	drafts repository.PriceDraftRepository,
	notifier Notifier,
	date ReferenceDate,
) *ManagerUseCase {
	return &ManagerUseCase{
		orders:     orders,
		users:      users,
		vegetables: vegetables,
		drafts:     drafts,
		notifier:   notifierOrNop(notifier),
		date:       string(date),
		now:        time.Now,
	}
}

// ReferenceDate returns the configured planning date.
func (u *ManagerUseCase) ReferenceDate() string {
	return u.date
}

// Candidates returns packed orders awaiting a delivery assignment.
func (u *ManagerUseCase) Candidates(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListByStatus(ctx, model.OrderStatusPacked)
}

// DeliveryStaff returns users who may be assigned deliveries.
func (u *ManagerUseCase) DeliveryStaff(ctx context.Context) ([]model.User, error) {
	return u.users.ListByRole(ctx, model.RoleDelivery)
}

// Assign hands a packed order to a delivery employee.
func (u *ManagerUseCase) Assign(ctx context.Context, actor model.Identity, orderID, employeeID string) (*model.Order, error) {
	employee, err := u.users.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("employee %s: %w", employeeID, domainErrors.ErrInvalidAssignee)
		}
		return nil, err
	}
	if employee.Role != model.RoleDelivery {
		return nil, fmt.Errorf("employee %s has role %s: %w", employeeID, employee.Role, domainErrors.ErrInvalidAssignee)
	}

	order, _, err := transition(ctx, u.orders, orderID, model.OrderStatusAssigned, u.now(), func(o *model.Order) error {
		o.AssignedDeliveryEmployee = employee.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = u.notifier.Publish(ctx, events.New(events.OrderAssigned, order.ID, actor.UserID,
		fmt.Sprintf("Order %s assigned to %s", order.ID, employee.Name),
		events.Assignment{EmployeeID: employee.ID, EmployeeName: employee.Name}))
	return order, nil
}

// Requirements aggregates vegetable quantities needed on date, in catalogue order.
// Empty date selects the reference date.
func (u *ManagerUseCase) Requirements(ctx context.Context, date string) ([]model.Requirement, error) {
	if date == "" {
		date = u.date
	}
	if !ValidDate(date) {
		return nil, fmt.Errorf("requirements date %q: %w", date, domainErrors.ErrInvalidInput)
	}

	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	vegetables, err := u.vegetables.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := model.CalculateRequirements(orders, date)
	result := make([]model.Requirement, 0, len(totals))
	for _, veg := range vegetables {
		qty, ok := totals[veg.ID]
		if !ok {
			continue
		}
		result = append(result, model.Requirement{VegetableID: veg.ID, Name: veg.Name, Unit: veg.Unit, Quantity: qty})
		delete(totals, veg.ID)
	}

	orphans := make([]string, 0, len(totals))
	for id := range totals {
		orphans = append(orphans, id)
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		result = append(result, model.Requirement{VegetableID: id, Quantity: totals[id]})
	}
	return result, nil
}

// Vegetables returns the catalogue.
func (u *ManagerUseCase) Vegetables(ctx context.Context) ([]model.Vegetable, error) {
	return u.vegetables.List(ctx)
}

// SetProcurement records whether a vegetable was bought. Buying stores price and the
// reference date; un-buying clears both.
func (u *ManagerUseCase) SetProcurement(ctx context.Context, actor model.Identity, vegID string, bought bool, buyPrice float64) (*model.Vegetable, error) {
	veg, err := u.vegetables.Update(ctx, vegID, func(v *model.Vegetable) error {
		v.IsBought = bought
		if bought {
			price, date := buyPrice, u.date
			v.BuyPrice = &price
			v.BuyDate = &date
			return nil
		}
		v.BuyPrice = nil
		v.BuyDate = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	state := "marked as bought"
	if !bought {
		state = "marked as not bought"
	}
	_ = u.notifier.Publish(ctx, events.New(events.VegetableUpdated, veg.ID, actor.UserID,
		fmt.Sprintf("Vegetable %s %s", veg.Name, state), nil))
	return veg, nil
}

// UpdateSellingPrice sets the current selling price immediately.
func (u *ManagerUseCase) UpdateSellingPrice(ctx context.Context, actor model.Identity, vegID string, price float64) (*model.Vegetable, error) {
	veg, err := u.vegetables.Update(ctx, vegID, func(v *model.Vegetable) error {
		v.CurrentSellingPrice = price
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = u.notifier.Publish(ctx, events.New(events.VegetableUpdated, veg.ID, actor.UserID,
		fmt.Sprintf("Vegetable %s price updated", veg.Name), nil))
	return veg, nil
}

// StagePriceBand records a pending min/max edit for the acting manager.
func (u *ManagerUseCase) StagePriceBand(ctx context.Context, actor model.Identity, vegID string, minPrice, maxPrice *float64) (model.PriceBandDraft, error) {
	if _, err := u.vegetables.GetByID(ctx, vegID); err != nil {
		return model.PriceBandDraft{}, err
	}
	return u.drafts.Stage(ctx, actor.UserID, model.PriceBandDraft{VegetableID: vegID, MinPrice: minPrice, MaxPrice: maxPrice})
}

// Drafts lists pending min/max edits of the acting manager.
func (u *ManagerUseCase) Drafts(ctx context.Context, actor model.Identity) ([]model.PriceBandDraft, error) {
	return u.drafts.List(ctx, actor.UserID)
}

// DiscardPriceBand drops a pending edit.
func (u *ManagerUseCase) DiscardPriceBand(ctx context.Context, actor model.Identity, vegID string) error {
	return u.drafts.Discard(ctx, actor.UserID, vegID)
}

// CommitPriceBand applies the pending edit for vegID and clears it.
// Without a pending edit the vegetable is returned unchanged and applied is false.
func (u *ManagerUseCase) CommitPriceBand(ctx context.Context, actor model.Identity, vegID string) (veg *model.Vegetable, applied bool, err error) {
	draft, err := u.drafts.Get(ctx, actor.UserID, vegID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, false, err
		}
		veg, err = u.vegetables.GetByID(ctx, vegID)
		return veg, false, err
	}

	veg, err = u.vegetables.Update(ctx, vegID, func(v *model.Vegetable) error {
		draft.Apply(v)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if err := u.drafts.Discard(ctx, actor.UserID, vegID); err != nil {
		return nil, false, err
	}

	_ = u.notifier.Publish(ctx, events.New(events.VegetableUpdated, veg.ID, actor.UserID,
		"Min and max prices updated successfully", nil))
	return veg, true, nil
}

// Dashboard computes manager dashboard counters for the reference date.
func (u *ManagerUseCase) Dashboard(ctx context.Context) (ManagerStats, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return ManagerStats{}, err
	}

	stats := ManagerStats{ReferenceDate: u.date}
	for _, o := range orders {
		stats.TotalOrderValue += o.TotalAmount
		if o.Status == model.OrderStatusPacked {
			stats.PackedOrders++
		}
	}
	for _, qty := range model.CalculateRequirements(orders, u.date) {
		stats.TotalVegRequired += qty
	}
	return stats, nil
}
