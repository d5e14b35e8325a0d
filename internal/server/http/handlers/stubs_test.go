package handlers

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/usecase"
)

var sampleTime = time.Date(2024, 8, 21, 12, 0, 0, 0, time.UTC)

func sampleOrder(id string, status model.OrderStatus) *model.Order {
	return &model.Order{
		ID:           id,
		Customer:     model.Customer{ID: "4", Name: "John Doe", Phone: "1234567890", Address: "123 Main St"},
		Items:        []model.OrderItem{{ID: "it-1", VegetableID: "veg-1", VegetableName: "Tomato", Quantity: 2, Price: 40, Unit: "kg", Available: true}},
		TotalAmount:  80,
		Status:       status,
		DeliveryDate: "2024-08-21",
		CreatedAt:    sampleTime,
		UpdatedAt:    sampleTime,
	}
}

// facadeStub implements BackofficeFacade. Unset functions return fixed data.
type facadeStub struct {
	LoginFn        func(context.Context, string, string) (*usecase.LoginResult, error)
	LogoutFn       func(context.Context, string) error
	AuthenticateFn func(context.Context, string) (*model.Identity, error)

	OrderFn      func(context.Context, string) (*model.Order, error)
	TriageFn     func(context.Context, model.Identity, string, model.OrderStatus) (*model.Order, error)
	DetailsFn    func(context.Context, model.Identity, string, usecase.OrderDetailsPatch) (*model.Order, error)
	ItemFn       func(context.Context, model.Identity, string, string, usecase.ItemPatch) (*model.Order, error)
	ChangeRoleFn func(context.Context, model.Identity, string, model.Role) (*model.User, error)

	AvailabilityFn func(context.Context, model.Identity, string, string, bool) (*model.Order, error)
	ActionFn       func(context.Context, model.Identity, string) (*model.Order, error)
	AssignmentsFn  func(context.Context, model.Identity) ([]model.Order, error)

	AssignFn       func(context.Context, model.Identity, string, string) (*model.Order, error)
	RequirementsFn func(context.Context, string) ([]model.Requirement, error)
	ProcurementFn  func(context.Context, model.Identity, string, bool, float64) (*model.Vegetable, error)
	PriceFn        func(context.Context, model.Identity, string, float64) (*model.Vegetable, error)
	StageFn        func(context.Context, model.Identity, string, *float64, *float64) (model.PriceBandDraft, error)
	CommitFn       func(context.Context, model.Identity, string) (*model.Vegetable, bool, error)
	ListErr        error
}

func (s facadeStub) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return nil, domainErrors.ErrInvalidCredentials
}

func (s facadeStub) Logout(ctx context.Context, token string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, token)
	}
	return nil
}

func (s facadeStub) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, token)
	}
	return nil, domainErrors.ErrSessionNotFound
}

func (s facadeStub) AdminDashboard(context.Context) (usecase.AdminStats, error) {
	return usecase.AdminStats{PlacedOrders: 1, TotalOrders: 3, TotalUsers: 7}, s.ListErr
}

func (s facadeStub) orders() ([]model.Order, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return []model.Order{*sampleOrder("ORD-001", model.OrderStatusPlaced)}, nil
}

func (s facadeStub) order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return sampleOrder(id, model.OrderStatusPlaced), nil
}

func (s facadeStub) action(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	if s.ActionFn != nil {
		return s.ActionFn(ctx, actor, id)
	}
	return sampleOrder(id, model.OrderStatusPacked), nil
}

func (s facadeStub) AllOrders(context.Context) ([]model.Order, error) { return s.orders() }

func (s facadeStub) AdminOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.order(ctx, id)
}

func (s facadeStub) TriageOrder(ctx context.Context, actor model.Identity, id string, decision model.OrderStatus) (*model.Order, error) {
	if s.TriageFn != nil {
		return s.TriageFn(ctx, actor, id, decision)
	}
	return sampleOrder(id, decision), nil
}

func (s facadeStub) UpdateOrderDetails(ctx context.Context, actor model.Identity, id string, patch usecase.OrderDetailsPatch) (*model.Order, error) {
	if s.DetailsFn != nil {
		return s.DetailsFn(ctx, actor, id, patch)
	}
	return sampleOrder(id, model.OrderStatusPlaced), nil
}

func (s facadeStub) UpdateOrderItem(ctx context.Context, actor model.Identity, orderID, itemID string, patch usecase.ItemPatch) (*model.Order, error) {
	if s.ItemFn != nil {
		return s.ItemFn(ctx, actor, orderID, itemID, patch)
	}
	return sampleOrder(orderID, model.OrderStatusPlaced), nil
}

func (s facadeStub) SaveOrder(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return s.order(ctx, id)
}

func (s facadeStub) Users(context.Context) ([]model.User, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return []model.User{{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: model.RoleAdmin, CreatedAt: sampleTime}}, nil
}

func (s facadeStub) ChangeUserRole(ctx context.Context, actor model.Identity, userID string, role model.Role) (*model.User, error) {
	if s.ChangeRoleFn != nil {
		return s.ChangeRoleFn(ctx, actor, userID, role)
	}
	return &model.User{ID: userID, Role: role, CreatedAt: sampleTime}, nil
}

func (s facadeStub) PackagingQueue(context.Context) ([]model.Order, error) { return s.orders() }

func (s facadeStub) PackagingOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.order(ctx, id)
}

func (s facadeStub) SetItemAvailability(ctx context.Context, actor model.Identity, orderID, itemID string, available bool) (*model.Order, error) {
	if s.AvailabilityFn != nil {
		return s.AvailabilityFn(ctx, actor, orderID, itemID, available)
	}
	return sampleOrder(orderID, model.OrderStatusAccepted), nil
}

func (s facadeStub) RemoveOrderItem(ctx context.Context, actor model.Identity, orderID, itemID string) (*model.Order, error) {
	return s.action(ctx, actor, orderID)
}

func (s facadeStub) MarkPacked(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return s.action(ctx, actor, id)
}

func (s facadeStub) CancelPacking(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return s.action(ctx, actor, id)
}

func (s facadeStub) DeliveryQueue(context.Context) ([]model.Order, error) { return s.orders() }

func (s facadeStub) DeliveryAssignments(ctx context.Context, actor model.Identity) ([]model.Order, error) {
	if s.AssignmentsFn != nil {
		return s.AssignmentsFn(ctx, actor)
	}
	return s.orders()
}

func (s facadeStub) DeliveryOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.order(ctx, id)
}

func (s facadeStub) MarkDelivered(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return s.action(ctx, actor, id)
}

func (s facadeStub) CancelDelivery(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return s.action(ctx, actor, id)
}

func (s facadeStub) ManagerDashboard(context.Context) (usecase.ManagerStats, error) {
	return usecase.ManagerStats{ReferenceDate: "2024-08-21", PackedOrders: 1, TotalOrderValue: 345, TotalVegRequired: 5}, s.ListErr
}

func (s facadeStub) AssignmentCandidates(context.Context) ([]model.Order, error) { return s.orders() }

func (s facadeStub) DeliveryStaff(context.Context) ([]model.User, error) { return s.Users(context.Background()) }

func (s facadeStub) AssignDelivery(ctx context.Context, actor model.Identity, orderID, employeeID string) (*model.Order, error) {
	if s.AssignFn != nil {
		return s.AssignFn(ctx, actor, orderID, employeeID)
	}
	order := sampleOrder(orderID, model.OrderStatusAssigned)
	order.AssignedDeliveryEmployee = employeeID
	return order, nil
}

func (s facadeStub) Requirements(ctx context.Context, date string) ([]model.Requirement, error) {
	if s.RequirementsFn != nil {
		return s.RequirementsFn(ctx, date)
	}
	return []model.Requirement{{VegetableID: "veg-1", Name: "Tomato", Unit: "kg", Quantity: 2}}, nil
}

func (s facadeStub) ReferenceDate() string { return "2024-08-21" }

func (s facadeStub) Vegetables(context.Context) ([]model.Vegetable, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return []model.Vegetable{{ID: "veg-1", Name: "Tomato", Unit: "kg", MinPrice: 30, MaxPrice: 50, CurrentSellingPrice: 40}}, nil
}

func (s facadeStub) SetProcurement(ctx context.Context, actor model.Identity, vegID string, bought bool, buyPrice float64) (*model.Vegetable, error) {
	if s.ProcurementFn != nil {
		return s.ProcurementFn(ctx, actor, vegID, bought, buyPrice)
	}
	return &model.Vegetable{ID: vegID, IsBought: bought}, nil
}

func (s facadeStub) UpdateSellingPrice(ctx context.Context, actor model.Identity, vegID string, price float64) (*model.Vegetable, error) {
	if s.PriceFn != nil {
		return s.PriceFn(ctx, actor, vegID, price)
	}
	return &model.Vegetable{ID: vegID, CurrentSellingPrice: price}, nil
}

func (s facadeStub) StagePriceBand(ctx context.Context, actor model.Identity, vegID string, minPrice, maxPrice *float64) (model.PriceBandDraft, error) {
	if s.StageFn != nil {
		return s.StageFn(ctx, actor, vegID, minPrice, maxPrice)
	}
	return model.PriceBandDraft{VegetableID: vegID, MinPrice: minPrice, MaxPrice: maxPrice}, nil
}

func (s facadeStub) DiscardPriceBand(context.Context, model.Identity, string) error { return s.ListErr }

func (s facadeStub) CommitPriceBand(ctx context.Context, actor model.Identity, vegID string) (*model.Vegetable, bool, error) {
	if s.CommitFn != nil {
		return s.CommitFn(ctx, actor, vegID)
	}
	return &model.Vegetable{ID: vegID}, false, nil
}

func (s facadeStub) PriceBandDrafts(context.Context, model.Identity) ([]model.PriceBandDraft, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return nil, nil
}

var _ BackofficeFacade = facadeStub{}
