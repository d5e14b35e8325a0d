package handlers

import (
	"context"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/usecase"
)

// SessionFacade describes login, logout and session lookup.
type SessionFacade interface {
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*model.Identity, error)
}

// AdminFacade encapsulates order triage and user management.
type AdminFacade interface {
	AdminDashboard(ctx context.Context) (usecase.AdminStats, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	AdminOrder(ctx context.Context, id string) (*model.Order, error)
	TriageOrder(ctx context.Context, actor model.Identity, id string, decision model.OrderStatus) (*model.Order, error)
	UpdateOrderDetails(ctx context.Context, actor model.Identity, id string, patch usecase.OrderDetailsPatch) (*model.Order, error)
	UpdateOrderItem(ctx context.Context, actor model.Identity, orderID, itemID string, patch usecase.ItemPatch) (*model.Order, error)
	SaveOrder(ctx context.Context, actor model.Identity, id string) (*model.Order, error)
	Users(ctx context.Context) ([]model.User, error)
	ChangeUserRole(ctx context.Context, actor model.Identity, userID string, role model.Role) (*model.User, error)
}

// PackagingFacade drives the packaging queue.
type PackagingFacade interface {
	PackagingQueue(ctx context.Context) ([]model.Order, error)
	PackagingOrder(ctx context.Context, id string) (*model.Order, error)
	SetItemAvailability(ctx context.Context, actor model.Identity, orderID, itemID string, available bool) (*model.Order, error)
	RemoveOrderItem(ctx context.Context, actor model.Identity, orderID, itemID string) (*model.Order, error)
	MarkPacked(ctx context.Context, actor model.Identity, id string) (*model.Order, error)
	CancelPacking(ctx context.Context, actor model.Identity, id string) (*model.Order, error)
}

// DeliveryFacade drives the delivery queue.
type DeliveryFacade interface {
	DeliveryQueue(ctx context.Context) ([]model.Order, error)
	DeliveryAssignments(ctx context.Context, actor model.Identity) ([]model.Order, error)
	DeliveryOrder(ctx context.Context, id string) (*model.Order, error)
	MarkDelivered(ctx context.Context, actor model.Identity, id string) (*model.Order, error)
	CancelDelivery(ctx context.Context, actor model.Identity, id string) (*model.Order, error)
}

// ManagerFacade covers assignment, requirements and pricing.
type ManagerFacade interface {
	ManagerDashboard(ctx context.Context) (usecase.ManagerStats, error)
	AssignmentCandidates(ctx context.Context) ([]model.Order, error)
	DeliveryStaff(ctx context.Context) ([]model.User, error)
	AssignDelivery(ctx context.Context, actor model.Identity, orderID, employeeID string) (*model.Order, error)
	Requirements(ctx context.Context, date string) ([]model.Requirement, error)
	ReferenceDate() string
	Vegetables(ctx context.Context) ([]model.Vegetable, error)
	SetProcurement(ctx context.Context, actor model.Identity, vegID string, bought bool, buyPrice float64) (*model.Vegetable, error)
	UpdateSellingPrice(ctx context.Context, actor model.Identity, vegID string, price float64) (*model.Vegetable, error)
	StagePriceBand(ctx context.Context, actor model.Identity, vegID string, minPrice, maxPrice *float64) (model.PriceBandDraft, error)
	DiscardPriceBand(ctx context.Context, actor model.Identity, vegID string) error
	CommitPriceBand(ctx context.Context, actor model.Identity, vegID string) (*model.Vegetable, bool, error)
	PriceBandDrafts(ctx context.Context, actor model.Identity) ([]model.PriceBandDraft, error)
}

// BackofficeFacade aggregates the full set of operations used across handlers.
type BackofficeFacade interface {
	SessionFacade
	AdminFacade
	PackagingFacade
	DeliveryFacade
	ManagerFacade
}
