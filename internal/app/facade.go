package app

import (
	"context"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/usecase"
)

// BackofficeFacade is the single entry point the HTTP layer talks to.
type BackofficeFacade struct {
	session   *usecase.SessionUseCase
	admin     *usecase.AdminUseCase
	packaging *usecase.PackagingUseCase
	delivery  *usecase.DeliveryUseCase
	manager   *usecase.ManagerUseCase
}

func NewBackofficeFacade(
	session *usecase.SessionUseCase,
	admin *usecase.AdminUseCase,
	packaging *usecase.PackagingUseCase,
	delivery *usecase.DeliveryUseCase,
	manager *usecase.ManagerUseCase,
) *BackofficeFacade {
	return &BackofficeFacade{session: session, admin: admin, packaging: packaging, delivery: delivery, manager: manager}
}

func (f *BackofficeFacade) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	return f.session.Login(ctx, email, password)
}

func (f *BackofficeFacade) Logout(ctx context.Context, token string) error {
	return f.session.Logout(ctx, token)
}

func (f *BackofficeFacade) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	return f.session.Authenticate(ctx, token)
}

func (f *BackofficeFacade) AdminDashboard(ctx context.Context) (usecase.AdminStats, error) {
	return f.admin.Dashboard(ctx)
}

func (f *BackofficeFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.admin.Orders(ctx)
}

func (f *BackofficeFacade) AdminOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.admin.Order(ctx, id)
}

func (f *BackofficeFacade) TriageOrder(ctx context.Context, actor model.Identity, id string, decision model.OrderStatus) (*model.Order, error) {
	return f.admin.Triage(ctx, actor, id, decision)
}

func (f *BackofficeFacade) UpdateOrderDetails(ctx context.Context, actor model.Identity, id string, patch usecase.OrderDetailsPatch) (*model.Order, error) {
	return f.admin.UpdateDetails(ctx, actor, id, patch)
}

func (f *BackofficeFacade) UpdateOrderItem(ctx context.Context, actor model.Identity, orderID, itemID string, patch usecase.ItemPatch) (*model.Order, error) {
	return f.admin.UpdateItem(ctx, actor, orderID, itemID, patch)
}

func (f *BackofficeFacade) SaveOrder(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return f.admin.Save(ctx, actor, id)
}

func (f *BackofficeFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.admin.Users(ctx)
}

func (f *BackofficeFacade) ChangeUserRole(ctx context.Context, actor model.Identity, userID string, role model.Role) (*model.User, error) {
	return f.admin.ChangeRole(ctx, actor, userID, role)
}

func (f *BackofficeFacade) PackagingQueue(ctx context.Context) ([]model.Order, error) {
	return f.packaging.Queue(ctx)
}

func (f *BackofficeFacade) PackagingOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.packaging.Order(ctx, id)
}

func (f *BackofficeFacade) SetItemAvailability(ctx context.Context, actor model.Identity, orderID, itemID string, available bool) (*model.Order, error) {
	return f.packaging.SetItemAvailability(ctx, actor, orderID, itemID, available)
}

func (f *BackofficeFacade) RemoveOrderItem(ctx context.Context, actor model.Identity, orderID, itemID string) (*model.Order, error) {
	return f.packaging.RemoveItem(ctx, actor, orderID, itemID)
}

func (f *BackofficeFacade) MarkPacked(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return f.packaging.MarkPacked(ctx, actor, id)
}

func (f *BackofficeFacade) CancelPacking(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return f.packaging.Cancel(ctx, actor, id)
}

func (f *BackofficeFacade) DeliveryQueue(ctx context.Context) ([]model.Order, error) {
	return f.delivery.Queue(ctx)
}

func (f *BackofficeFacade) DeliveryAssignments(ctx context.Context, actor model.Identity) ([]model.Order, error) {
	return f.delivery.Assignments(ctx, actor)
}

func (f *BackofficeFacade) DeliveryOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.delivery.Order(ctx, id)
}

func (f *BackofficeFacade) MarkDelivered(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return f.delivery.MarkDelivered(ctx, actor, id)
}

func (f *BackofficeFacade) CancelDelivery(ctx context.Context, actor model.Identity, id string) (*model.Order, error) {
	return f.delivery.Cancel(ctx, actor, id)
}

func (f *BackofficeFacade) ManagerDashboard(ctx context.Context) (usecase.ManagerStats, error) {
	return f.manager.Dashboard(ctx)
}

func (f *BackofficeFacade) AssignmentCandidates(ctx context.Context) ([]model.Order, error) {
	return f.manager.Candidates(ctx)
}

func (f *BackofficeFacade) DeliveryStaff(ctx context.Context) ([]model.User, error) {
	return f.manager.DeliveryStaff(ctx)
}

func (f *BackofficeFacade) AssignDelivery(ctx context.Context, actor model.Identity, orderID, employeeID string) (*model.Order, error) {
	return f.manager.Assign(ctx, actor, orderID, employeeID)
}

func (f *BackofficeFacade) Requirements(ctx context.Context, date string) ([]model.Requirement, error) {
	return f.manager.Requirements(ctx, date)
}

func (f *BackofficeFacade) ReferenceDate() string {
	return f.manager.ReferenceDate()
}

func (f *BackofficeFacade) Vegetables(ctx context.Context) ([]model.Vegetable, error) {
	return f.manager.Vegetables(ctx)
}

func (f *BackofficeFacade) SetProcurement(ctx context.Context, actor model.Identity, vegID string, bought bool, buyPrice float64) (*model.Vegetable, error) {
	return f.manager.SetProcurement(ctx, actor, vegID, bought, buyPrice)
}

func (f *BackofficeFacade) UpdateSellingPrice(ctx context.Context, actor model.Identity, vegID string, price float64) (*model.Vegetable, error) {
	return f.manager.UpdateSellingPrice(ctx, actor, vegID, price)
}

func (f *BackofficeFacade) StagePriceBand(ctx context.Context, actor model.Identity, vegID string, minPrice, maxPrice *float64) (model.PriceBandDraft, error) {
	return f.manager.StagePriceBand(ctx, actor, vegID, minPrice, maxPrice)
}

func (f *BackofficeFacade) DiscardPriceBand(ctx context.Context, actor model.Identity, vegID string) error {
	return f.manager.DiscardPriceBand(ctx, actor, vegID)
}

func (f *BackofficeFacade) CommitPriceBand(ctx context.Context, actor model.Identity, vegID string) (*model.Vegetable, bool, error) {
	return f.manager.CommitPriceBand(ctx, actor, vegID)
}

func (f *BackofficeFacade) PriceBandDrafts(ctx context.Context, actor model.Identity) ([]model.PriceBandDraft, error) {
	return f.manager.Drafts(ctx, actor)
}
