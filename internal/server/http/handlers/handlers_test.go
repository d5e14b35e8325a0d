package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/vegdelivery/internal/domain/errors"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
	"github.com/polkiloo/vegdelivery/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/vegdelivery/internal/test"
	"github.com/polkiloo/vegdelivery/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func as(userID string, role model.Role) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, &model.Identity{SessionID: "s-" + userID, UserID: userID, Name: "Staff " + userID, Role: role})
	}
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", resp.Body.String(), err)
	}
	return out
}

func TestCurrentIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentIdentity(c); got.UserID != "" {
		t.Fatalf("expected empty identity when not set, got %+v", got)
	}

	as("3", model.RolePackaging)(c)
	if got := CurrentIdentity(c); got.UserID != "3" || got.Role != model.RolePackaging {
		t.Fatalf("unexpected identity %+v", got)
	}
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		back   string
	}{
		{"not found", fmt.Errorf("order X: %w", domainErrors.ErrNotFound), http.StatusNotFound, "/packorders"},
		{"credentials", domainErrors.ErrInvalidCredentials, http.StatusUnauthorized, ""},
		{"session", domainErrors.ErrSessionNotFound, http.StatusUnauthorized, ""},
		{"transition", domainErrors.ErrInvalidTransition, http.StatusConflict, ""},
		{"role change", domainErrors.ErrRoleChangeForbidden, http.StatusConflict, ""},
		{"input", domainErrors.ErrInvalidInput, http.StatusUnprocessableEntity, ""},
		{"assignee", domainErrors.ErrInvalidAssignee, http.StatusUnprocessableEntity, ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) {
				respondError(c, tt.err, "/packorders")
			}, nil, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
			if body := decode[dto.ErrorResponse](t, resp); body.Back != tt.back {
				t.Fatalf("expected back %q, got %q", tt.back, body.Back)
			}
		})
	}
}

func TestSessionHandlerLogin(t *testing.T) {
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(8, 16)
	handler := NewSessionHandler(facadeStub{LoginFn: func(_ context.Context, gotEmail, gotPassword string) (*usecase.LoginResult, error) {
		if gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotEmail, gotPassword)
		}
		identity := model.Identity{SessionID: "s1", UserID: "6", Name: "Manager User", Email: email, Role: model.RoleManager}
		return &usecase.LoginResult{Token: "session-token", Identity: identity}, nil
	}})

	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	resp := performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	if !strings.Contains(resp.Header().Get("Set-Cookie"), "session-token") {
		t.Fatalf("expected auth cookie, got %q", resp.Header().Get("Set-Cookie"))
	}
	session := decode[dto.SessionResponse](t, resp)
	if session.Token != "session-token" || session.DefaultRoute != "/manager" || session.User.Role != "manager" {
		t.Fatalf("unexpected session %+v", session)
	}
	if len(session.Navigation) == 0 {
		t.Fatal("expected navigation entries")
	}
}

func TestSessionHandlerLoginErrors(t *testing.T) {
	handler := NewSessionHandler(facadeStub{})

	resp := performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.Code)
	}

	body, _ := json.Marshal(dto.LoginRequest{Email: "john@example.com", Password: "password123"})
	resp = performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if got := decode[dto.ErrorResponse](t, resp).Error; got != "Invalid email or password" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestSessionHandlerLogout(t *testing.T) {
	var gotToken string
	handler := NewSessionHandler(facadeStub{LogoutFn: func(_ context.Context, token string) error {
		gotToken = token
		return nil
	}})

	resp := performRequest(t, http.MethodPost, "/logout", "/logout", handler.Logout, nil, nil, map[string]string{"Authorization": "Bearer abc"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotToken != "abc" {
		t.Fatalf("expected token abc, got %q", gotToken)
	}
	if !strings.Contains(resp.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Fatalf("expected cookie to be cleared, got %q", resp.Header().Get("Set-Cookie"))
	}
	if got := decode[map[string]string](t, resp)["redirect"]; got != "/login" {
		t.Fatalf("expected redirect /login, got %q", got)
	}
}

func TestSessionHandlerCurrent(t *testing.T) {
	handler := NewSessionHandler(facadeStub{})
	resp := performRequest(t, http.MethodGet, "/session", "/session", handler.Current, as("5", model.RoleDelivery), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	session := decode[dto.SessionResponse](t, resp)
	if session.Token != "" || session.User.ID != "5" || session.DefaultRoute != "/deliveryorders" {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestSessionHandlerNavigate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*gin.Context)
		target   string
		allowed  bool
		notFound bool
		redirect string
	}{
		{"anonymous to login", nil, "/navigate?path=/packorders", false, false, "/login"},
		{"login is public", nil, "/navigate?path=/login", true, false, ""},
		{"packer on admin view", as("3", model.RolePackaging), "/navigate", false, false, "/packorders"},
		{"packer on own order", as("3", model.RolePackaging), "/navigate?path=/packorder/ORD-002", true, false, ""},
		{"unknown path", as("1", model.RoleAdmin), "/navigate?path=/nowhere", false, true, ""},
	}

	handler := NewSessionHandler(facadeStub{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/navigate", tt.target, handler.Navigate, tt.setup, nil, nil)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			got := decode[dto.NavigateResponse](t, resp)
			if got.Allowed != tt.allowed || got.NotFound != tt.notFound || got.Redirect != tt.redirect {
				t.Fatalf("unexpected decision %+v", got)
			}
		})
	}
}

func TestAdminHandlerDashboardAndLists(t *testing.T) {
	handler := NewAdminHandler(facadeStub{})

	resp := performRequest(t, http.MethodGet, "/dashboard", "/dashboard", handler.Dashboard, nil, nil, nil)
	if got := decode[dto.AdminDashboardResponse](t, resp); got != (dto.AdminDashboardResponse{PlacedOrders: 1, TotalOrders: 3, TotalUsers: 7}) {
		t.Fatalf("unexpected dashboard %+v", got)
	}

	resp = performRequest(t, http.MethodGet, "/orders", "/orders", handler.Orders, nil, nil, nil)
	orders := decode[[]dto.OrderResponse](t, resp)
	if len(orders) != 1 || orders[0].ID != "ORD-001" || orders[0].Items[0].Subtotal != 80 {
		t.Fatalf("unexpected orders %+v", orders)
	}

	resp = performRequest(t, http.MethodGet, "/users", "/users", handler.Users, nil, nil, nil)
	if users := decode[[]dto.UserResponse](t, resp); len(users) != 1 || users[0].Role != "admin" {
		t.Fatalf("unexpected users %+v", users)
	}

	failing := NewAdminHandler(facadeStub{ListErr: errors.New("storage down")})
	resp = performRequest(t, http.MethodGet, "/orders", "/orders", failing.Orders, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestAdminHandlerOrderNotFound(t *testing.T) {
	handler := NewAdminHandler(facadeStub{OrderFn: func(_ context.Context, id string) (*model.Order, error) {
		return nil, fmt.Errorf("order %s: %w", id, domainErrors.ErrNotFound)
	}})
	resp := performRequest(t, http.MethodGet, "/orders/:orderId", "/orders/ORD-404", handler.Order, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if got := decode[dto.ErrorResponse](t, resp).Back; got != "/" {
		t.Fatalf("expected back to admin dashboard, got %q", got)
	}
}

func TestAdminHandlerTriage(t *testing.T) {
	var gotActor model.Identity
	var gotDecision model.OrderStatus
	handler := NewAdminHandler(facadeStub{TriageFn: func(_ context.Context, actor model.Identity, id string, decision model.OrderStatus) (*model.Order, error) {
		gotActor, gotDecision = actor, decision
		if decision == "packed" {
			return nil, domainErrors.ErrInvalidInput
		}
		return sampleOrder(id, decision), nil
	}})

	body, _ := json.Marshal(dto.StatusRequest{Status: "accepted"})
	resp := performRequest(t, http.MethodPost, "/orders/:orderId/status", "/orders/ORD-001/status", handler.Triage, as("1", model.RoleAdmin), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotActor.UserID != "1" || gotDecision != model.OrderStatusAccepted {
		t.Fatalf("unexpected call actor=%+v decision=%s", gotActor, gotDecision)
	}
	if got := decode[dto.ActionResponse](t, resp); got.Order.Status != "accepted" {
		t.Fatalf("unexpected response %+v", got)
	}

	body, _ = json.Marshal(dto.StatusRequest{Status: "packed"})
	resp = performRequest(t, http.MethodPost, "/orders/:orderId/status", "/orders/ORD-001/status", handler.Triage, as("1", model.RoleAdmin), body, jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/orders/:orderId/status", "/orders/ORD-001/status", handler.Triage, as("1", model.RoleAdmin), []byte(`{}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing status, got %d", resp.Code)
	}
}

func TestAdminHandlerUpdateDetailsAndItem(t *testing.T) {
	var details usecase.OrderDetailsPatch
	var item usecase.ItemPatch
	var itemID string
	handler := NewAdminHandler(facadeStub{
		DetailsFn: func(_ context.Context, _ model.Identity, id string, patch usecase.OrderDetailsPatch) (*model.Order, error) {
			details = patch
			return sampleOrder(id, model.OrderStatusPlaced), nil
		},
		ItemFn: func(_ context.Context, _ model.Identity, orderID, gotItem string, patch usecase.ItemPatch) (*model.Order, error) {
			itemID, item = gotItem, patch
			return sampleOrder(orderID, model.OrderStatusPlaced), nil
		},
	})

	resp := performRequest(t, http.MethodPatch, "/orders/:orderId", "/orders/ORD-001", handler.UpdateDetails, as("1", model.RoleAdmin),
		[]byte(`{"phone":"555"}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if details.Phone == nil || *details.Phone != "555" || details.Address != nil || details.CustomerName != nil {
		t.Fatalf("unexpected details patch %+v", details)
	}

	resp = performRequest(t, http.MethodPatch, "/orders/:orderId/items/:itemId", "/orders/ORD-001/items/it-1", handler.UpdateItem, as("1", model.RoleAdmin),
		[]byte(`{"quantity":"3","price":45.5}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if itemID != "it-1" || item.Quantity == nil || *item.Quantity != 3 || item.Price == nil || *item.Price != 45.5 || item.VegetableName != nil {
		t.Fatalf("unexpected item patch %s %+v", itemID, item)
	}

	resp = performRequest(t, http.MethodPatch, "/orders/:orderId/items/:itemId", "/orders/ORD-001/items/it-1", handler.UpdateItem, as("1", model.RoleAdmin),
		[]byte(`{"quantity":"lots"}`), jsonHeaders)
	if resp.Code != http.StatusOK || item.Quantity == nil || *item.Quantity != 0 {
		t.Fatalf("expected non-numeric quantity to read as 0, got %d %+v", resp.Code, item)
	}
}

func TestAdminHandlerSave(t *testing.T) {
	handler := NewAdminHandler(facadeStub{})
	resp := performRequest(t, http.MethodPost, "/orders/:orderId/save", "/orders/ORD-001/save", handler.Save, as("1", model.RoleAdmin), nil, nil)
	if got := decode[dto.ActionResponse](t, resp); got.Next != "/" || got.Order.ID != "ORD-001" {
		t.Fatalf("unexpected save response %+v", got)
	}
}

func TestAdminHandlerChangeRole(t *testing.T) {
	handler := NewAdminHandler(facadeStub{ChangeRoleFn: func(_ context.Context, _ model.Identity, userID string, role model.Role) (*model.User, error) {
		if role == model.RoleManager {
			return nil, domainErrors.ErrRoleChangeForbidden
		}
		return &model.User{ID: userID, Role: role}, nil
	}})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"promote", `{"role":"packaging"}`, http.StatusOK},
		{"forbidden", `{"role":"manager"}`, http.StatusConflict},
		{"missing role", `{}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPut, "/users/:userId/role", "/users/4/role", handler.ChangeRole, as("1", model.RoleAdmin), []byte(tt.body), jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestPackagingHandlerAvailability(t *testing.T) {
	var got *bool
	handler := NewPackagingHandler(facadeStub{AvailabilityFn: func(_ context.Context, _ model.Identity, orderID, _ string, available bool) (*model.Order, error) {
		got = &available
		return sampleOrder(orderID, model.OrderStatusAccepted), nil
	}})

	resp := performRequest(t, http.MethodPut, "/orders/:orderId/items/:itemId/availability", "/orders/ORD-002/items/it-1/availability",
		handler.SetAvailability, as("3", model.RolePackaging), []byte(`{"available":false}`), jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got == nil || *got {
		t.Fatalf("expected availability false to reach facade, got %v", got)
	}

	resp = performRequest(t, http.MethodPut, "/orders/:orderId/items/:itemId/availability", "/orders/ORD-002/items/it-1/availability",
		handler.SetAvailability, as("3", model.RolePackaging), []byte(`{}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without availability flag, got %d", resp.Code)
	}
}

func TestPackagingHandlerActions(t *testing.T) {
	handler := NewPackagingHandler(facadeStub{})
	for name, action := range map[string]gin.HandlerFunc{"packed": handler.MarkPacked, "cancel": handler.Cancel} {
		t.Run(name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders/:orderId/"+name, "/orders/ORD-002/"+name, action, as("3", model.RolePackaging), nil, nil)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			if got := decode[dto.ActionResponse](t, resp); got.Next != "/packorders" || got.Order.ID != "ORD-002" {
				t.Fatalf("unexpected response %+v", got)
			}
		})
	}

	resp := performRequest(t, http.MethodDelete, "/orders/:orderId/items/:itemId", "/orders/ORD-002/items/it-1", handler.RemoveItem, as("3", model.RolePackaging), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for remove, got %d", resp.Code)
	}
}

func TestPackagingHandlerNotFound(t *testing.T) {
	handler := NewPackagingHandler(facadeStub{OrderFn: func(context.Context, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodGet, "/orders/:orderId", "/orders/ORD-404", handler.Order, nil, nil, nil)
	if resp.Code != http.StatusNotFound || decode[dto.ErrorResponse](t, resp).Back != "/packorders" {
		t.Fatalf("expected 404 with back /packorders, got %d %s", resp.Code, resp.Body.String())
	}
}

func TestDeliveryHandler(t *testing.T) {
	var assignee string
	handler := NewDeliveryHandler(facadeStub{
		AssignmentsFn: func(_ context.Context, actor model.Identity) ([]model.Order, error) {
			assignee = actor.UserID
			return nil, nil
		},
		ActionFn: func(_ context.Context, _ model.Identity, id string) (*model.Order, error) {
			if id == "ORD-002" {
				return nil, domainErrors.ErrInvalidTransition
			}
			return sampleOrder(id, model.OrderStatusDelivered), nil
		},
	})

	resp := performRequest(t, http.MethodGet, "/assignments", "/assignments", handler.Assignments, as("5", model.RoleDelivery), nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", resp.Code, resp.Body.String())
	}
	if assignee != "5" {
		t.Fatalf("expected assignments for 5, got %q", assignee)
	}

	resp = performRequest(t, http.MethodPost, "/orders/:orderId/delivered", "/orders/ORD-003/delivered", handler.MarkDelivered, as("5", model.RoleDelivery), nil, nil)
	if got := decode[dto.ActionResponse](t, resp); got.Next != "/deliveryorders" || got.Order.Status != "delivered" {
		t.Fatalf("unexpected response %+v", got)
	}

	resp = performRequest(t, http.MethodPost, "/orders/:orderId/cancel", "/orders/ORD-002/cancel", handler.Cancel, as("5", model.RoleDelivery), nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/orders", "/orders", handler.Queue, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for queue, got %d", resp.Code)
	}
}

func TestManagerHandlerDashboard(t *testing.T) {
	handler := NewManagerHandler(facadeStub{})
	resp := performRequest(t, http.MethodGet, "/dashboard", "/dashboard", handler.Dashboard, nil, nil, nil)
	want := dto.ManagerDashboardResponse{ReferenceDate: "2024-08-21", PackedOrders: 1, TotalOrderValue: 345, TotalVegRequired: 5}
	if got := decode[dto.ManagerDashboardResponse](t, resp); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestManagerHandlerAssign(t *testing.T) {
	handler := NewManagerHandler(facadeStub{AssignFn: func(_ context.Context, _ model.Identity, orderID, employeeID string) (*model.Order, error) {
		if employeeID != "5" {
			return nil, domainErrors.ErrInvalidAssignee
		}
		order := sampleOrder(orderID, model.OrderStatusAssigned)
		order.AssignedDeliveryEmployee = employeeID
		return order, nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders/:orderId/assign", "/orders/ORD-003/assign", handler.Assign, as("6", model.RoleManager), []byte(`{"employeeId":"5"}`), jsonHeaders)
	if got := decode[dto.ActionResponse](t, resp); got.Order.AssignedDeliveryEmployee != "5" || got.Order.Status != "assigned" {
		t.Fatalf("unexpected response %+v", got)
	}

	resp = performRequest(t, http.MethodPost, "/orders/:orderId/assign", "/orders/ORD-003/assign", handler.Assign, as("6", model.RoleManager), []byte(`{"employeeId":"3"}`), jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestManagerHandlerRequirements(t *testing.T) {
	var gotDate string
	handler := NewManagerHandler(facadeStub{RequirementsFn: func(_ context.Context, date string) ([]model.Requirement, error) {
		gotDate = date
		if date == "21-08-2024" {
			return nil, domainErrors.ErrInvalidInput
		}
		return []model.Requirement{{VegetableID: "veg-3", Name: "Potato", Unit: "kg", Quantity: 1.5}}, nil
	}})

	tests := []struct {
		name     string
		target   string
		status   int
		wantDate string
	}{
		{"reference date", "/requirements", http.StatusOK, "2024-08-21"},
		{"explicit date", "/requirements?date=2024-08-22", http.StatusOK, "2024-08-22"},
		{"bad date", "/requirements?date=21-08-2024", http.StatusUnprocessableEntity, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/requirements", tt.target, handler.Requirements, nil, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
			if tt.status != http.StatusOK {
				return
			}
			got := decode[dto.RequirementsResponse](t, resp)
			if got.Date != tt.wantDate || len(got.Items) != 1 || got.Items[0].Quantity != 1.5 {
				t.Fatalf("unexpected requirements %+v", got)
			}
		})
	}
	if gotDate != "21-08-2024" {
		t.Fatalf("expected last date passed through, got %q", gotDate)
	}
}

func TestManagerHandlerPricing(t *testing.T) {
	var bought bool
	var buyPrice, price float64
	var staged model.PriceBandDraft
	handler := NewManagerHandler(facadeStub{
		ProcurementFn: func(_ context.Context, _ model.Identity, vegID string, isBought bool, p float64) (*model.Vegetable, error) {
			bought, buyPrice = isBought, p
			return &model.Vegetable{ID: vegID, IsBought: isBought, BuyPrice: &p}, nil
		},
		PriceFn: func(_ context.Context, _ model.Identity, vegID string, p float64) (*model.Vegetable, error) {
			price = p
			return &model.Vegetable{ID: vegID, CurrentSellingPrice: p}, nil
		},
		StageFn: func(_ context.Context, _ model.Identity, vegID string, minPrice, maxPrice *float64) (model.PriceBandDraft, error) {
			staged = model.PriceBandDraft{VegetableID: vegID, MinPrice: minPrice, MaxPrice: maxPrice}
			return staged, nil
		},
		CommitFn: func(_ context.Context, _ model.Identity, vegID string) (*model.Vegetable, bool, error) {
			return &model.Vegetable{ID: vegID, MinPrice: 45, MaxPrice: 60}, true, nil
		},
	})
	manager := as("6", model.RoleManager)

	resp := performRequest(t, http.MethodPut, "/vegetables/:vegetableId/procurement", "/vegetables/veg-1/procurement", handler.SetProcurement, manager,
		[]byte(`{"isBought":true,"buyPrice":"25.5"}`), jsonHeaders)
	if resp.Code != http.StatusOK || !bought || buyPrice != 25.5 {
		t.Fatalf("unexpected procurement call %d bought=%v price=%v", resp.Code, bought, buyPrice)
	}

	resp = performRequest(t, http.MethodPut, "/vegetables/:vegetableId/price", "/vegetables/veg-1/price", handler.SetPrice, manager,
		[]byte(`{"price":42}`), jsonHeaders)
	if got := decode[dto.VegetableResponse](t, resp); price != 42 || got.CurrentSellingPrice != 42 {
		t.Fatalf("unexpected price update %v %+v", price, got)
	}

	resp = performRequest(t, http.MethodPut, "/vegetables/:vegetableId/price-band", "/vegetables/veg-1/price-band", handler.StagePriceBand, manager,
		[]byte(`{"minPrice":"45"}`), jsonHeaders)
	if resp.Code != http.StatusOK || staged.MinPrice == nil || *staged.MinPrice != 45 || staged.MaxPrice != nil {
		t.Fatalf("unexpected staged draft %d %+v", resp.Code, staged)
	}

	resp = performRequest(t, http.MethodPost, "/vegetables/:vegetableId/price-band/commit", "/vegetables/veg-1/price-band/commit", handler.CommitPriceBand, manager, nil, nil)
	if got := decode[dto.CommitResponse](t, resp); !got.Applied || got.Vegetable.MinPrice != 45 {
		t.Fatalf("unexpected commit %+v", got)
	}

	resp = performRequest(t, http.MethodDelete, "/vegetables/:vegetableId/price-band", "/vegetables/veg-1/price-band", handler.DiscardPriceBand, manager, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/price-bands", "/price-bands", handler.PriceBands, manager, nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("expected empty drafts list, got %d %s", resp.Code, resp.Body.String())
	}
}
