package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	"github.com/polkiloo/vegdelivery/internal/domain/model"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
	"github.com/polkiloo/vegdelivery/internal/usecase"
)

// AdminHandler manages order triage and user endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.facade.AdminDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.AdminDashboardResponse{
		PlacedOrders: stats.PlacedOrders,
		TotalOrders:  stats.TotalOrders,
		TotalUsers:   stats.TotalUsers,
	})
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

// Order handles GET /api/admin/orders/:orderId.
func (h *AdminHandler) Order(c *gin.Context) {
	order, err := h.facade.AdminOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Triage handles POST /api/admin/orders/:orderId/status.
func (h *AdminHandler) Triage(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	order, err := h.facade.TriageOrder(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"), model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Order: dto.NewOrderResponse(*order)})
}

// UpdateDetails handles PATCH /api/admin/orders/:orderId.
func (h *AdminHandler) UpdateDetails(c *gin.Context) {
	var req dto.OrderDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	patch := usecase.OrderDetailsPatch{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		DeliveryDate: req.DeliveryDate,
	}
	order, err := h.facade.UpdateOrderDetails(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"), patch)
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// UpdateItem handles PATCH /api/admin/orders/:orderId/items/:itemId.
func (h *AdminHandler) UpdateItem(c *gin.Context) {
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	patch := usecase.ItemPatch{
		VegetableName: req.VegetableName,
		Quantity:      dto.FloatPtr(req.Quantity),
		Price:         dto.FloatPtr(req.Price),
	}
	order, err := h.facade.UpdateOrderItem(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"), c.Param("itemId"), patch)
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Save handles POST /api/admin/orders/:orderId/save.
func (h *AdminHandler) Save(c *gin.Context) {
	order, err := h.facade.SaveOrder(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"))
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Order: dto.NewOrderResponse(*order), Next: string(access.RouteAdminDashboard)})
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

// ChangeRole handles PUT /api/admin/users/:userId/role.
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	usr, err := h.facade.ChangeUserRole(c.Request.Context(), CurrentIdentity(c), c.Param("userId"), model.Role(req.Role))
	if err != nil {
		respondError(c, err, access.RouteAdminDashboard)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*usr))
}
