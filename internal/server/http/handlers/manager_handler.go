package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
)

// ManagerHandler serves the manager dashboard endpoints.
type ManagerHandler struct {
	facade ManagerFacade
}

// NewManagerHandler constructs ManagerHandler.
func NewManagerHandler(facade ManagerFacade) *ManagerHandler {
	return &ManagerHandler{facade: facade}
}

// Dashboard handles GET /api/manager/dashboard.
func (h *ManagerHandler) Dashboard(c *gin.Context) {
	stats, err := h.facade.ManagerDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.ManagerDashboardResponse{
		ReferenceDate:    stats.ReferenceDate,
		PackedOrders:     stats.PackedOrders,
		TotalOrderValue:  stats.TotalOrderValue,
		TotalVegRequired: stats.TotalVegRequired,
	})
}

// Candidates handles GET /api/manager/orders.
func (h *ManagerHandler) Candidates(c *gin.Context) {
	orders, err := h.facade.AssignmentCandidates(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

// DeliveryStaff handles GET /api/manager/delivery-staff.
func (h *ManagerHandler) DeliveryStaff(c *gin.Context) {
	users, err := h.facade.DeliveryStaff(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

// Assign handles POST /api/manager/orders/:orderId/assign.
func (h *ManagerHandler) Assign(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	order, err := h.facade.AssignDelivery(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"), req.EmployeeID)
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Order: dto.NewOrderResponse(*order)})
}

// Requirements handles GET /api/manager/requirements?date=.
func (h *ManagerHandler) Requirements(c *gin.Context) {
	date := c.Query("date")
	rows, err := h.facade.Requirements(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	if date == "" {
		date = h.facade.ReferenceDate()
	}
	c.JSON(http.StatusOK, dto.NewRequirementsResponse(date, rows))
}

// Vegetables handles GET /api/manager/vegetables.
func (h *ManagerHandler) Vegetables(c *gin.Context) {
	vegetables, err := h.facade.Vegetables(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.NewVegetableList(vegetables))
}

// SetProcurement handles PUT /api/manager/vegetables/:vegetableId/procurement.
func (h *ManagerHandler) SetProcurement(c *gin.Context) {
	var req dto.ProcurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	veg, err := h.facade.SetProcurement(c.Request.Context(), CurrentIdentity(c), c.Param("vegetableId"), req.IsBought, req.BuyPrice.Float())
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.NewVegetableResponse(*veg))
}

// SetPrice handles PUT /api/manager/vegetables/:vegetableId/price.
func (h *ManagerHandler) SetPrice(c *gin.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	veg, err := h.facade.UpdateSellingPrice(c.Request.Context(), CurrentIdentity(c), c.Param("vegetableId"), req.Price.Float())
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.NewVegetableResponse(*veg))
}

// StagePriceBand handles PUT /api/manager/vegetables/:vegetableId/price-band.
func (h *ManagerHandler) StagePriceBand(c *gin.Context) {
	var req dto.PriceBandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	draft, err := h.facade.StagePriceBand(c.Request.Context(), CurrentIdentity(c), c.Param("vegetableId"),
		dto.FloatPtr(req.MinPrice), dto.FloatPtr(req.MaxPrice))
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.PriceBandResponse{VegetableID: draft.VegetableID, MinPrice: draft.MinPrice, MaxPrice: draft.MaxPrice})
}

// DiscardPriceBand handles DELETE /api/manager/vegetables/:vegetableId/price-band.
func (h *ManagerHandler) DiscardPriceBand(c *gin.Context) {
	if err := h.facade.DiscardPriceBand(c.Request.Context(), CurrentIdentity(c), c.Param("vegetableId")); err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.Status(http.StatusNoContent)
}

// CommitPriceBand handles POST /api/manager/vegetables/:vegetableId/price-band/commit.
func (h *ManagerHandler) CommitPriceBand(c *gin.Context) {
	veg, applied, err := h.facade.CommitPriceBand(c.Request.Context(), CurrentIdentity(c), c.Param("vegetableId"))
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.CommitResponse{Vegetable: dto.NewVegetableResponse(*veg), Applied: applied})
}

// PriceBands handles GET /api/manager/price-bands.
func (h *ManagerHandler) PriceBands(c *gin.Context) {
	drafts, err := h.facade.PriceBandDrafts(c.Request.Context(), CurrentIdentity(c))
	if err != nil {
		respondError(c, err, access.RouteManager)
		return
	}
	c.JSON(http.StatusOK, dto.NewPriceBandList(drafts))
}
