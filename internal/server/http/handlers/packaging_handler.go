package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
)

// PackagingHandler serves the packaging queue.
type PackagingHandler struct {
	facade PackagingFacade
}

// NewPackagingHandler constructs PackagingHandler.
func NewPackagingHandler(facade PackagingFacade) *PackagingHandler {
	return &PackagingHandler{facade: facade}
}

// Queue handles GET /api/packaging/orders.
func (h *PackagingHandler) Queue(c *gin.Context) {
	orders, err := h.facade.PackagingQueue(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RoutePackOrders)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

// Order handles GET /api/packaging/orders/:orderId.
func (h *PackagingHandler) Order(c *gin.Context) {
	order, err := h.facade.PackagingOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err, access.RoutePackOrders)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// SetAvailability handles PUT /api/packaging/orders/:orderId/items/:itemId/availability.
func (h *PackagingHandler) SetAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	order, err := h.facade.SetItemAvailability(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"), c.Param("itemId"), *req.Available)
	if err != nil {
		respondError(c, err, access.RoutePackOrders)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// RemoveItem handles DELETE /api/packaging/orders/:orderId/items/:itemId.
func (h *PackagingHandler) RemoveItem(c *gin.Context) {
	order, err := h.facade.RemoveOrderItem(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err, access.RoutePackOrders)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// MarkPacked handles POST /api/packaging/orders/:orderId/packed.
func (h *PackagingHandler) MarkPacked(c *gin.Context) {
	order, err := h.facade.MarkPacked(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"))
	if err != nil {
		respondError(c, err, access.RoutePackOrders)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Order: dto.NewOrderResponse(*order), Next: string(access.RoutePackOrders)})
}

// Cancel handles POST /api/packaging/orders/:orderId/cancel.
func (h *PackagingHandler) Cancel(c *gin.Context) {
	order, err := h.facade.CancelPacking(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"))
	if err != nil {
		respondError(c, err, access.RoutePackOrders)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Order: dto.NewOrderResponse(*order), Next: string(access.RoutePackOrders)})
}
