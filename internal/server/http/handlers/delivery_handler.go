package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
)

// DeliveryHandler serves the delivery queue.
type DeliveryHandler struct {
	facade DeliveryFacade
}

// NewDeliveryHandler constructs DeliveryHandler.
func NewDeliveryHandler(facade DeliveryFacade) *DeliveryHandler {
	return &DeliveryHandler{facade: facade}
}

// Queue handles GET /api/delivery/orders.
func (h *DeliveryHandler) Queue(c *gin.Context) {
	orders, err := h.facade.DeliveryQueue(c.Request.Context())
	if err != nil {
		respondError(c, err, access.RouteDeliveryOrders)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

// Assignments handles GET /api/delivery/assignments.
func (h *DeliveryHandler) Assignments(c *gin.Context) {
	orders, err := h.facade.DeliveryAssignments(c.Request.Context(), CurrentIdentity(c))
	if err != nil {
		respondError(c, err, access.RouteDeliveryOrders)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

// Order handles GET /api/delivery/orders/:orderId.
func (h *DeliveryHandler) Order(c *gin.Context) {
	order, err := h.facade.DeliveryOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err, access.RouteDeliveryOrders)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// MarkDelivered handles POST /api/delivery/orders/:orderId/delivered.
func (h *DeliveryHandler) MarkDelivered(c *gin.Context) {
	order, err := h.facade.MarkDelivered(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"))
	if err != nil {
		respondError(c, err, access.RouteDeliveryOrders)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Order: dto.NewOrderResponse(*order), Next: string(access.RouteDeliveryOrders)})
}

// Cancel handles POST /api/delivery/orders/:orderId/cancel.
func (h *DeliveryHandler) Cancel(c *gin.Context) {
	order, err := h.facade.CancelDelivery(c.Request.Context(), CurrentIdentity(c), c.Param("orderId"))
	if err != nil {
		respondError(c, err, access.RouteDeliveryOrders)
		return
	}
	c.JSON(http.StatusOK, dto.ActionResponse{Order: dto.NewOrderResponse(*order), Next: string(access.RouteDeliveryOrders)})
}
