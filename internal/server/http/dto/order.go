package dto

import (
	"time"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// CustomerResponse describes order customer contact.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItemResponse describes a single order line.
type OrderItemResponse struct {
	ID            string  `json:"id"`
	VegetableID   string  `json:"vegetableId"`
	VegetableName string  `json:"vegetableName"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	Available     bool    `json:"available"`
	Subtotal      float64 `json:"subtotal"`
}

// OrderResponse describes an order.
type OrderResponse struct {
	ID                        string              `json:"id"`
	Customer                  CustomerResponse    `json:"customer"`
	Items                     []OrderItemResponse `json:"items"`
	TotalAmount               float64             `json:"totalAmount"`
	Status                    string              `json:"status"`
	DeliveryDate              string              `json:"deliveryDate"`
	CreatedAt                 time.Time           `json:"createdAt"`
	UpdatedAt                 time.Time           `json:"updatedAt"`
	AssignedPackagingEmployee string              `json:"assignedPackagingEmployee,omitempty"`
	AssignedDeliveryEmployee  string              `json:"assignedDeliveryEmployee,omitempty"`
}

// ActionResponse is returned by workflow actions together with the view to go to next.
type ActionResponse struct {
	Order OrderResponse `json:"order"`
	Next  string        `json:"next,omitempty"`
}

// StatusRequest describes a triage decision.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderDetailsRequest lists editable order fields; omitted fields are kept.
type OrderDetailsRequest struct {
	CustomerName *string `json:"customerName"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	DeliveryDate *string `json:"deliveryDate"`
}

// ItemRequest lists editable item fields; omitted fields are kept.
type ItemRequest struct {
	VegetableName *string `json:"vegetableName"`
	Quantity      *Number `json:"quantity"`
	Price         *Number `json:"price"`
}

// AvailabilityRequest toggles item availability.
type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// AssignRequest names the delivery employee for an order.
type AssignRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

// NewOrderResponse converts model.Order.
func NewOrderResponse(o model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:            it.ID,
			VegetableID:   it.VegetableID,
			VegetableName: it.VegetableName,
			Quantity:      it.Quantity,
			Price:         it.Price,
			Unit:          it.Unit,
			Available:     it.Available,
			Subtotal:      it.Subtotal(),
		})
	}
	return OrderResponse{
		ID: o.ID,
		Customer: CustomerResponse{
			ID:      o.Customer.ID,
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		Items:                     items,
		TotalAmount:               o.TotalAmount,
		Status:                    string(o.Status),
		DeliveryDate:              o.DeliveryDate,
		CreatedAt:                 o.CreatedAt,
		UpdatedAt:                 o.UpdatedAt,
		AssignedPackagingEmployee: o.AssignedPackagingEmployee,
		AssignedDeliveryEmployee:  o.AssignedDeliveryEmployee,
	}
}

// NewOrderList converts a slice of orders. Empty input yields an empty list.
func NewOrderList(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
