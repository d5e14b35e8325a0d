package model

import "fmt"

// OrderStatus describes order lifecycle stage.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// packed orders may go straight to delivered since delivery staff work the packed queue.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPlaced: {
		OrderStatusAccepted: true,
		OrderStatusRejected: true,
	},
	OrderStatusAccepted: {
		OrderStatusPacked:    true,
		OrderStatusCancelled: true,
	},
	OrderStatusPacked: {
		OrderStatusAssigned:  true,
		OrderStatusDelivered: true,
		OrderStatusCancelled: true,
	},
	OrderStatusAssigned: {
		OrderStatusDelivered: true,
		OrderStatusCancelled: true,
	},
}

// ParseOrderStatus validates raw status name.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch s := OrderStatus(raw); s {
	case OrderStatusPlaced, OrderStatusAccepted, OrderStatusRejected, OrderStatusPacked,
		OrderStatusAssigned, OrderStatusDelivered, OrderStatusCancelled:
		return s, nil
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	return allowedTransitions[from][to]
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// RequiresStock reports whether the order still needs vegetables for its delivery date.
func (s OrderStatus) RequiresStock() bool {
	return s == OrderStatusAccepted || s == OrderStatusPacked || s == OrderStatusAssigned
}
