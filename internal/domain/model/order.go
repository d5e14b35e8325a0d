package model

import "time"

// Customer is the contact snapshot stored with every order.
type Customer struct {
	ID      string
	Name    string
	Phone   string
	Address string
}

// OrderItem is a single vegetable line of an order.
type OrderItem struct {
	ID            string
	VegetableID   string
	VegetableName string
	Quantity      float64
	Price         float64
	Unit          string
	Available     bool
}

// Subtotal returns the item's contribution to the order total.
func (i OrderItem) Subtotal() float64 {
	return i.Quantity * i.Price
}

// Order describes a customer's request for vegetables.
type Order struct {
	ID                        string
	Customer                  Customer
	Items                     []OrderItem
	TotalAmount               float64
	Status                    OrderStatus
	DeliveryDate              string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	AssignedPackagingEmployee string
	AssignedDeliveryEmployee  string
}

// Recalculate sets TotalAmount to the sum of item subtotals.
func (o *Order) Recalculate() {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	o.TotalAmount = total
}

// Item returns pointer to the item with given id.
func (o *Order) Item(id string) (*OrderItem, bool) {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return &o.Items[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy safe to hand out of the store.
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}
