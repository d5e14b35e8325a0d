package repository

import (
	"context"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// OrderMutation edits an order in place. Returning an error discards the edit.
type OrderMutation func(order *model.Order) error

// OrderRepository describes operations with orders.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	ListByStatus(ctx context.Context, statuses ...model.OrderStatus) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	Update(ctx context.Context, id string, mutate OrderMutation) (*model.Order, error)
}
