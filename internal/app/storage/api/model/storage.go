package model

import (
	"context"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
)

// OrderUpdater receives the stored order and returns its replacement.
// Returning an error leaves the stored order untouched.
type OrderUpdater func(order entity.Order) (entity.Order, error)

type Storage interface {
	Close() error

	CreateOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error)
	ListOrders(ctx context.Context) (entity.Orders, error)
	UpdateOrder(ctx context.Context, order entity.Order) error
	UpdateOrderFunc(ctx context.Context, orderID entity.OrderID, updater OrderUpdater) (entity.Order, error)
}
