package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	err_storage "github.com/avGenie/go-order-tracker/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-tracker/internal/app/storage/api/model"
)

type Memory struct {
	mutex  sync.RWMutex
	orders map[entity.OrderID]entity.Order
}

func NewMemoryStorage() *Memory {
	return &Memory{
		mutex:  sync.RWMutex{},
		orders: make(map[entity.OrderID]entity.Order),
	}
}

func (s *Memory) Close() error {
	return nil
}

func (s *Memory) CreateOrder(ctx context.Context, order entity.Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.orders[order.OrderID]; ok {
		return fmt.Errorf("error while creating order %s: %w", order.OrderID, err_storage.ErrOrderExists)
	}
	s.orders[order.OrderID] = order

	return nil
}

func (s *Memory) GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	order, ok := s.orders[orderID]
	if !ok {
		return entity.Order{}, fmt.Errorf("error while getting order %s: %w", orderID, err_storage.ErrOrderNotFound)
	}

	return order, nil
}

func (s *Memory) ListOrders(ctx context.Context) (entity.Orders, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	orders := make(entity.Orders, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, order)
	}

	return orders, nil
}

func (s *Memory) UpdateOrder(ctx context.Context, order entity.Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.orders[order.OrderID]; !ok {
		return fmt.Errorf("error while updating order %s: %w", order.OrderID, err_storage.ErrOrderNotFound)
	}
	s.orders[order.OrderID] = order

	return nil
}

// UpdateOrderFunc holds the write lock across read, updater call and write, so
// concurrent updates of one order are applied one after another.
func (s *Memory) UpdateOrderFunc(ctx context.Context, orderID entity.OrderID, updater model.OrderUpdater) (entity.Order, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, ok := s.orders[orderID]
	if !ok {
		return entity.Order{}, fmt.Errorf("error while updating order %s: %w", orderID, err_storage.ErrOrderNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return current, err
	}
	// id is the map key and must not drift from it
	updated.OrderID = orderID
	s.orders[orderID] = updated

	return updated, nil
}
