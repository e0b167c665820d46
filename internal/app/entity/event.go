package entity

import "time"

type OrderEventType string

const (
	EventOrderCreated       OrderEventType = `order.created`
	EventOrderStatusChanged OrderEventType = `order.status_changed`
)

type OrderEvent struct {
	Type           OrderEventType
	Order          Order
	PreviousStatus OrderStatus
	OccurredAt     time.Time
}

func CreateOrderCreatedEvent(order Order) OrderEvent {
	return OrderEvent{
		Type:       EventOrderCreated,
		Order:      order,
		OccurredAt: order.PlacementDate,
	}
}

func CreateStatusChangedEvent(order Order, previous OrderStatus, occurredAt time.Time) OrderEvent {
	return OrderEvent{
		Type:           EventOrderStatusChanged,
		Order:          order,
		PreviousStatus: previous,
		OccurredAt:     occurredAt,
	}
}
