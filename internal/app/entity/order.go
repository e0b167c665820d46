package entity

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = `pending`
	StatusPaid      OrderStatus = `paid`
	StatusShipped   OrderStatus = `shipped`
	StatusDelivered OrderStatus = `delivered`
	StatusCancelled OrderStatus = `cancelled`
)

// OrderStatuses returns every known status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusPaid,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

type Orders []Order

type Order struct {
	OrderID       OrderID
	CustomerID    CustomerID
	PlacementDate time.Time
	Status        OrderStatus
}
