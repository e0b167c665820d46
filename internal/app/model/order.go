package model

type CreateOrderRequest struct {
	CustomerID string `json:"customerId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	OrderID       string `json:"orderId"`
	CustomerID    string `json:"customerId"`
	PlacementDate string `json:"placementDate"`
	Status        string `json:"status"`
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type OrderEventMessage struct {
	EventType      string        `json:"eventType"`
	OccurredAt     string        `json:"occurredAt"`
	PreviousStatus string        `json:"previousStatus,omitempty"`
	Order          OrderResponse `json:"order"`
}
