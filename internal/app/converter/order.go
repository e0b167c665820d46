package converter

import (
	"time"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/avGenie/go-order-tracker/internal/app/model"
)

func ConvertOrderToOutput(order entity.Order) model.OrderResponse {
	return model.OrderResponse{
		OrderID:       order.OrderID.String(),
		CustomerID:    order.CustomerID.String(),
		PlacementDate: formatTime(order.PlacementDate),
		Status:        order.Status.String(),
	}
}

func ConvertOrdersToOutput(orders entity.Orders) model.OrdersResponse {
	outOrders := make([]model.OrderResponse, 0, len(orders))
	for _, order := range orders {
		outOrders = append(outOrders, ConvertOrderToOutput(order))
	}

	return model.OrdersResponse{
		Orders: outOrders,
	}
}

func ConvertOrderEventToMessage(event entity.OrderEvent) model.OrderEventMessage {
	return model.OrderEventMessage{
		EventType:      string(event.Type),
		OccurredAt:     formatTime(event.OccurredAt),
		PreviousStatus: event.PreviousStatus.String(),
		Order:          ConvertOrderToOutput(event.Order),
	}
}

func ConvertOrderStatusesToOutput(statuses []entity.OrderStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, status.String())
	}

	return out
}

// millisecond precision, always in UTC with a Z suffix
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
