package validator

import "github.com/avGenie/go-order-tracker/internal/app/entity"

func ParseOrderStatus(value string) (entity.OrderStatus, bool) {
	for _, status := range entity.OrderStatuses() {
		if string(status) == value {
			return status, true
		}
	}

	return entity.OrderStatus(""), false
}
