package mappers

import (
	exchangev1 "github.com/chilly266futon/exchangeService/gen/pb"
	"github.com/chilly266futon/exchangeService/internal/domain"
)

func OrderStatusToProto(s domain.Status) exchangev1.OrderStatus {
	switch s {
	case domain.StatusCancelled:
		return exchangev1.OrderStatus_CANCELLED
	case domain.StatusFilled:
		return exchangev1.OrderStatus_FILLED
	case domain.StatusPartiallyFilled:
		return exchangev1.OrderStatus_PARTIALLY_FILLED
	default:
		return exchangev1.OrderStatus_PENDING
	}
}
