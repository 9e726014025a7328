package mappers

import (
	exchangev1 "github.com/chilly266futon/exchangeService/gen/pb"
	"github.com/chilly266futon/exchangeService/internal/domain"
)

func SideFromProto(t exchangev1.OrderType) domain.Side {
	switch t {
	case exchangev1.OrderType_SELL:
		return domain.SideSell
	default:
		return domain.SideBuy
	}
}

func SideToProto(s domain.Side) exchangev1.OrderType {
	switch s {
	case domain.SideSell:
		return exchangev1.OrderType_SELL
	default:
		return exchangev1.OrderType_BUY
	}
}
