package mappers

import (
	exchangev1 "github.com/chilly266futon/exchangeService/gen/pb"
	"github.com/chilly266futon/exchangeService/internal/domain"
)

func OrderToProto(o domain.Order) *exchangev1.Order {
	return &exchangev1.Order{
		Id:             o.ID,
		UserId:         o.UserID,
		Symbol:         o.Symbol,
		Type:           SideToProto(o.Side),
		Price:          o.Price,
		Quantity:       o.Quantity,
		FilledQuantity: o.FilledQuantity,
		Status:         OrderStatusToProto(o.Status),
		CreatedAt:      o.CreatedAt.Unix(),
	}
}

func QuoteToProto(q domain.Quote) *exchangev1.Quote {
	return &exchangev1.Quote{
		Symbol:    q.Symbol,
		Bid:       q.Bid,
		Ask:       q.Ask,
		Last:      q.Last,
		Volume:    q.Volume,
		Timestamp: q.Timestamp.Unix(),
	}
}
