package domain

import (
	"time"
)

type Order struct {
	ID             int64
	UserID         string
	Symbol         string
	Side           Side
	Price          float64
	Quantity       int64
	FilledQuantity int64
	Status         Status
	CreatedAt      time.Time
}

func (o *Order) IsOwnedBy(userID string) bool {
	return o.UserID == userID
}

func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending
}
