package domain

// Status совпадает по нумерации с proto OrderStatus. Filled и PartiallyFilled
// зарезервированы под матчинг и сервисом не выставляются.
type Status uint8

const (
	StatusPending Status = iota
	StatusCancelled
	StatusFilled
	StatusPartiallyFilled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusCancelled:
		return "CANCELLED"
	case StatusFilled:
		return "FILLED"
	case StatusPartiallyFilled:
		return "PARTIALLY_FILLED"
	default:
		return "UNSPECIFIED"
	}
}
