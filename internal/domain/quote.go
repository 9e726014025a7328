package domain

import "time"

// Quote живёт только в стриме, никуда не сохраняется.
type Quote struct {
	Symbol    string
	Bid       float64
	Ask       float64
	Last      float64
	Volume    int64
	Timestamp time.Time
}
