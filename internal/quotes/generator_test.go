package quotes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Deterministic(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	first := Generate("BTC", ts)
	second := Generate("BTC", ts)

	assert.Equal(t, first, second)
}

func TestGenerate_Invariants(t *testing.T) {
	base := map[string]float64{
		"BTC": 50000,
		"ETH": 3000,
		"USD": 1,
		"XYZ": 100, // неизвестный символ получает дефолтную базу
	}

	for symbol, basePrice := range base {
		for i := int64(0); i < 50; i++ {
			ts := time.Unix(1700000000+i, 0)
			q := Generate(symbol, ts)

			assert.Equal(t, symbol, q.Symbol)
			assert.Equal(t, ts, q.Timestamp)

			assert.InDelta(t, q.Bid*1.001, q.Ask, 1e-9)
			assert.InDelta(t, (q.Bid+q.Ask)/2, q.Last, 1e-9)
			assert.GreaterOrEqual(t, q.Ask, q.Bid)
			assert.GreaterOrEqual(t, q.Last, q.Bid)
			assert.LessOrEqual(t, q.Last, q.Ask)

			assert.GreaterOrEqual(t, q.Bid, basePrice*0.99)
			assert.LessOrEqual(t, q.Bid, basePrice*1.01)

			assert.GreaterOrEqual(t, q.Volume, int64(0))
			assert.Less(t, q.Volume, int64(1_000_000))
		}
	}
}

func TestGenerate_SymbolSaltSeparatesSameInstant(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	// Оба символа неизвестные с одинаковой базой: различие даёт только соль.
	first := Generate("AAA", ts)
	second := Generate("BBB", ts)

	assert.NotEqual(t, first.Bid, second.Bid)
}
