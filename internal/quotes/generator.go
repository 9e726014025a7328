package quotes

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/chilly266futon/exchangeService/internal/domain"
)

const (
	fallbackBasePrice = 100.0
	spreadFraction    = 0.001 // ask = bid * 1.001
)

var basePrices = map[string]float64{
	"BTC": 50000.0,
	"ETH": 3000.0,
	"USD": 1.0,
}

// Generate строит синтетическую котировку: базовая цена инструмента плюс
// псевдослучайное отклонение в пределах ±1%. Генератор сидится от
// (timestamp, символ), поэтому для одинаковых аргументов результат
// детерминирован. Неизвестный символ получает дефолтную базу, стрим из-за
// опечатки в символе не падает.
func Generate(symbol string, ts time.Time) domain.Quote {
	basePrice, ok := basePrices[symbol]
	if !ok {
		basePrice = fallbackBasePrice
	}

	rng := rand.New(rand.NewSource(seed(symbol, ts)))

	variation := (rng.Float64() - 0.5) * 0.02
	bid := basePrice * (1.0 + variation)
	ask := bid * (1.0 + spreadFraction)

	return domain.Quote{
		Symbol:    symbol,
		Bid:       bid,
		Ask:       ask,
		Last:      (bid + ask) / 2.0,
		Volume:    rng.Int63n(1_000_000),
		Timestamp: ts,
	}
}

// Соль от символа разводит одномоментные тики разных инструментов.
func seed(symbol string, ts time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return ts.Unix() ^ int64(h.Sum64())
}
