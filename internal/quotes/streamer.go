package quotes

import (
	"context"
	"time"

	"github.com/chilly266futon/exchangeService/internal/domain"
)

const (
	DefaultInterval = time.Second
	DefaultBuffer   = 128
)

// Streamer — фоновый продюсер одной подписки: раз в interval генерирует по
// котировке на каждый запрошенный символ. Состояние ни с кем не разделяет,
// каждый стрим владеет своим экземпляром.
type Streamer struct {
	symbols  []string
	interval time.Duration
	buffer   int
}

func NewStreamer(symbols []string, interval time.Duration, buffer int) *Streamer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Streamer{
		symbols:  symbols,
		interval: interval,
		buffer:   buffer,
	}
}

// Start запускает продюсера и отдаёт канал котировок. Буфер канала гасит
// короткие простои потребителя; при заполненном буфере продюсер блокируется,
// а не дропает (порядок символов внутри тика сохраняется). Отмена контекста
// останавливает продюсера не позже чем через один interval, канал закрывается,
// фоновая горутина не переживает отключение клиента.
func (s *Streamer) Start(ctx context.Context) <-chan domain.Quote {
	out := make(chan domain.Quote, s.buffer)

	go func() {
		defer close(out)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				for _, symbol := range s.symbols {
					select {
					case out <- Generate(symbol, now):
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return out
}
