package quotes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 10 * time.Millisecond

func TestStreamer_EmitsSymbolsInRequestOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	symbols := []string{"BTC", "ETH"}
	out := NewStreamer(symbols, testInterval, 8).Start(ctx)

	received := make([]string, 0, 6)
	for len(received) < 6 {
		select {
		case q, ok := <-out:
			require.True(t, ok)
			received = append(received, q.Symbol)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for quotes")
		}
	}

	// Внутри тика порядок символов совпадает с порядком в запросе.
	for i, symbol := range received {
		assert.Equal(t, symbols[i%len(symbols)], symbol)
	}
}

func TestStreamer_QuoteInvariants(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := NewStreamer([]string{"BTC", "ETH"}, testInterval, 8).Start(ctx)

	for i := 0; i < 5; i++ {
		select {
		case q := <-out:
			assert.Contains(t, []string{"BTC", "ETH"}, q.Symbol)
			assert.GreaterOrEqual(t, q.Ask, q.Bid)
			assert.GreaterOrEqual(t, q.Last, q.Bid)
			assert.LessOrEqual(t, q.Last, q.Ask)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for quotes")
		}
	}
}

func TestStreamer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	out := NewStreamer([]string{"BTC"}, testInterval, 8).Start(ctx)

	select {
	case _, ok := <-out:
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first quote")
	}

	cancel()

	// Продюсер обязан закрыть канал не позже чем через один тик.
	deadline := time.After(20 * testInterval)
	for {
		select {
		case _, ok := <-out:
			if !ok {
				return
			}
			// добиваем то, что уже лежало в буфере
		case <-deadline:
			t.Fatal("producer did not stop after cancellation")
		}
	}
}

func TestStreamer_NoActivityAfterClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	out := NewStreamer([]string{"BTC", "ETH"}, testInterval, 8).Start(ctx)
	cancel()

	for range out {
		// дренируем буфер до закрытия
	}

	time.Sleep(3 * testInterval)
	_, ok := <-out
	assert.False(t, ok)
}
