package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chilly266futon/exchangeService/internal/domain"
)

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	s := NewOrderStorage()

	first := s.Create("user-1", "BTC", domain.SideBuy, 50000, 100)
	second := s.Create("user-1", "ETH", domain.SideSell, 3000, 10)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, domain.StatusPending, first.Status)
	assert.Equal(t, int64(0), first.FilledQuantity)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestCreate_ConcurrentIDsUniqueAndGapless(t *testing.T) {
	s := NewOrderStorage()

	const n = 200

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order := s.Create("user-1", "BTC", domain.SideBuy, 100, 1)
			ids <- order.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	require.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestCreate_ReturnsCopy(t *testing.T) {
	s := NewOrderStorage()

	order := s.Create("user-1", "BTC", domain.SideBuy, 50000, 100)
	order.Status = domain.StatusCancelled
	order.Price = 1

	stored, exists := s.GetByID(order.ID)
	require.True(t, exists)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, float64(50000), stored.Price)
}

func TestActiveByUser_FiltersPendingAndSymbol(t *testing.T) {
	s := NewOrderStorage()

	btc := s.Create("user-1", "BTC", domain.SideBuy, 50000, 100)
	eth := s.Create("user-1", "ETH", domain.SideSell, 3000, 10)
	s.Create("user-2", "BTC", domain.SideBuy, 49000, 5)

	cancelled := s.Create("user-1", "BTC", domain.SideBuy, 48000, 1)
	_, err := s.Cancel("user-1", cancelled.ID)
	require.NoError(t, err)

	all := s.ActiveByUser("user-1", "")
	require.Len(t, all, 2)
	assert.Equal(t, btc.ID, all[0].ID)
	assert.Equal(t, eth.ID, all[1].ID)

	onlyBTC := s.ActiveByUser("user-1", "BTC")
	require.Len(t, onlyBTC, 1)
	assert.Equal(t, btc.ID, onlyBTC[0].ID)

	assert.Empty(t, s.ActiveByUser("user-3", ""))
}

func TestActiveByUser_Deterministic(t *testing.T) {
	s := NewOrderStorage()

	for i := 0; i < 10; i++ {
		s.Create("user-1", "BTC", domain.SideBuy, 100, 1)
	}

	first := s.ActiveByUser("user-1", "")
	second := s.ActiveByUser("user-1", "")
	assert.Equal(t, first, second)
}

func TestCancel_NotFound(t *testing.T) {
	s := NewOrderStorage()

	_, err := s.Cancel("user-1", 42)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCancel_WrongUserLeavesOrderUntouched(t *testing.T) {
	s := NewOrderStorage()

	order := s.Create("user-1", "BTC", domain.SideBuy, 50000, 100)

	_, err := s.Cancel("user-2", order.ID)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	stored, exists := s.GetByID(order.ID)
	require.True(t, exists)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	s := NewOrderStorage()

	order := s.Create("user-1", "BTC", domain.SideBuy, 50000, 100)

	cancelled, err := s.Cancel("user-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	// Повторная отмена — всегда FailedPrecondition, а не тихий успех.
	_, err = s.Cancel("user-1", order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderCannotBeCancelled)
}

func TestCancel_RecordIsRetained(t *testing.T) {
	s := NewOrderStorage()

	order := s.Create("user-1", "BTC", domain.SideBuy, 50000, 100)
	_, err := s.Cancel("user-1", order.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Count())

	stored, exists := s.GetByID(order.ID)
	require.True(t, exists)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
}
