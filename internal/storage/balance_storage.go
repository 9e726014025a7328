package storage

import (
	"sync"

	"github.com/shopspring/decimal"
)

// BalanceStorage хранит балансы user_id -> currency -> amount. Внутри RPC
// балансы только читаются: пополнение/списание придут вместе с settlement-флоу.
type BalanceStorage struct {
	balances map[string]map[string]decimal.Decimal
	mu       sync.RWMutex
}

func NewBalanceStorage() *BalanceStorage {
	return &BalanceStorage{
		balances: make(map[string]map[string]decimal.Decimal),
	}
}

// Get возвращает ноль для неизвестной пары, ошибок не бывает.
func (s *BalanceStorage) Get(userID, currency string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userBalances, exists := s.balances[userID]
	if !exists {
		return decimal.Zero
	}
	balance, exists := userBalances[currency]
	if !exists {
		return decimal.Zero
	}
	return balance
}

// Deposit зачисляет средства. Ни один RPC его пока не вызывает.
func (s *BalanceStorage) Deposit(userID, currency string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userBalances, exists := s.balances[userID]
	if !exists {
		userBalances = make(map[string]decimal.Decimal)
		s.balances[userID] = userBalances
	}
	userBalances[currency] = userBalances[currency].Add(amount)
}
