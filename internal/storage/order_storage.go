package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/chilly266futon/exchangeService/internal/domain"
)

// OrderStorage владеет таблицей ордеров и выдачей id. Все мутации идут под
// write-lock, так что два конкурентных Create никогда не получат один id.
type OrderStorage struct {
	orders map[int64]*domain.Order
	nextID int64
	mu     sync.RWMutex
}

func NewOrderStorage() *OrderStorage {
	return &OrderStorage{
		orders: make(map[int64]*domain.Order),
		nextID: 1,
	}
}

// Create ожидает уже провалидированные аргументы (валидация живёт в service,
// чтобы storage тестировался без gRPC-обвязки).
func (s *OrderStorage) Create(userID, symbol string, side domain.Side, price float64, quantity int64) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := &domain.Order{
		ID:             s.nextID,
		UserID:         userID,
		Symbol:         symbol,
		Side:           side,
		Price:          price,
		Quantity:       quantity,
		FilledQuantity: 0,
		Status:         domain.StatusPending,
		CreatedAt:      time.Now(),
	}
	s.nextID++
	s.orders[order.ID] = order

	return *order
}

func (s *OrderStorage) GetByID(id int64) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[id]
	if !exists {
		return domain.Order{}, false
	}
	return *order, true
}

// ActiveByUser возвращает pending-ордера пользователя, при непустом symbol —
// только по этому инструменту. Результат отсортирован по id.
func (s *OrderStorage) ActiveByUser(userID, symbol string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range s.orders {
		if order.UserID != userID || order.Status != domain.StatusPending {
			continue
		}
		if symbol != "" && order.Symbol != symbol {
			continue
		}
		result = append(result, *order)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Cancel переводит ордер в CANCELLED. Запись не удаляется, остаётся для
// истории и листинга.
func (s *OrderStorage) Cancel(userID string, orderID int64) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, exists := s.orders[orderID]
	if !exists {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if !order.IsOwnedBy(userID) {
		return domain.Order{}, domain.ErrAccessDenied
	}
	if !order.CanBeCancelled() {
		return domain.Order{}, domain.ErrOrderCannotBeCancelled
	}

	order.Status = domain.StatusCancelled
	return *order, nil
}

func (s *OrderStorage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}
