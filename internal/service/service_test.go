package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	exchangev1 "github.com/chilly266futon/exchangeService/gen/pb"
	"github.com/chilly266futon/exchangeService/internal/domain"
	"github.com/chilly266futon/exchangeService/internal/storage"
)

func newTestService() (*Service, *storage.OrderStorage, *storage.BalanceStorage) {
	orders := storage.NewOrderStorage()
	balances := storage.NewBalanceStorage()
	svc := NewService(orders, balances, QuotesConfig{
		Interval: 10 * time.Millisecond,
		Buffer:   8,
	}, zap.NewNop())
	return svc, orders, balances
}

func TestCreateOrder_Success(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateOrder(context.Background(), &exchangev1.CreateOrderRequest{
		UserId:   "user-1",
		Symbol:   "BTC",
		Type:     exchangev1.OrderType_BUY,
		Price:    50000.0,
		Quantity: 100,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Order)
	assert.Equal(t, int64(1), resp.Order.Id)
	assert.Equal(t, "user-1", resp.Order.UserId)
	assert.Equal(t, "BTC", resp.Order.Symbol)
	assert.Equal(t, exchangev1.OrderType_BUY, resp.Order.Type)
	assert.Equal(t, exchangev1.OrderStatus_PENDING, resp.Order.Status)
	assert.Equal(t, int64(0), resp.Order.FilledQuantity)
	assert.NotZero(t, resp.Order.CreatedAt)
}

func TestCreateOrder_InvalidArguments(t *testing.T) {
	svc, orders, _ := newTestService()

	tests := []struct {
		name string
		req  *exchangev1.CreateOrderRequest
	}{
		{
			name: "nil request",
			req:  nil,
		},
		{
			name: "empty user_id",
			req: &exchangev1.CreateOrderRequest{
				Symbol:   "BTC",
				Price:    1,
				Quantity: 1,
			},
		},
		{
			name: "empty symbol",
			req: &exchangev1.CreateOrderRequest{
				UserId:   "user-1",
				Price:    1,
				Quantity: 1,
			},
		},
		{
			name: "zero price",
			req: &exchangev1.CreateOrderRequest{
				UserId:   "user-1",
				Symbol:   "BTC",
				Price:    0,
				Quantity: 1,
			},
		},
		{
			name: "negative price",
			req: &exchangev1.CreateOrderRequest{
				UserId:   "user-1",
				Symbol:   "BTC",
				Price:    -10,
				Quantity: 1,
			},
		},
		{
			name: "zero quantity",
			req: &exchangev1.CreateOrderRequest{
				UserId:   "user-1",
				Symbol:   "BTC",
				Price:    1,
				Quantity: 0,
			},
		},
		{
			name: "negative quantity",
			req: &exchangev1.CreateOrderRequest{
				UserId:   "user-1",
				Symbol:   "BTC",
				Price:    1,
				Quantity: -5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(context.Background(), tt.req)
			require.Error(t, err)

			st, _ := status.FromError(err)
			assert.Equal(t, codes.InvalidArgument, st.Code())
		})
	}

	// Ни одна невалидная заявка не попала в таблицу.
	assert.Equal(t, 0, orders.Count())
}

func TestGetBalance_UnknownPairReturnsZero(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.GetBalance(context.Background(), &exchangev1.GetBalanceRequest{
		UserId:   "never-seen",
		Currency: "USD",
	})

	require.NoError(t, err)
	assert.Equal(t, "never-seen", resp.UserId)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, 0.0, resp.Balance)
}

func TestGetBalance_ReturnsDeposited(t *testing.T) {
	svc, _, balances := newTestService()

	balances.Deposit("user-1", "USD", decimal.RequireFromString("1234.56"))

	resp, err := svc.GetBalance(context.Background(), &exchangev1.GetBalanceRequest{
		UserId:   "user-1",
		Currency: "USD",
	})

	require.NoError(t, err)
	assert.InDelta(t, 1234.56, resp.Balance, 1e-9)
}

func TestGetActiveOrders_SymbolFilter(t *testing.T) {
	svc, _, _ := newTestService()

	for _, symbol := range []string{"BTC", "ETH", "BTC"} {
		_, err := svc.CreateOrder(context.Background(), &exchangev1.CreateOrderRequest{
			UserId:   "user-1",
			Symbol:   symbol,
			Type:     exchangev1.OrderType_BUY,
			Price:    100,
			Quantity: 1,
		})
		require.NoError(t, err)
	}

	all, err := svc.GetActiveOrders(context.Background(), &exchangev1.GetActiveOrdersRequest{
		UserId: "user-1",
	})
	require.NoError(t, err)
	assert.Len(t, all.Orders, 3)

	btc, err := svc.GetActiveOrders(context.Background(), &exchangev1.GetActiveOrdersRequest{
		UserId: "user-1",
		Symbol: "BTC",
	})
	require.NoError(t, err)
	assert.Len(t, btc.Orders, 2)
	for _, o := range btc.Orders {
		assert.Equal(t, "BTC", o.Symbol)
	}
}

func TestCancelOrder_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CancelOrder(context.Background(), &exchangev1.CancelOrderRequest{
		UserId:  "user-1",
		OrderId: 42,
	})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestCancelOrder_PermissionDenied(t *testing.T) {
	svc, orders, _ := newTestService()

	created, err := svc.CreateOrder(context.Background(), &exchangev1.CreateOrderRequest{
		UserId:   "user-1",
		Symbol:   "BTC",
		Type:     exchangev1.OrderType_BUY,
		Price:    50000,
		Quantity: 100,
	})
	require.NoError(t, err)

	_, err = svc.CancelOrder(context.Background(), &exchangev1.CancelOrderRequest{
		UserId:  "user-2",
		OrderId: created.Order.Id,
	})

	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.PermissionDenied, st.Code())

	// Статус остался нетронутым.
	stored, exists := orders.GetByID(created.Order.Id)
	require.True(t, exists)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestCancelOrder_AlreadyCancelled(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateOrder(context.Background(), &exchangev1.CreateOrderRequest{
		UserId:   "user-1",
		Symbol:   "BTC",
		Type:     exchangev1.OrderType_SELL,
		Price:    50000,
		Quantity: 100,
	})
	require.NoError(t, err)

	resp, err := svc.CancelOrder(context.Background(), &exchangev1.CancelOrderRequest{
		UserId:  "user-1",
		OrderId: created.Order.Id,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	_, err = svc.CancelOrder(context.Background(), &exchangev1.CancelOrderRequest{
		UserId:  "user-1",
		OrderId: created.Order.Id,
	})

	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
}

func TestOrderLifecycle_RoundTrip(t *testing.T) {
	svc, orders, _ := newTestService()

	created, err := svc.CreateOrder(context.Background(), &exchangev1.CreateOrderRequest{
		UserId:   "u1",
		Symbol:   "BTC",
		Type:     exchangev1.OrderType_BUY,
		Price:    50000,
		Quantity: 100,
	})
	require.NoError(t, err)

	active, err := svc.GetActiveOrders(context.Background(), &exchangev1.GetActiveOrdersRequest{UserId: "u1"})
	require.NoError(t, err)
	require.Len(t, active.Orders, 1)
	assert.Equal(t, created.Order.Id, active.Orders[0].Id)
	assert.Equal(t, exchangev1.OrderStatus_PENDING, active.Orders[0].Status)

	_, err = svc.CancelOrder(context.Background(), &exchangev1.CancelOrderRequest{
		UserId:  "u1",
		OrderId: created.Order.Id,
	})
	require.NoError(t, err)

	active, err = svc.GetActiveOrders(context.Background(), &exchangev1.GetActiveOrdersRequest{UserId: "u1"})
	require.NoError(t, err)
	assert.Empty(t, active.Orders)

	// Запись не удалена, осталась в статусе CANCELLED.
	stored, exists := orders.GetByID(created.Order.Id)
	require.True(t, exists)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
}

type fakeQuoteStream struct {
	grpc.ServerStream
	ctx    context.Context
	cancel context.CancelFunc
	limit  int
	quotes []*exchangev1.Quote
}

func newFakeQuoteStream(limit int) *fakeQuoteStream {
	ctx, cancel := context.WithCancel(context.Background())
	return &fakeQuoteStream{
		ctx:    ctx,
		cancel: cancel,
		limit:  limit,
	}
}

func (f *fakeQuoteStream) Context() context.Context { return f.ctx }

func (f *fakeQuoteStream) Send(q *exchangev1.Quote) error {
	f.quotes = append(f.quotes, q)
	if len(f.quotes) >= f.limit {
		// имитируем отключение клиента
		f.cancel()
	}
	return nil
}

func TestStreamQuotes_EmptySymbols(t *testing.T) {
	svc, _, _ := newTestService()

	stream := newFakeQuoteStream(1)
	defer stream.cancel()

	err := svc.StreamQuotes(&exchangev1.StreamQuotesRequest{}, stream)

	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	// Ошибка до первого сообщения.
	assert.Empty(t, stream.quotes)
}

func TestStreamQuotes_DeliversAndStopsOnDisconnect(t *testing.T) {
	svc, _, _ := newTestService()

	stream := newFakeQuoteStream(5)

	err := svc.StreamQuotes(&exchangev1.StreamQuotesRequest{
		Symbols: []string{"BTC", "ETH"},
	}, stream)

	assert.ErrorIs(t, err, context.Canceled)
	require.GreaterOrEqual(t, len(stream.quotes), 5)

	for _, q := range stream.quotes {
		assert.Contains(t, []string{"BTC", "ETH"}, q.Symbol)
		assert.GreaterOrEqual(t, q.Ask, q.Bid)
		assert.GreaterOrEqual(t, q.Last, q.Bid)
		assert.LessOrEqual(t, q.Last, q.Ask)
		assert.NotZero(t, q.Timestamp)
	}

	// После возврата из хендлера новых Send не бывает.
	sent := len(stream.quotes)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, sent, len(stream.quotes))
}
