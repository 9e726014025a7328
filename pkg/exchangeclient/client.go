package exchangeclient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	exchangev1 "github.com/chilly266futon/exchangeService/gen/pb"
)

const defaultTimeout = 5 * time.Second

type Config struct {
	Address string
	Timeout time.Duration
}

// Client — типизированная обёртка над gRPC-стабом биржевого шлюза.
type Client struct {
	conn    *grpc.ClientConn
	client  exchangev1.ExchangeServiceClient
	timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		conn:    conn,
		client:  exchangev1.NewExchangeServiceClient(conn),
		timeout: timeout,
	}, nil
}

func (c *Client) CreateOrder(ctx context.Context, userID, symbol string, side exchangev1.OrderType, price float64, quantity int64) (*exchangev1.Order, error) {
	ctx, cancel := context.WithTimeout(withTraceID(ctx), c.timeout)
	defer cancel()

	resp, err := c.client.CreateOrder(ctx, &exchangev1.CreateOrderRequest{
		UserId:   userID,
		Symbol:   symbol,
		Type:     side,
		Price:    price,
		Quantity: quantity,
	})
	if err != nil {
		return nil, err
	}
	return resp.Order, nil
}

func (c *Client) GetBalance(ctx context.Context, userID, currency string) (*exchangev1.BalanceResponse, error) {
	ctx, cancel := context.WithTimeout(withTraceID(ctx), c.timeout)
	defer cancel()

	return c.client.GetBalance(ctx, &exchangev1.GetBalanceRequest{
		UserId:   userID,
		Currency: currency,
	})
}

func (c *Client) GetActiveOrders(ctx context.Context, userID, symbol string) ([]*exchangev1.Order, error) {
	ctx, cancel := context.WithTimeout(withTraceID(ctx), c.timeout)
	defer cancel()

	resp, err := c.client.GetActiveOrders(ctx, &exchangev1.GetActiveOrdersRequest{
		UserId: userID,
		Symbol: symbol,
	})
	if err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// StreamQuotes открывает серверный стрим. Таймаут клиента здесь не применяется:
// подписка живёт, пока жив переданный контекст.
func (c *Client) StreamQuotes(ctx context.Context, symbols []string) (exchangev1.ExchangeService_StreamQuotesClient, error) {
	return c.client.StreamQuotes(withTraceID(ctx), &exchangev1.StreamQuotesRequest{
		Symbols: symbols,
	})
}

func (c *Client) CancelOrder(ctx context.Context, userID string, orderID int64) (*exchangev1.CancelOrderResponse, error) {
	ctx, cancel := context.WithTimeout(withTraceID(ctx), c.timeout)
	defer cancel()

	return c.client.CancelOrder(ctx, &exchangev1.CancelOrderRequest{
		UserId:  userID,
		OrderId: orderID,
	})
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func withTraceID(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "x-trace-id", uuid.NewString())
}
