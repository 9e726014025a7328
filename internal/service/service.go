package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	exchangev1 "github.com/chilly266futon/exchangeService/gen/pb"
	"github.com/chilly266futon/exchangeService/internal/domain"
	"github.com/chilly266futon/exchangeService/internal/mappers"
	"github.com/chilly266futon/exchangeService/internal/quotes"
	"github.com/chilly266futon/exchangeService/internal/storage"
	"github.com/chilly266futon/exchange-shared/pkg/interceptors"
)

// QuotesConfig задаёт цену деления стрима котировок.
type QuotesConfig struct {
	Interval time.Duration
	Buffer   int
}

type Service struct {
	exchangev1.UnimplementedExchangeServiceServer
	orders    *storage.OrderStorage
	balances  *storage.BalanceStorage
	quotesCfg QuotesConfig
	logger    *zap.Logger
}

func NewService(orders *storage.OrderStorage, balances *storage.BalanceStorage, quotesCfg QuotesConfig, logger *zap.Logger) *Service {
	return &Service{
		orders:    orders,
		balances:  balances,
		quotesCfg: quotesCfg,
		logger:    logger,
	}
}

func (s *Service) CreateOrder(ctx context.Context, req *exchangev1.CreateOrderRequest) (*exchangev1.OrderResponse, error) {
	traceID := interceptors.GetTraceID(ctx)

	if err := validateCreateOrderRequest(req); err != nil {
		return nil, err
	}

	order := s.orders.Create(req.UserId, req.Symbol, mappers.SideFromProto(req.Type), req.Price, req.Quantity)

	s.logger.Info("order created",
		zap.String("trace_id", traceID),
		zap.Int64("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.String("symbol", order.Symbol),
		zap.String("side", order.Side.String()),
		zap.Float64("price", order.Price),
		zap.Int64("quantity", order.Quantity),
	)

	return &exchangev1.OrderResponse{
		Order: mappers.OrderToProto(order),
	}, nil
}

func (s *Service) GetBalance(ctx context.Context, req *exchangev1.GetBalanceRequest) (*exchangev1.BalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	// Неизвестная пара (user_id, currency) — это ноль, а не ошибка.
	balance := s.balances.Get(req.UserId, req.Currency)

	return &exchangev1.BalanceResponse{
		UserId:   req.UserId,
		Currency: req.Currency,
		Balance:  balance.InexactFloat64(),
	}, nil
}

func (s *Service) GetActiveOrders(ctx context.Context, req *exchangev1.GetActiveOrdersRequest) (*exchangev1.ActiveOrdersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	active := s.orders.ActiveByUser(req.UserId, req.Symbol)

	orders := make([]*exchangev1.Order, 0, len(active))
	for _, order := range active {
		orders = append(orders, mappers.OrderToProto(order))
	}

	return &exchangev1.ActiveOrdersResponse{
		Orders: orders,
	}, nil
}

func (s *Service) StreamQuotes(req *exchangev1.StreamQuotesRequest, stream exchangev1.ExchangeService_StreamQuotesServer) error {
	ctx := stream.Context()
	traceID := interceptors.GetTraceID(ctx)

	if req == nil || len(req.Symbols) == 0 {
		return status.Error(codes.InvalidArgument, domain.ErrNoSymbols.Error())
	}

	s.logger.Info("quote subscription started",
		zap.String("trace_id", traceID),
		zap.Strings("symbols", req.Symbols),
	)

	// Продюсер привязан к контексту стрима: отключение клиента гасит его
	// не позже чем через один тик.
	streamer := quotes.NewStreamer(req.Symbols, s.quotesCfg.Interval, s.quotesCfg.Buffer)
	out := streamer.Start(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("quote subscription closed",
				zap.String("trace_id", traceID),
			)
			return ctx.Err()
		case quote, ok := <-out:
			if !ok {
				return ctx.Err()
			}
			if err := stream.Send(mappers.QuoteToProto(quote)); err != nil {
				s.logger.Warn("failed to send quote",
					zap.String("trace_id", traceID),
					zap.String("symbol", quote.Symbol),
					zap.Error(err),
				)
				return err
			}
		}
	}
}

func (s *Service) CancelOrder(ctx context.Context, req *exchangev1.CancelOrderRequest) (*exchangev1.CancelOrderResponse, error) {
	traceID := interceptors.GetTraceID(ctx)

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	order, err := s.orders.Cancel(req.UserId, req.OrderId)
	if err != nil {
		s.logger.Warn("cannot cancel order",
			zap.String("trace_id", traceID),
			zap.Int64("order_id", req.OrderId),
			zap.String("user_id", req.UserId),
			zap.Error(err),
		)

		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return nil, status.Error(codes.NotFound, err.Error())
		case errors.Is(err, domain.ErrAccessDenied):
			return nil, status.Error(codes.PermissionDenied, err.Error())
		case errors.Is(err, domain.ErrOrderCannotBeCancelled):
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		default:
			return nil, status.Error(codes.Internal, err.Error())
		}
	}

	s.logger.Info("order cancelled",
		zap.String("trace_id", traceID),
		zap.Int64("order_id", order.ID),
		zap.String("user_id", order.UserID),
	)

	return &exchangev1.CancelOrderResponse{
		Success: true,
		Message: "order cancelled successfully",
	}, nil
}

func validateCreateOrderRequest(req *exchangev1.CreateOrderRequest) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}
	if req.UserId == "" {
		return status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.Symbol == "" {
		return status.Error(codes.InvalidArgument, domain.ErrEmptySymbol.Error())
	}
	if req.Price <= 0 {
		return status.Error(codes.InvalidArgument, domain.ErrInvalidPrice.Error())
	}
	if req.Quantity <= 0 {
		return status.Error(codes.InvalidArgument, domain.ErrInvalidQuantity.Error())
	}
	return nil
}
