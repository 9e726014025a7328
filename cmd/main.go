package main

import (
	"flag"
	"log"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	exchangev1 "github.com/chilly266futon/exchangeService/gen/pb"
	"github.com/chilly266futon/exchangeService/internal/config"
	"github.com/chilly266futon/exchangeService/internal/service"
	"github.com/chilly266futon/exchangeService/internal/storage"
	"github.com/chilly266futon/exchange-shared/pkg/grpcutil"
	"github.com/chilly266futon/exchange-shared/pkg/health"
	"github.com/chilly266futon/exchange-shared/pkg/interceptors"
	"github.com/chilly266futon/exchange-shared/pkg/logger"
)

const serviceName = "exchange-service"

func main() {
	// Парсинг флагов
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	l, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer l.Sync()

	l.Info("starting exchange-service",
		zap.String("version", "1.0.0"),
		zap.String("config", *configPath),
	)

	orderStorage := storage.NewOrderStorage()
	balanceStorage := storage.NewBalanceStorage()

	exchangeService := service.NewService(orderStorage, balanceStorage, service.QuotesConfig{
		Interval: cfg.Quotes.Interval,
		Buffer:   cfg.Quotes.Buffer,
	}, l)

	var interceptorChain []grpc.ServerOption

	interceptorChain = append(interceptorChain,
		grpc.ChainUnaryInterceptor(interceptors.TraceIDInterceptor()),
	)

	interceptorChain = append(interceptorChain,
		grpc.UnaryInterceptor(interceptors.UnaryPanicRecoveryInterceptor(l)),
	)

	if cfg.RateLimit.Enabled {
		rateLimiter := interceptors.NewMethodRateLimiterInterceptor(
			rate.Limit(cfg.RateLimit.RequestsPerSecond),
			cfg.RateLimit.Burst,
		)

		for method, limit := range cfg.RateLimit.Methods {
			rateLimiter.SetMethodLimit(method, rate.Limit(limit.RequestsPerSecond), limit.Burst)
		}

		interceptorChain = append(interceptorChain,
			grpc.ChainUnaryInterceptor(rateLimiter.Interceptor()))

		l.Info("rate limiting enabled")
	}

	interceptorChain = append(interceptorChain,
		grpc.ChainUnaryInterceptor(interceptors.LoggerInterceptor(l)),
	)

	grpcServer, err := grpcutil.NewServer(
		grpcutil.ServerConfig{
			Host:            cfg.Server.Host,
			Port:            cfg.Server.Port,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		}, l, interceptorChain...,
	)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	exchangev1.RegisterExchangeServiceServer(grpcServer.GRPCServer(), exchangeService)

	// health check
	if cfg.Health.Enabled {
		healthServer := health.NewServer()
		healthServer.SetHealthy("exchange_v1.ExchangeService")
		grpc_health_v1.RegisterHealthServer(grpcServer.GRPCServer(), healthServer)
		l.Info("health check enabled")
	}

	reflection.Register(grpcServer.GRPCServer())

	l.Info("server ready to accept connections")
	if err := grpcServer.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
