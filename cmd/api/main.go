package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/cfd-platform/cfd-backend/internal/adapter"
	"github.com/cfd-platform/cfd-backend/internal/api/middleware"
	"github.com/cfd-platform/cfd-backend/internal/api/server"
	"github.com/cfd-platform/cfd-backend/internal/api/shared/executor"
	"github.com/cfd-platform/cfd-backend/internal/block"
	"github.com/cfd-platform/cfd-backend/internal/config"
	"github.com/cfd-platform/cfd-backend/internal/dividend"
	"github.com/cfd-platform/cfd-backend/internal/ico"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/messaging"
	"github.com/cfd-platform/cfd-backend/internal/providers/ethereum"
	"github.com/cfd-platform/cfd-backend/internal/providers/jetstream"
	"github.com/cfd-platform/cfd-backend/internal/ratelimit"
	"github.com/cfd-platform/cfd-backend/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "cfd-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting CFD dividend API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Route reads to replicas when configured
	if replicaDSNs := cfg.Database.ReplicaDSNs(); len(replicaDSNs) > 0 {
		replicas := make([]gorm.Dialector, 0, len(replicaDSNs))
		for _, dsn := range replicaDSNs {
			replicas = append(replicas, postgres.Open(dsn))
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			logger.Fatal("Failed to register read replicas", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Registered read replicas", zap.Int("count", len(replicas)))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Connect to the chain
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.Fatal("Failed to dial ethereum RPC", zap.Error(err), zap.String("chain", string(cfg.Ethereum.ChainID)))
	}

	// Rate limiter shared by every RPC call, distributed when redis is configured
	var redisClient adapter.RedisClient
	if cfg.RateLimit.RedisURL != "" {
		redisClient, err = adapter.NewRedisClient(cfg.RateLimit.RedisURL)
		if err != nil {
			logger.Fatal("Failed to create redis client", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "Redis not configured, RPC rate limiting is local to this instance")
	}
	limiter, err := ratelimit.NewLimiter(cfg.RateLimit, "ethereum-rpc", redisClient, clock)
	if err != nil {
		logger.Fatal("Failed to create rate limiter", zap.Error(err))
	}
	defer func() {
		if err := limiter.Close(); err != nil {
			logger.Error(err, zap.String("component", "rate_limiter"))
		}
	}()

	blockProvider := block.NewBlockProvider(
		ethereum.NewBlockFetcher(ethClient, limiter, clock),
		block.Config{
			TTL:         cfg.Ethereum.BlockHeadTTL,
			StaleWindow: cfg.Ethereum.BlockHeadStaleWindow,
		},
		clock,
	)

	oracle := ethereum.NewTokenOracle(ethereum.Config{
		TokenAddress:         cfg.Ethereum.TokenAddress,
		Decimals:             cfg.Ethereum.TokenDecimals,
		LookbackBlocks:       cfg.Ethereum.LookbackBlocks,
		LogPageSize:          cfg.Ethereum.LogPageSize,
		CallTimeout:          cfg.Ethereum.OracleTimeout,
		MaxRetries:           3,
		RetryInitialInterval: 500 * time.Millisecond,
	}, ethClient, blockProvider, limiter)
	defer oracle.Close()
	logger.InfoCtx(ctx, "Token oracle ready",
		zap.String("chain", string(cfg.Ethereum.ChainID)),
		zap.String("token", cfg.Ethereum.TokenAddress),
	)

	// Event publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "NATS not configured, dividend events will not be published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	dividendConfig := dividend.Config{
		MinHoldingDays:       cfg.Dividend.MinHoldingDays,
		DistributionRate:     decimal.NewFromFloat(cfg.Dividend.DistributionRate),
		DefaultTotalSupply:   decimal.NewFromFloat(cfg.Dividend.DefaultTotalSupply),
		AverageTokenPrice:    decimal.NewFromFloat(cfg.Dividend.AverageTokenPrice),
		DefaultMonthlyProfit: decimal.NewFromFloat(cfg.Dividend.DefaultMonthlyProfit),
		OracleTimeout:        cfg.Ethereum.OracleTimeout,
		OracleMaxWorkers:     cfg.Ethereum.OracleMaxWorkers,
	}
	snapshots := dividend.NewSnapshotBuilder(dividendConfig, dataStore, oracle, clock)
	defer snapshots.Close()

	dividendService := dividend.NewService(dividendConfig, dataStore, oracle, snapshots, publisher, clock)
	icoService := ico.NewService(dataStore, clock)
	if err := icoService.InitializePhases(ctx); err != nil {
		logger.Fatal("Failed to initialize ICO phases", zap.Error(err))
	}

	serverConfig := server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}
	srv := server.New(serverConfig, executor.NewExecutor(dataStore, dividendService, icoService))

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(fmt.Errorf("server forced to shutdown: %w", err))
	}

	logger.Info("API server stopped")
}
