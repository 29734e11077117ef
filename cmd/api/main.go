package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/nft-ledger/internal/adapter"
	"github.com/feral-file/nft-ledger/internal/api/middleware"
	"github.com/feral-file/nft-ledger/internal/api/server"
	"github.com/feral-file/nft-ledger/internal/config"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/providers/jetstream"
	temporal "github.com/feral-file/nft-ledger/internal/providers/temporal"
	"github.com/feral-file/nft-ledger/internal/receiver"
	"github.com/feral-file/nft-ledger/internal/store"
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
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting NFT Ledger API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Write the contract metadata singleton on first boot
	if err := bootstrapContractMetadata(ctx, dataStore, cfg.Contract); err != nil {
		logger.FatalCtx(ctx, "Failed to bootstrap contract metadata", zap.Error(err))
	}

	// Connect to NATS for ledger event publishing
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Receiver hook client serves the fire-and-forget approval notifications
	hookClient := receiver.NewClient(receiver.Config{
		Timeout:         cfg.Receiver.Timeout,
		MaxRetries:      cfg.Receiver.MaxRetries,
		ApprovePoolSize: cfg.Receiver.ApprovePoolSize,
	}, adapter.NewClock())
	defer hookClient.Close()

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	ledgerService := ledger.New(dataStore, publisher, hookClient)

	// Create server config
	serverConfig := server.Config{
		Debug:            cfg.Debug,
		Host:             cfg.Server.Host,
		Port:             cfg.Server.Port,
		ReadTimeout:      time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:     time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:      time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ResolveTaskQueue: cfg.Temporal.ResolveTaskQueue,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, ledgerService, temporalClient)

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
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}

// bootstrapContractMetadata writes the contract metadata singleton once; a
// later boot with the record already present is a no-op
func bootstrapContractMetadata(ctx context.Context, dataStore store.Store, contract config.ContractConfig) error {
	if contract.Name == "" || contract.Symbol == "" {
		logger.Warn("Contract metadata not configured, skipping bootstrap")
		return nil
	}

	icon, baseURI, reference := contract.OptionalFields()
	err := dataStore.SetContractMetadata(ctx, &domain.ContractMetadata{
		Spec:      contract.Spec,
		Name:      contract.Name,
		Symbol:    contract.Symbol,
		Icon:      icon,
		BaseURI:   baseURI,
		Reference: reference,
	})
	if errors.Is(err, domain.ErrAlreadyInitialized) {
		return nil
	}
	return err
}
