package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/nft-ledger/internal/adapter"
	"github.com/feral-file/nft-ledger/internal/config"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/providers/jetstream"
	temporalprovider "github.com/feral-file/nft-ledger/internal/providers/temporal"
	"github.com/feral-file/nft-ledger/internal/receiver"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "resolve-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting NFT Ledger resolve worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Connect to NATS; rollback transfers emit events like any other mutation
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	})
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()
	logger.Info("Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Receiver hook client delivers the nft_on_transfer calls
	hookClient := receiver.NewClient(receiver.Config{
		Timeout:         cfg.Receiver.Timeout,
		MaxRetries:      cfg.Receiver.MaxRetries,
		ApprovePoolSize: cfg.Receiver.ApprovePoolSize,
	}, adapter.NewClock())
	defer hookClient.Close()

	ledgerService := ledger.New(dataStore, publisher, hookClient)
	executor := workflows.NewExecutor(dataStore, ledgerService, hookClient)
	workerCore := workflows.NewWorkerCore(executor)

	// Connect to Temporal
	temporalLogger := temporalprovider.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.Fatal("Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.Info("Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.ResolveTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporalprovider.NewSentryActivityInterceptor(),
			},
		})
	logger.Info("Created Temporal worker", zap.String("taskQueue", cfg.Temporal.ResolveTaskQueue))

	// Register workflows. The saga is registered by name so the API gateway
	// can start it without linking worker code.
	temporalWorker.RegisterWorkflowWithOptions(workerCore.ResolveTransfer, workflow.RegisterOptions{
		Name: workflows.ResolveTransferWorkflowName,
	})

	// Register activities
	temporalWorker.RegisterActivity(executor.CallOnTransfer)
	temporalWorker.RegisterActivity(executor.FinishResolveTransfer)
	logger.Info("Registered workflows and activities")

	// Start worker
	if err := temporalWorker.Start(); err != nil {
		logger.Fatal("Failed to start worker", zap.Error(err))
	}
	logger.Info("Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down resolve worker")
	temporalWorker.Stop()
}
