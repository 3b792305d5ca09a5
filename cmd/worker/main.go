package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hotspot-microservice/internal/config"
	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/pkg/logger"
	"github.com/hotspot-microservice/internal/repository/cache"
	"github.com/hotspot-microservice/internal/repository/memory"
	"github.com/hotspot-microservice/internal/repository/postgres"
	redisRepo "github.com/hotspot-microservice/internal/repository/redis"
	"github.com/hotspot-microservice/internal/usecase"
	"github.com/hotspot-microservice/internal/worker"
	"github.com/hotspot-microservice/internal/worker/ingest"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Fix Ingest Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("stream", domain.StreamFixIngest))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	fixStore := memory.NewFixStore()
	fixArchive := postgres.NewFixRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	ingestUC := usecase.NewIngestUseCase(fixStore, fixArchive, log)

	// Прогреваем Fix Store из архива (best effort)
	now := time.Now().UTC()
	ingestUC.WarmStore(context.Background(), domain.TimeRange{
		Start: now.Add(-cfg.Engine.DefaultWindow),
		End:   now,
	})

	// 7. Initialize workers
	ingestWorker := ingest.NewFixIngestWorker(
		streamRepo,
		ingestUC,
		cfg.Worker.ConsumerGroup,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(ingestWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
