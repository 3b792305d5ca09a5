package main

// @title Hotspot Microservice API
// @version 1.0.0
// @description Микросервис детекции горячих точек нелегального рыболовства. Кластеризует позиции судов (AIS и спутниковые детекции) и ранжирует кластеры по риску нелегальной активности.
// @description
// @description Основные возможности:
// @description - Ингест батчей позиций судов (HTTP и Redis Streams)
// @description - Кластеризация позиций в пределах настраиваемого радиуса
// @description - Risk scoring кластеров по доле неотслеживаемых судов
// @description - Ранжированные хотспоты, фильтрация по региону и зонам мониторинга

// @contact.name API Support
// @contact.email support@hotspot-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/hotspot-microservice/docs/swagger"
	"github.com/hotspot-microservice/internal/config"
	httpDelivery "github.com/hotspot-microservice/internal/delivery/http"
	"github.com/hotspot-microservice/internal/delivery/http/handler"
	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/engine"
	"github.com/hotspot-microservice/internal/pkg/logger"
	"github.com/hotspot-microservice/internal/repository/cache"
	"github.com/hotspot-microservice/internal/repository/memory"
	"github.com/hotspot-microservice/internal/repository/postgres"
	"github.com/hotspot-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Hotspot Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	fixStore := memory.NewFixStore()
	fixArchive := postgres.NewFixRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize engine and use cases
	eng := engine.New(engine.Config{
		DensityNormalizer:    cfg.Engine.DensityNormalizer,
		MixedIsolationFactor: cfg.Engine.MixedIsolationFactor,
	})

	ingestUC := usecase.NewIngestUseCase(fixStore, fixArchive, log)
	hotspotUC := usecase.NewHotspotUseCase(
		fixStore,
		fixArchive,
		cacheRepo,
		eng,
		cfg.Engine,
		cfg.Cache.StatsCacheTTL,
		log,
	)

	// Прогреваем Fix Store из архива (best effort)
	now := time.Now().UTC()
	ingestUC.WarmStore(context.Background(), domain.TimeRange{
		Start: now.Add(-cfg.Engine.DefaultWindow),
		End:   now,
	})

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	fixHandler := handler.NewFixHandler(ingestUC, log)
	hotspotHandler := handler.NewHotspotHandler(hotspotUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, fixHandler, hotspotHandler)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
