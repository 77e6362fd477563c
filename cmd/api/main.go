package main

// @title Restaurant Discovery API
// @version 1.0.0
// @description API for discovering restaurants near a location. Interprets
// @description free-text queries into structured filters, searches a places
// @description provider, annotates results with current weather and stores
// @description per-user favorites.

// @contact.name API Support

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

	_ "github.com/restaurant-discovery/docs/swagger"
	"github.com/restaurant-discovery/internal/config"
	httpDelivery "github.com/restaurant-discovery/internal/delivery/http"
	"github.com/restaurant-discovery/internal/delivery/http/handler"
	"github.com/restaurant-discovery/internal/domain/repository"
	"github.com/restaurant-discovery/internal/infrastructure/googleplaces"
	"github.com/restaurant-discovery/internal/infrastructure/openweather"
	"github.com/restaurant-discovery/internal/pkg/logger"
	"github.com/restaurant-discovery/internal/repository/cache"
	"github.com/restaurant-discovery/internal/repository/memory"
	"github.com/restaurant-discovery/internal/repository/postgres"
	"github.com/restaurant-discovery/internal/usecase"
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

	log.Info("Starting Restaurant Discovery API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("rate_limit_store", cfg.RateLimit.Store),
	)

	// 3. Connect to PostgreSQL (favorites store)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Rate limit counter store
	var rateLimitStore repository.RateLimitRepository
	var redisClient *cache.Redis
	if cfg.RateLimit.Store == "redis" {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		rateLimitStore = cache.NewRateLimitRepository(redisClient, cfg.RateLimit.Window)
	} else {
		// Single-process counters; fine for one instance, not for a fleet.
		rateLimitStore = memory.NewRateLimitRepository(cfg.RateLimit.Window)
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and gateways
	placesRepo := googleplaces.NewClient(&cfg.Places, log)
	weatherRepo := openweather.NewClient(&cfg.Weather, log)
	favoriteRepo := postgres.NewFavoriteRepository(db, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	interpretUC := usecase.NewInterpretUseCase(log)
	searchUC := usecase.NewSearchUseCase(placesRepo, weatherRepo, log)
	weatherUC := usecase.NewWeatherUseCase(weatherRepo, log)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	interpretHandler := handler.NewInterpretHandler(interpretUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	weatherHandler := handler.NewWeatherHandler(weatherUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		interpretHandler,
		searchHandler,
		weatherHandler,
		favoriteHandler,
		rateLimitStore,
	)

	log.Info("HTTP server initialized")

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
