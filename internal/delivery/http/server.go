package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/config"
	"github.com/restaurant-discovery/internal/delivery/http/handler"
	"github.com/restaurant-discovery/internal/delivery/http/middleware"
	"github.com/restaurant-discovery/internal/domain/repository"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	interpretHandler *handler.InterpretHandler
	searchHandler    *handler.SearchHandler
	weatherHandler   *handler.WeatherHandler
	favoriteHandler  *handler.FavoriteHandler

	rateLimitStore repository.RateLimitRepository
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	interpretHandler *handler.InterpretHandler,
	searchHandler *handler.SearchHandler,
	weatherHandler *handler.WeatherHandler,
	favoriteHandler *handler.FavoriteHandler,
	rateLimitStore repository.RateLimitRepository,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Restaurant Discovery API",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		interpretHandler: interpretHandler,
		searchHandler:    searchHandler,
		weatherHandler:   weatherHandler,
		favoriteHandler:  favoriteHandler,
		rateLimitStore:   rateLimitStore,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check lives outside the rate-limited group.
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Every /api route passes the fixed-window limiter first.
	api := s.app.Group("/api", middleware.RateLimit(
		s.rateLimitStore,
		s.config.RateLimit.MaxRequests,
		s.logger,
	))

	api.Post("/ai/interpret", s.interpretHandler.Interpret)
	api.Post("/search", s.searchHandler.Search)

	// Both spellings exist in deployed clients.
	api.Get("/restaurants/:id", s.searchHandler.GetRestaurant)
	api.Get("/restaurant/:id", s.searchHandler.GetRestaurant)

	api.Get("/weather", s.weatherHandler.GetWeather)

	api.Get("/favorites", s.favoriteHandler.List)
	api.Post("/favorites", s.favoriteHandler.Add)
	api.Post("/favorites/toggle", s.favoriteHandler.Toggle)
	api.Delete("/favorites/:placeId", s.favoriteHandler.Remove)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - обработчик ошибок, не перехваченных хендлерами
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"success":   false,
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"requestId": nil,
		})
	}
}
