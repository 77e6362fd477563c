package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/domain/repository"
)

// RateLimit gates requests per client IP against a fixed-window counter.
// The store decides the scope: in-memory for a single process, redis when
// counters must be shared between instances. Fails open if the store
// errors, so a counter outage cannot take the API down.
func RateLimit(store repository.RateLimitRepository, maxRequests int, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := store.Hit(c.Context(), c.IP())
		if err != nil {
			logger.Warn("Rate limit store unavailable, allowing request",
				zap.String("ip", c.IP()),
				zap.Error(err))
			return c.Next()
		}

		if count > maxRequests {
			logger.Info("Rate limit exceeded",
				zap.String("ip", c.IP()),
				zap.Int("count", count))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":   false,
				"error":     "Rate limit exceeded",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"requestId": RequestIDFromCtx(c),
			})
		}

		return c.Next()
	}
}
