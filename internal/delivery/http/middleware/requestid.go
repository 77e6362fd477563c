package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/restaurant-discovery/internal/pkg/utils"
)

const requestIDHeader = "X-Request-ID"

// RequestID injects an identifier for traceability when the caller did not
// provide one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(utils.RequestIDKey, rid)
		c.Set(requestIDHeader, rid)

		return c.Next()
	}
}

// RequestIDFromCtx extracts the request identifier if available.
func RequestIDFromCtx(c *fiber.Ctx) string {
	if rid, ok := c.Locals(utils.RequestIDKey).(string); ok {
		return rid
	}
	return ""
}
