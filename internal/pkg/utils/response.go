package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/pkg/errors"
)

// RequestIDKey is the fiber.Ctx locals key the request-id middleware
// populates. Declared here so response helpers do not depend on the
// middleware package.
const RequestIDKey = "request_id"

// SuccessResponse - стандартный конверт успешного ответа
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorResponse - стандартный конверт ошибки
type ErrorResponse struct {
	Success   bool        `json:"success"`
	Error     string      `json:"error"`
	Details   string      `json:"details,omitempty"`
	Timestamp string      `json:"timestamp"`
	RequestID interface{} `json:"requestId"`
}

// Meta - метаданные поискового ответа
type Meta struct {
	Count    int         `json:"count"`
	Radius   int         `json:"radius,omitempty"`
	Location interface{} `json:"location,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// SendError logs the full error server-side and returns the sanitized
// envelope. Raw stack traces and internal detail never reach the caller
// for 5xx-class errors.
func SendError(c *fiber.Ctx, logger *zap.Logger, endpoint string, err error) error {
	requestID, _ := c.Locals(RequestIDKey).(string)

	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}

	logger.Error("Request failed",
		zap.String("endpoint", endpoint),
		zap.String("code", appErr.Code),
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	resp := ErrorResponse{
		Success:   false,
		Error:     appErr.Message,
		Details:   appErr.Details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if requestID != "" {
		resp.RequestID = requestID
	}

	// Config errors carry server-side detail only.
	if appErr.Code == "CONFIG_ERROR" {
		resp.Details = ""
	}

	return c.Status(appErr.StatusCode).JSON(resp)
}
