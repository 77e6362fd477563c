package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/pkg/utils"
	"github.com/restaurant-discovery/internal/pkg/validator"
	"github.com/restaurant-discovery/internal/usecase"
	"github.com/restaurant-discovery/internal/usecase/dto"
)

// InterpretHandler - обработчик разбора текстовых запросов
type InterpretHandler struct {
	interpretUC *usecase.InterpretUseCase
	logger      *zap.Logger
}

func NewInterpretHandler(interpretUC *usecase.InterpretUseCase, logger *zap.Logger) *InterpretHandler {
	return &InterpretHandler{
		interpretUC: interpretUC,
		logger:      logger,
	}
}

// Interpret godoc
// @Summary Interpret a free-text query into search filters
// @Description Maps keywords in the query (cheap/expensive, cuisine names, nearby/far) onto a structured filter object
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.InterpretRequest true "Query to interpret"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/ai/interpret [post]
func (h *InterpretHandler) Interpret(c *fiber.Ctx) error {
	var req dto.InterpretRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, h.logger, "ai/interpret",
			apperrors.ErrValidation.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, h.logger, "ai/interpret", err)
	}

	result, err := h.interpretUC.Interpret(req)
	if err != nil {
		return utils.SendError(c, h.logger, "ai/interpret", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"filters": result.Filters,
	})
}
