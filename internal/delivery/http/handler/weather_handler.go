package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/pkg/utils"
	"github.com/restaurant-discovery/internal/usecase"
)

// WeatherHandler - обработчик запросов погоды
type WeatherHandler struct {
	weatherUC *usecase.WeatherUseCase
	logger    *zap.Logger
}

func NewWeatherHandler(weatherUC *usecase.WeatherUseCase, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		weatherUC: weatherUC,
		logger:    logger,
	}
}

// GetWeather godoc
// @Summary Current weather at a point
// @Tags Weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} utils.SuccessResponse{data=domain.WeatherData}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/weather [get]
func (h *WeatherHandler) GetWeather(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		return utils.SendError(c, h.logger, "weather",
			apperrors.ErrValidation.WithMessage("Latitude and longitude are required"))
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return utils.SendError(c, h.logger, "weather",
			apperrors.ErrValidation.WithMessage("Latitude must be a number"))
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return utils.SendError(c, h.logger, "weather",
			apperrors.ErrValidation.WithMessage("Longitude must be a number"))
	}

	weather, err := h.weatherUC.GetWeather(c.Context(), lat, lng)
	if err != nil {
		return utils.SendError(c, h.logger, "weather", err)
	}

	return utils.SendSuccess(c, weather, nil)
}
