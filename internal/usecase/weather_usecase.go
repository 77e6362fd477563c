package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/domain"
	"github.com/restaurant-discovery/internal/domain/repository"
	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/pkg/utils"
)

// WeatherUseCase - текущая погода по координатам
type WeatherUseCase struct {
	weatherRepo repository.WeatherRepository
	logger      *zap.Logger
}

func NewWeatherUseCase(weatherRepo repository.WeatherRepository, logger *zap.Logger) *WeatherUseCase {
	return &WeatherUseCase{
		weatherRepo: weatherRepo,
		logger:      logger,
	}
}

func (uc *WeatherUseCase) GetWeather(ctx context.Context, lat, lng float64) (*domain.WeatherData, error) {
	if !utils.ValidateCoordinates(lat, lng) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	weather, err := uc.weatherRepo.Current(ctx, lat, lng)
	if err != nil {
		uc.logger.Error("Weather fetch failed",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		return nil, err
	}

	return weather, nil
}
