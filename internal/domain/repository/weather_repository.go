package repository

import (
	"context"

	"github.com/restaurant-discovery/internal/domain"
)

// WeatherRepository - доступ к внешнему провайдеру погоды
type WeatherRepository interface {
	// Current returns the current conditions at (lat, lng).
	Current(ctx context.Context, lat, lng float64) (*domain.WeatherData, error)
}
