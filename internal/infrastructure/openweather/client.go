package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/config"
	"github.com/restaurant-discovery/internal/domain"
	"github.com/restaurant-discovery/internal/domain/repository"
	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/pkg/httpx"
)

// currentWeatherResponse - ответ эндпоинта /weather (units=metric)
type currentWeatherResponse struct {
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient создает новый клиент для OpenWeather API
func NewClient(cfg *config.WeatherConfig, logger *zap.Logger) repository.WeatherRepository {
	if cfg.APIKey == "" {
		logger.Warn("OpenWeather API key is not configured, weather requests will fail")
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Current возвращает текущую погоду в точке. No retry beyond the shared
// transport-level policy, no caching.
func (c *client) Current(ctx context.Context, lat, lng float64) (*domain.WeatherData, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrConfig.WithDetails("OpenWeather API key is not configured")
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lng))
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	reqURL := fmt.Sprintf("%s/weather?%s", c.baseURL, params.Encode())

	req, err := httpx.NewGetRequest(ctx, reqURL)
	if err != nil {
		return nil, apperrors.ErrUpstream.WithDetails(fmt.Sprintf("failed to create request: %v", err))
	}

	resp, err := httpx.Do(c.httpClient, req, httpx.DefaultRetries)
	if err != nil {
		c.logger.Error("OpenWeather request failed", zap.Error(err))
		return nil, apperrors.ErrUpstream.WithDetails(fmt.Sprintf("weather provider unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("OpenWeather returned error status",
			zap.Int("status_code", resp.StatusCode))
		return nil, apperrors.ErrUpstream.WithDetails(
			fmt.Sprintf("weather provider HTTP status %d", resp.StatusCode))
	}

	var weatherResp currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&weatherResp); err != nil {
		return nil, apperrors.ErrUpstream.WithDetails(fmt.Sprintf("failed to decode response: %v", err))
	}

	if len(weatherResp.Weather) == 0 {
		return nil, apperrors.ErrUpstream.WithDetails("weather provider returned no conditions")
	}

	return &domain.WeatherData{
		Condition:   weatherResp.Weather[0].Main,
		Temperature: int(math.Round(weatherResp.Main.Temp)),
		Humidity:    weatherResp.Main.Humidity,
		WindSpeed:   int(math.Round(weatherResp.Wind.Speed * 3.6)), // m/s -> km/h
		Icon:        weatherResp.Weather[0].Icon,
	}, nil
}
