package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/domain"
	"github.com/restaurant-discovery/internal/domain/repository"
	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/pkg/utils"
	"github.com/restaurant-discovery/internal/usecase/dto"
)

// SearchUseCase - оркестрация поиска: валидация, внешний поиск мест,
// погодная аннотация.
type SearchUseCase struct {
	placesRepo  repository.PlacesRepository
	weatherRepo repository.WeatherRepository
	logger      *zap.Logger
}

func NewSearchUseCase(
	placesRepo repository.PlacesRepository,
	weatherRepo repository.WeatherRepository,
	logger *zap.Logger,
) *SearchUseCase {
	return &SearchUseCase{
		placesRepo:  placesRepo,
		weatherRepo: weatherRepo,
		logger:      logger,
	}
}

// ValidateFilters - fail-fast проверка фильтров; первая нарушенная проверка
// останавливает остальные.
func ValidateFilters(req *dto.SearchRequest) error {
	if req == nil {
		return apperrors.ErrValidation.WithMessage("Search filters are required")
	}
	if req.Location == nil {
		return apperrors.ErrValidation.WithMessage("Location coordinates are required")
	}
	if !utils.ValidLatitude(req.Location.Lat) {
		return apperrors.ErrValidation.WithMessage("Invalid latitude: must be between -90 and 90")
	}
	if !utils.ValidLongitude(req.Location.Lng) {
		return apperrors.ErrValidation.WithMessage("Invalid longitude: must be between -180 and 180")
	}
	if req.Radius != nil && !utils.ValidateRadius(*req.Radius) {
		return apperrors.ErrInvalidRadius
	}
	return nil
}

// ExecuteSearch - выполняет поиск ресторанов.
// One weather reading per request is attached to every place in the batch:
// results share roughly the same location, so per-place calls would be
// waste. When the reading fails the static placeholder is attached instead,
// so the weather field is never null.
func (uc *SearchUseCase) ExecuteSearch(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResult, error) {
	if err := ValidateFilters(req); err != nil {
		return nil, err
	}

	radius := domain.DefaultRadius
	if req.Radius != nil {
		radius = *req.Radius
	}

	// Cuisine narrows the provider query only for restaurant searches.
	cuisine := ""
	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	if category == domain.DefaultCategory {
		cuisine = req.Cuisine
	}

	places, err := uc.placesRepo.Search(ctx, req.Location.Lat, req.Location.Lng, radius, cuisine)
	if err != nil {
		uc.logger.Error("Places search failed",
			zap.Float64("lat", req.Location.Lat),
			zap.Float64("lng", req.Location.Lng),
			zap.Error(err))
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.ErrUpstream.WithDetails(err.Error())
	}

	weather := uc.batchWeather(ctx, req.Location.Lat, req.Location.Lng)
	for i := range places {
		w := *weather
		places[i].Weather = &w
	}

	return &dto.SearchResult{
		Places:   places,
		Count:    len(places),
		Radius:   radius,
		Location: *req.Location,
	}, nil
}

// batchWeather fetches one reading for the whole batch, falling back to the
// placeholder on any failure.
func (uc *SearchUseCase) batchWeather(ctx context.Context, lat, lng float64) *domain.WeatherData {
	weather, err := uc.weatherRepo.Current(ctx, lat, lng)
	if err != nil {
		uc.logger.Warn("Weather annotation unavailable, using placeholder",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		return domain.PlaceholderWeather()
	}
	return weather
}

// GetPlaceDetails - детали одного ресторана по идентификатору провайдера
func (uc *SearchUseCase) GetPlaceDetails(ctx context.Context, placeID string) (*domain.Place, error) {
	if placeID == "" {
		return nil, apperrors.ErrValidation.WithMessage("Restaurant id is required")
	}

	place, err := uc.placesRepo.GetDetails(ctx, placeID)
	if err != nil {
		uc.logger.Error("Place details fetch failed",
			zap.String("place_id", placeID),
			zap.Error(err))
		return nil, err
	}

	return place, nil
}
