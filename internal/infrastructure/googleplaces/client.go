package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/config"
	"github.com/restaurant-discovery/internal/domain"
	"github.com/restaurant-discovery/internal/domain/repository"
	apperrors "github.com/restaurant-discovery/internal/pkg/errors"
	"github.com/restaurant-discovery/internal/pkg/httpx"
)

const detailsFields = "name,formatted_address,geometry,price_level,rating,types," +
	"photos,opening_hours,website,url,formatted_phone_number,international_phone_number,reviews"

type client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	detailsWorkers int
	photoMaxWidth  int
	logger         *zap.Logger
}

// NewClient создает новый клиент для Google Places API.
// A missing key is logged once here; every call then fails with a config
// error instead of reaching the provider.
func NewClient(cfg *config.PlacesConfig, logger *zap.Logger) repository.PlacesRepository {
	if cfg.APIKey == "" {
		logger.Warn("Google Places API key is not configured, search requests will fail")
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		detailsWorkers: cfg.DetailsWorkers,
		photoMaxWidth:  cfg.PhotoMaxWidth,
		logger:         logger,
	}
}

// Search выполняет nearby search и обогащает каждый результат деталями.
// Detail calls run concurrently; individual failures are dropped from the
// output and logged. Provider order is preserved.
func (c *client) Search(ctx context.Context, lat, lng float64, radius int, keyword string) ([]domain.Place, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrConfig.WithDetails("Google Places API key is not configured")
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radius))
	params.Set("type", "restaurant")
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	params.Set("key", c.apiKey)

	searchURL := fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Places nearby search",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.Int("radius", radius),
		zap.String("keyword", keyword))

	var searchResp nearbySearchResponse
	if err := c.getJSON(ctx, searchURL, &searchResp); err != nil {
		return nil, err
	}

	if searchResp.Status == statusZeroResults {
		return []domain.Place{}, nil
	}
	if searchResp.Status != statusOK {
		c.logger.Error("Places nearby search returned non-OK status",
			zap.String("status", searchResp.Status))
		return nil, apperrors.ErrUpstream.WithDetails(
			fmt.Sprintf("places provider status: %s", searchResp.Status))
	}

	places := c.fetchDetailsBatch(ctx, searchResp.Results)

	c.logger.Debug("Places search completed",
		zap.Int("found", len(searchResp.Results)),
		zap.Int("returned", len(places)))

	return places, nil
}

// GetDetails возвращает одно место по идентификатору провайдера.
func (c *client) GetDetails(ctx context.Context, placeID string) (*domain.Place, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrConfig.WithDetails("Google Places API key is not configured")
	}

	var resp detailsResponse
	if err := c.getJSON(ctx, c.detailsURL(placeID), &resp); err != nil {
		return nil, err
	}

	if resp.Status != statusOK {
		if resp.Status == statusZeroResults || resp.Status == "NOT_FOUND" {
			return nil, apperrors.ErrNotFound.WithMessage("Restaurant not found")
		}
		c.logger.Error("Places details returned non-OK status",
			zap.String("place_id", placeID),
			zap.String("status", resp.Status))
		return nil, apperrors.ErrUpstream.WithDetails(
			fmt.Sprintf("places provider status: %s", resp.Status))
	}

	place := c.mapPlace(resp.Result)
	return &place, nil
}

// fetchDetailsBatch issues one details call per search result through a
// bounded worker pool. Failed items become nil slots and are compacted out,
// keeping the surviving places in provider order.
func (c *client) fetchDetailsBatch(ctx context.Context, results []placeResult) []domain.Place {
	slots := make([]*domain.Place, len(results))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.detailsWorkers)

	for i, result := range results {
		wg.Add(1)
		go func(i int, placeID string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			var resp detailsResponse
			if err := c.getJSON(ctx, c.detailsURL(placeID), &resp); err != nil {
				c.logger.Warn("Dropping place: details request failed",
					zap.String("place_id", placeID),
					zap.Error(err))
				return
			}
			if resp.Status != statusOK {
				c.logger.Warn("Dropping place: details returned non-OK status",
					zap.String("place_id", placeID),
					zap.String("status", resp.Status))
				return
			}

			place := c.mapPlace(resp.Result)
			slots[i] = &place
		}(i, result.PlaceID)
	}

	wg.Wait()

	places := make([]domain.Place, 0, len(slots))
	for _, p := range slots {
		if p != nil {
			places = append(places, *p)
		}
	}
	return places
}

func (c *client) detailsURL(placeID string) string {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)
	params.Set("key", c.apiKey)
	return fmt.Sprintf("%s/details/json?%s", c.baseURL, params.Encode())
}

// mapPlace преобразует ответ провайдера в доменную модель
func (c *client) mapPlace(d placeDetails) domain.Place {
	photos := []string{}
	if len(d.Photos) > 0 {
		photos = append(photos, fmt.Sprintf(
			"%s/photo?maxwidth=%d&photo_reference=%s&key=%s",
			c.baseURL, c.photoMaxWidth, d.Photos[0].PhotoReference, c.apiKey,
		))
	}

	return domain.Place{
		ID:          d.PlaceID,
		Name:        d.Name,
		Description: strings.Join(d.Types, ", "),
		Address:     d.FormattedAddress,
		Location: domain.Location{
			Lat: d.Geometry.Location.Lat,
			Lng: d.Geometry.Location.Lng,
		},
		Category:   domain.DefaultCategory,
		PriceLevel: d.PriceLevel,
		Rating:     d.Rating,
		Photos:     photos,
		MenuURL:    d.Website,
		// No upstream signal exists for online delivery.
		HasOnlineDelivery: false,
		HasTableBooking:   d.URL != "",
	}
}

// getJSON executes a GET with the shared retry policy and decodes the body.
func (c *client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := httpx.NewGetRequest(ctx, rawURL)
	if err != nil {
		return apperrors.ErrUpstream.WithDetails(fmt.Sprintf("failed to create request: %v", err))
	}

	resp, err := httpx.Do(c.httpClient, req, httpx.DefaultRetries)
	if err != nil {
		return apperrors.ErrUpstream.WithDetails(fmt.Sprintf("places provider unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.ErrUpstream.WithDetails(
			fmt.Sprintf("places provider HTTP status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.ErrUpstream.WithDetails(fmt.Sprintf("failed to decode response: %v", err))
	}

	return nil
}
