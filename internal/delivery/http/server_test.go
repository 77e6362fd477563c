package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restaurant-discovery/internal/config"
	httpDelivery "github.com/restaurant-discovery/internal/delivery/http"
	"github.com/restaurant-discovery/internal/delivery/http/handler"
	"github.com/restaurant-discovery/internal/domain"
	"github.com/restaurant-discovery/internal/repository/memory"
	"github.com/restaurant-discovery/internal/usecase"
)

// Stub gateways keep the end-to-end tests offline.

type stubPlacesRepo struct {
	places []domain.Place
	err    error
}

func (s *stubPlacesRepo) Search(_ context.Context, _, _ float64, _ int, _ string) ([]domain.Place, error) {
	return s.places, s.err
}

func (s *stubPlacesRepo) GetDetails(_ context.Context, placeID string) (*domain.Place, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.places {
		if p.ID == placeID {
			return &p, nil
		}
	}
	return &domain.Place{ID: placeID}, nil
}

type stubWeatherRepo struct {
	weather *domain.WeatherData
	err     error
}

func (s *stubWeatherRepo) Current(_ context.Context, _, _ float64) (*domain.WeatherData, error) {
	return s.weather, s.err
}

type stubFavoriteRepo struct {
	favorites map[string]domain.Favorite // keyed by userID+placeID
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{favorites: make(map[string]domain.Favorite)}
}

func (s *stubFavoriteRepo) List(_ context.Context, userID string) ([]domain.Favorite, error) {
	result := []domain.Favorite{}
	for _, f := range s.favorites {
		if f.UserID == userID {
			result = append(result, f)
		}
	}
	return result, nil
}

func (s *stubFavoriteRepo) Add(_ context.Context, userID string, place domain.Place) (*domain.Favorite, error) {
	key := userID + "/" + place.ID
	f := domain.Favorite{ID: key, UserID: userID, PlaceID: place.ID, PlaceData: place, CreatedAt: time.Now()}
	s.favorites[key] = f
	return &f, nil
}

func (s *stubFavoriteRepo) Remove(_ context.Context, userID, placeID string) error {
	delete(s.favorites, userID+"/"+placeID)
	return nil
}

func (s *stubFavoriteRepo) Toggle(_ context.Context, userID string, place domain.Place) (*domain.Favorite, error) {
	key := userID + "/" + place.ID
	if _, ok := s.favorites[key]; ok {
		delete(s.favorites, key)
		return nil, nil
	}
	return s.Add(context.Background(), userID, place)
}

func newTestServer(placesRepo *stubPlacesRepo, weatherRepo *stubWeatherRepo, maxRequests int) *httpDelivery.Server {
	log := zap.NewNop()
	cfg := &config.Config{
		RateLimit: config.RateLimitConfig{
			MaxRequests: maxRequests,
			Window:      time.Minute,
			Store:       "memory",
		},
	}

	interpretUC := usecase.NewInterpretUseCase(log)
	searchUC := usecase.NewSearchUseCase(placesRepo, weatherRepo, log)
	weatherUC := usecase.NewWeatherUseCase(weatherRepo, log)
	favoriteUC := usecase.NewFavoriteUseCase(newStubFavoriteRepo(), log)

	return httpDelivery.NewServer(
		cfg,
		log,
		handler.NewInterpretHandler(interpretUC, log),
		handler.NewSearchHandler(searchUC, log),
		handler.NewWeatherHandler(weatherUC, log),
		handler.NewFavoriteHandler(favoriteUC, log),
		memory.NewRateLimitRepository(cfg.RateLimit.Window),
	)
}

func defaultWeather() *stubWeatherRepo {
	return &stubWeatherRepo{weather: &domain.WeatherData{
		Condition: "Clouds", Temperature: 18, Humidity: 60, WindSpeed: 11, Icon: "03d",
	}}
}

func decodeBody(t *testing.T, resp *nethttp.Response) map[string]interface{} {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed))
	return parsed
}

func TestServer_Search(t *testing.T) {
	places := &stubPlacesRepo{places: []domain.Place{
		{ID: "p1", Name: "Trattoria"},
		{ID: "p2", Name: "Osteria"},
	}}
	server := newTestServer(places, defaultWeather(), 60)

	t.Run("returns places with weather and meta", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodPost, "/api/search",
			bytes.NewBufferString(`{"location": {"lat": 55.75, "lng": 37.61}, "radius": 2000}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

		parsed := decodeBody(t, resp)
		assert.Equal(t, true, parsed["success"])

		data := parsed["data"].([]interface{})
		require.Len(t, data, 2)
		for _, item := range data {
			place := item.(map[string]interface{})
			weather, ok := place["weather"].(map[string]interface{})
			require.True(t, ok, "every place carries a weather block")
			assert.Equal(t, "Clouds", weather["condition"])
		}

		meta := parsed["meta"].(map[string]interface{})
		assert.Equal(t, float64(2), meta["count"])
		assert.Equal(t, float64(2000), meta["radius"])
	})

	t.Run("invalid coordinates return 400 envelope", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodPost, "/api/search",
			bytes.NewBufferString(`{"location": {"lat": 91, "lng": 0}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

		parsed := decodeBody(t, resp)
		assert.Equal(t, false, parsed["success"])
		assert.Contains(t, parsed["error"], "latitude")
		assert.NotEmpty(t, parsed["timestamp"])
		assert.NotEmpty(t, parsed["requestId"])
	})
}

func TestServer_Interpret(t *testing.T) {
	server := newTestServer(&stubPlacesRepo{}, defaultWeather(), 60)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/ai/interpret",
		bytes.NewBufferString(`{"query": "cheap italian nearby"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	parsed := decodeBody(t, resp)
	assert.Equal(t, true, parsed["success"])

	filters := parsed["filters"].(map[string]interface{})
	assert.Equal(t, "italian", filters["cuisine"])
	assert.Equal(t, float64(2000), filters["radius"])

	budget := filters["budget"].(map[string]interface{})
	assert.Equal(t, float64(0), budget["min"])
	assert.Equal(t, float64(2), budget["max"])
}

func TestServer_RateLimit(t *testing.T) {
	server := newTestServer(&stubPlacesRepo{}, defaultWeather(), 3)

	doGet := func(path string) *nethttp.Response {
		req := httptest.NewRequest(nethttp.MethodGet, path, nil)
		resp, err := server.App().Test(req)
		require.NoError(t, err)
		return resp
	}

	for i := 0; i < 3; i++ {
		resp := doGet("/api/weather?lat=55.75&lng=37.61")
		assert.NotEqual(t, nethttp.StatusTooManyRequests, resp.StatusCode, "request %d within the limit", i+1)
	}

	resp := doGet("/api/weather?lat=55.75&lng=37.61")
	assert.Equal(t, nethttp.StatusTooManyRequests, resp.StatusCode)

	parsed := decodeBody(t, resp)
	assert.Equal(t, false, parsed["success"])
	assert.Equal(t, "Rate limit exceeded", parsed["error"])
	assert.NotEmpty(t, parsed["timestamp"])

	// Health stays reachable for probes even when the client is limited.
	resp = doGet("/health")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestServer_RequestID(t *testing.T) {
	server := newTestServer(&stubPlacesRepo{}, defaultWeather(), 60)

	t.Run("client-provided id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-42")

		resp, err := server.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, "req-42", resp.Header.Get("X-Request-ID"))
	})

	t.Run("id is generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)

		resp, err := server.App().Test(req)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})
}

func TestServer_Favorites(t *testing.T) {
	server := newTestServer(&stubPlacesRepo{}, defaultWeather(), 60)

	toggle := func(userID string) map[string]interface{} {
		req := httptest.NewRequest(nethttp.MethodPost, "/api/favorites/toggle",
			bytes.NewBufferString(`{"place": {"id": "p1", "name": "Trattoria"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID)

		resp, err := server.App().Test(req)
		require.NoError(t, err)
		require.Equal(t, nethttp.StatusOK, resp.StatusCode)
		return decodeBody(t, resp)
	}

	t.Run("toggle flips membership", func(t *testing.T) {
		first := toggle("user-1")
		data := first["data"].(map[string]interface{})
		assert.Equal(t, true, data["favorited"])

		second := toggle("user-1")
		data = second["data"].(map[string]interface{})
		assert.Equal(t, false, data["favorited"])
	})

	t.Run("missing user header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodGet, "/api/favorites", nil)

		resp, err := server.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	})

	t.Run("add then list then remove", func(t *testing.T) {
		addReq := httptest.NewRequest(nethttp.MethodPost, "/api/favorites",
			bytes.NewBufferString(`{"place": {"id": "p9", "name": "Bistro"}}`))
		addReq.Header.Set("Content-Type", "application/json")
		addReq.Header.Set("X-User-ID", "user-2")

		resp, err := server.App().Test(addReq)
		require.NoError(t, err)
		require.Equal(t, nethttp.StatusOK, resp.StatusCode)

		listReq := httptest.NewRequest(nethttp.MethodGet, "/api/favorites", nil)
		listReq.Header.Set("X-User-ID", "user-2")

		resp, err = server.App().Test(listReq)
		require.NoError(t, err)
		parsed := decodeBody(t, resp)
		assert.Len(t, parsed["data"].([]interface{}), 1)

		delReq := httptest.NewRequest(nethttp.MethodDelete, "/api/favorites/p9", nil)
		delReq.Header.Set("X-User-ID", "user-2")

		resp, err = server.App().Test(delReq)
		require.NoError(t, err)
		require.Equal(t, nethttp.StatusOK, resp.StatusCode)

		listReq = httptest.NewRequest(nethttp.MethodGet, "/api/favorites", nil)
		listReq.Header.Set("X-User-ID", "user-2")
		resp, err = server.App().Test(listReq)
		require.NoError(t, err)
		parsed = decodeBody(t, resp)
		assert.Len(t, parsed["data"].([]interface{}), 0)
	})
}

func TestServer_GetRestaurant(t *testing.T) {
	places := &stubPlacesRepo{places: []domain.Place{{ID: "p1", Name: "Trattoria"}}}
	server := newTestServer(places, defaultWeather(), 60)

	// Both route spellings resolve to the same handler.
	for _, path := range []string{"/api/restaurants/p1", "/api/restaurant/p1"} {
		req := httptest.NewRequest(nethttp.MethodGet, path, nil)
		resp, err := server.App().Test(req)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode, fmt.Sprintf("path %s", path))

		parsed := decodeBody(t, resp)
		data := parsed["data"].(map[string]interface{})
		assert.Equal(t, "Trattoria", data["name"])
	}
}
