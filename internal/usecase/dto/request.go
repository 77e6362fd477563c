package dto

import "github.com/restaurant-discovery/internal/domain"

// InterpretRequest - запрос на разбор текстового запроса в фильтры
type InterpretRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// SearchRequest - запрос поиска ресторанов; форма SearchFilters.
// Coordinate and radius range checks are done fail-fast in the use case so
// each violation carries its own message.
type SearchRequest struct {
	Query      string              `json:"query,omitempty"`
	Location   *domain.Location    `json:"location,omitempty"`
	Radius     *int                `json:"radius,omitempty"`
	Category   string              `json:"category,omitempty"`
	Cuisine    string              `json:"cuisine,omitempty"`
	PriceLevel int                 `json:"priceLevel,omitempty"`
	Rating     float64             `json:"rating,omitempty"`
	Mood       string              `json:"mood,omitempty"`
	Budget     *domain.BudgetRange `json:"budget,omitempty"`
}

// WeatherRequest - параметры запроса текущей погоды
type WeatherRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FavoriteRequest - тело запроса добавления/переключения избранного
type FavoriteRequest struct {
	Place domain.Place `json:"place"`
}
