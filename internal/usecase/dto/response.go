package dto

import "github.com/restaurant-discovery/internal/domain"

// InterpretResponse - результат разбора запроса
type InterpretResponse struct {
	Filters domain.SearchFilters `json:"filters"`
}

// SearchResult - результат поиска с метаданными
type SearchResult struct {
	Places   []domain.Place  `json:"places"`
	Count    int             `json:"count"`
	Radius   int             `json:"radius"`
	Location domain.Location `json:"location"`
}

// ToggleResult - исход переключения избранного
type ToggleResult struct {
	Favorited bool             `json:"favorited"`
	Favorite  *domain.Favorite `json:"favorite,omitempty"`
}
