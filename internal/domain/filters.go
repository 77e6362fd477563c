package domain

// BudgetRange - диапазон ценовых уровней (0..4)
type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SearchFilters - структурированные фильтры поиска. Собираются на каждый
// запрос и никогда не сохраняются.
type SearchFilters struct {
	Query      string       `json:"query,omitempty"`
	Location   *Location    `json:"location,omitempty"`
	Radius     int          `json:"radius,omitempty"` // meters, 0..50000
	Category   string       `json:"category,omitempty"`
	Cuisine    string       `json:"cuisine,omitempty"`
	PriceLevel int          `json:"priceLevel,omitempty"`
	Rating     float64      `json:"rating,omitempty"`
	Mood       string       `json:"mood,omitempty"`
	Budget     *BudgetRange `json:"budget,omitempty"`
}

// Normalizer defaults.
const (
	DefaultRadius   = 5000
	NearbyRadius    = 2000
	FarRadius       = 10000
	DefaultCategory = "restaurant"
	DefaultMood     = "any"
	MaxRadius       = 50000
)
