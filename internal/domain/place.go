package domain

// Location - координаты точки
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place - ресторан в том виде, в котором его отдаёт API.
// Identity is the upstream place identifier; records are rebuilt fresh on
// every search and never merged across calls.
type Place struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Address           string       `json:"address"`
	Location          Location     `json:"location"`
	Category          string       `json:"category"`
	PriceLevel        int          `json:"priceLevel"`
	Rating            float64      `json:"rating"`
	Photos            []string     `json:"photos"`
	MenuURL           string       `json:"menuUrl,omitempty"`
	HasOnlineDelivery bool         `json:"hasOnlineDelivery"`
	HasTableBooking   bool         `json:"hasTableBooking"`
	Weather           *WeatherData `json:"weather,omitempty"`
}

// WeatherData - погодная аннотация, производная от ответа провайдера
type WeatherData struct {
	Condition   string `json:"condition"`
	Temperature int    `json:"temperature"` // °C
	Humidity    int    `json:"humidity"`    // 0..100
	WindSpeed   int    `json:"windSpeed"`   // km/h
	Icon        string `json:"icon"`
}

// PlaceholderWeather returns the static annotation attached when no live
// weather reading is available for a batch.
func PlaceholderWeather() *WeatherData {
	return &WeatherData{
		Condition:   "Clear",
		Temperature: 20,
		Humidity:    50,
		WindSpeed:   10,
		Icon:        "01d",
	}
}
