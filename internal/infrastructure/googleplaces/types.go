package googleplaces

// Provider wire types for the Places nearby-search and details endpoints.

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type nearbySearchResponse struct {
	Results []placeResult `json:"results"`
	Status  string        `json:"status"`
}

type detailsResponse struct {
	Result placeDetails `json:"result"`
	Status string       `json:"status"`
}

type placeResult struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Geometry geometry `json:"geometry"`
	Types    []string `json:"types"`
	Vicinity string   `json:"vicinity"`
}

type placeDetails struct {
	PlaceID                  string   `json:"place_id"`
	Name                     string   `json:"name"`
	FormattedAddress         string   `json:"formatted_address"`
	Geometry                 geometry `json:"geometry"`
	PriceLevel               int      `json:"price_level"`
	Rating                   float64  `json:"rating"`
	Types                    []string `json:"types"`
	Photos                   []photo  `json:"photos"`
	Website                  string   `json:"website"`
	URL                      string   `json:"url"` // Google Maps page
	FormattedPhoneNumber     string   `json:"formatted_phone_number"`
	InternationalPhoneNumber string   `json:"international_phone_number"`
	Reviews                  []review `json:"reviews"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
}

type review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}
