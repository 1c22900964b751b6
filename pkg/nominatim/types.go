package nominatim

import "time"

// Config configures the Nominatim client.
type Config struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Place is a single geocoding hit.
type Place struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// searchResult mirrors one element of the /search jsonv2 response.
type searchResult struct {
	PlaceID     int64  `json:"place_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
