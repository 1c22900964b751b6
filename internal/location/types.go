package location

// Record is a resolved place. It is a value type and is never mutated after Resolve returns it.
type Record struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Timezone  string  `json:"tz"`
}

// DefaultRecord is returned when a city can be resolved neither from the fallback table nor the geocoder.
var DefaultRecord = Record{
	City:      "New York",
	Latitude:  40.7128,
	Longitude: -74.0060,
	Timezone:  "America/New_York",
}

// FallbackTimezone is used when the geocoder finds a place but no zone contains it.
const FallbackTimezone = "UTC"
