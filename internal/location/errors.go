package location

import "errors"

var (
	ErrNoGeocoder       = errors.New("geocoder not configured")
	ErrInvalidCities    = errors.New("invalid fallback city table")
	ErrInvalidCacheSize = errors.New("cache size must be positive")
)
