package location

import (
	"context"

	"astro-chart-api/pkg/nominatim"
)

// UseCase resolves free-text city names to coordinates and a timezone.
type UseCase interface {
	// Resolve never fails: unknown or unreachable places resolve to DefaultRecord.
	Resolve(ctx context.Context, city string) Record
}

// Geocoder is the forward geocoding capability the resolver depends on.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*nominatim.Place, error)
}

// TimezoneFinder maps coordinates to an IANA zone name, "" when unknown.
type TimezoneFinder interface {
	TimezoneAt(lat, lng float64) string
}
