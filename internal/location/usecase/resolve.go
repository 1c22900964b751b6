package usecase

import (
	"context"

	"astro-chart-api/internal/location"
	"astro-chart-api/pkg/nominatim"
)

// Resolve maps city to a Record, consulting the fallback table, then the
// geocoder, then location.DefaultRecord. Results are memoized by the raw argument.
func (uc *implUseCase) Resolve(ctx context.Context, city string) location.Record {
	if rec, ok := uc.cache.Get(city); ok {
		return rec
	}

	rec := uc.resolve(ctx, city)
	uc.cache.Add(city, rec)
	return rec
}

func (uc *implUseCase) resolve(ctx context.Context, city string) location.Record {
	if rec, ok := uc.fallback[Normalize(city)]; ok {
		return rec
	}

	place, err := uc.geocode(ctx, city)
	if err != nil {
		uc.l.Warnf(ctx, "location.Resolve geocode %q: %v", city, err)
		return location.DefaultRecord
	}

	tz := ""
	if uc.tz != nil {
		tz = uc.tz.TimezoneAt(place.Latitude, place.Longitude)
	}
	if tz == "" {
		tz = location.FallbackTimezone
	}

	return location.Record{
		City:      FirstSegment(place.DisplayName),
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		Timezone:  tz,
	}
}

func (uc *implUseCase) geocode(ctx context.Context, city string) (*nominatim.Place, error) {
	if uc.geocoder == nil {
		return nil, location.ErrNoGeocoder
	}
	place, err := uc.geocoder.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, nominatim.ErrNoResult
	}
	return place, nil
}
