package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"astro-chart-api/internal/location"
	pkgLog "astro-chart-api/pkg/log"
)

// DefaultCacheSize bounds the number of distinct city arguments kept in memory.
const DefaultCacheSize = 100

type implUseCase struct {
	l        pkgLog.Logger
	geocoder location.Geocoder
	tz       location.TimezoneFinder
	fallback map[string]location.Record
	cache    *lru.Cache[string, location.Record]
}

// New creates a location resolver. geocoder and tz may be nil, in which case
// anything outside the fallback table resolves to location.DefaultRecord.
func New(l pkgLog.Logger, geocoder location.Geocoder, tz location.TimezoneFinder, cacheSize int) (location.UseCase, error) {
	if cacheSize <= 0 {
		return nil, location.ErrInvalidCacheSize
	}

	fallback, err := loadFallback(citiesYAML)
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[string, location.Record](cacheSize)
	if err != nil {
		return nil, err
	}

	return &implUseCase{
		l:        l,
		geocoder: geocoder,
		tz:       tz,
		fallback: fallback,
		cache:    cache,
	}, nil
}
