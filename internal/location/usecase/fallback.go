package usecase

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"astro-chart-api/internal/location"
)

//go:embed cities.yaml
var citiesYAML []byte

type cityEntry struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
	TZ  string  `yaml:"tz"`
}

type cityTable struct {
	Cities map[string]cityEntry `yaml:"cities"`
}

// loadFallback parses the embedded table into records keyed by normalized name.
func loadFallback(raw []byte) (map[string]location.Record, error) {
	var table cityTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", location.ErrInvalidCities, err)
	}

	out := make(map[string]location.Record, len(table.Cities))
	for name, e := range table.Cities {
		if e.TZ == "" {
			return nil, fmt.Errorf("%w: %q has no timezone", location.ErrInvalidCities, name)
		}
		key := Normalize(name)
		out[key] = location.Record{
			City:      TitleCase(key),
			Latitude:  e.Lat,
			Longitude: e.Lng,
			Timezone:  e.TZ,
		}
	}
	return out, nil
}
