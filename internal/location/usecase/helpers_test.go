package usecase

import (
	"errors"
	"testing"

	"astro-chart-api/internal/location"
)

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"new york": "New York",
		"delhi":    "Delhi",
		"":         "",
	}
	for in, want := range tests {
		if got := TitleCase(in); got != want {
			t.Errorf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFirstSegment(t *testing.T) {
	tests := map[string]string{
		"Paris, Île-de-France, France": "Paris",
		"  Lima ":                      "Lima",
		"":                             "",
		"City of London, London":       "City of London",
	}
	for in, want := range tests {
		if got := FirstSegment(in); got != want {
			t.Errorf("FirstSegment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadFallback(t *testing.T) {
	table, err := loadFallback(citiesYAML)
	if err != nil {
		t.Fatalf("loadFallback: %v", err)
	}
	if len(table) != 5 {
		t.Errorf("expected 5 cities, got %d", len(table))
	}

	_, err = loadFallback([]byte("cities:\n  nowhere:\n    lat: 1\n    lng: 2\n"))
	if !errors.Is(err, location.ErrInvalidCities) {
		t.Errorf("expected ErrInvalidCities for missing tz, got %v", err)
	}

	_, err = loadFallback([]byte("cities: [unclosed"))
	if !errors.Is(err, location.ErrInvalidCities) {
		t.Errorf("expected ErrInvalidCities for bad yaml, got %v", err)
	}
}
