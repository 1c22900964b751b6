package tzlookup_test

import (
	"testing"

	"astro-chart-api/pkg/tzlookup"
)

func TestTimezoneAt(t *testing.T) {
	f, err := tzlookup.New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		lat, lng float64
		want     string
	}{
		{"Tokyo", 35.6762, 139.6503, "Asia/Tokyo"},
		{"Paris", 48.8566, 2.3522, "Europe/Paris"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.TimezoneAt(tt.lat, tt.lng); got != tt.want {
				t.Errorf("expected %s, got %q", tt.want, got)
			}
		})
	}
}

func TestTimezoneAt_NilFinder(t *testing.T) {
	var f *tzlookup.Finder
	if got := f.TimezoneAt(0, 0); got != "" {
		t.Errorf("expected empty zone, got %q", got)
	}
}
