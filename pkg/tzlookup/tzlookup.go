// Package tzlookup maps coordinates to IANA timezone identifiers offline.
package tzlookup

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

// IFinder defines the interface for a coordinate to timezone lookup
type IFinder interface {
	TimezoneAt(lat, lng float64) string
}

// Finder wraps the tzf polygon finder.
type Finder struct {
	f tzf.F
}

// New loads the embedded timezone polygons. Loading takes a moment; build once at startup.
func New() (*Finder, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone data: %w", err)
	}
	return &Finder{f: f}, nil
}

// TimezoneAt returns the IANA zone containing the point, or "" when none does.
func (f *Finder) TimezoneAt(lat, lng float64) string {
	if f == nil || f.f == nil {
		return ""
	}
	return f.f.GetTimezoneName(lng, lat)
}
