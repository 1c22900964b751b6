package nominatim

import "context"

// IGeocoder defines the interface for a forward geocoder
type IGeocoder interface {
	Geocode(ctx context.Context, query string) (*Place, error)
}
