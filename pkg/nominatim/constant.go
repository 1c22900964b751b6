package nominatim

import "time"

const (
	// DefaultBaseURL is the public OpenStreetMap Nominatim endpoint
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultTimeout bounds a single geocoding request
	DefaultTimeout = 10 * time.Second

	// DefaultRequestsPerSecond follows the public instance usage policy
	DefaultRequestsPerSecond = 1.0
)
