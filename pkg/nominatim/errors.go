package nominatim

import "errors"

var (
	// ErrNoResult indicates the provider found nothing for the query
	ErrNoResult = errors.New("no geocoding result")

	// ErrEmptyQuery indicates a blank query string
	ErrEmptyQuery = errors.New("empty geocoding query")
)
