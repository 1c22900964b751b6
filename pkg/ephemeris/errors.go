package ephemeris

import "errors"

var (
	ErrUnknownBody = errors.New("unknown body")
	ErrLatitude    = errors.New("latitude out of range")
)
