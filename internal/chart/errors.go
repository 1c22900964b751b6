package chart

import "errors"

var (
	ErrInvalidDate     = errors.New("invalid birth date")
	ErrInvalidTime     = errors.New("invalid birth time")
	ErrInvalidTimezone = errors.New("invalid timezone")
)
