package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lower-cases and trims a city name for table lookups.
func Normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// TitleCase upper-cases the first letter of every word, e.g. "new york" -> "New York".
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// FirstSegment returns the first comma separated part of a formatted address.
func FirstSegment(address string) string {
	first, _, _ := strings.Cut(address, ",")
	return strings.TrimSpace(first)
}
