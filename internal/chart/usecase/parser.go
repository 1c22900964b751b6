package usecase

import (
	"strings"

	"astro-chart-api/internal/chart"
)

type section int

const (
	sectionNone section = iota
	sectionPersonality
	sectionLove
	sectionCareer
	sectionFuture
	sectionLife
	sectionNumber
	sectionColor
)

// markers is checked in order; the first marker contained in a line wins.
var markers = []struct {
	marker  string
	section section
}{
	{MarkerPersonality, sectionPersonality},
	{MarkerLove, sectionLove},
	{MarkerCareer, sectionCareer},
	{MarkerFuture, sectionFuture},
	{MarkerLifePath, sectionLife},
	{MarkerLuckyNumber, sectionNumber},
	{MarkerLuckyColor, sectionColor},
}

var lineCleaner = strings.NewReplacer("SECTION_", "", ":", "")

// ParseSections splits model output into analysis fields. When ok is false the
// defaults are returned unchanged.
//
// A line containing a marker anywhere switches the current section and is not
// kept as content. Number and color keep their last non-empty line; the other
// sections accumulate lines, each followed by a single space.
func ParseSections(text string, ok bool) chart.Analysis {
	out := chart.DefaultAnalysis()
	if !ok {
		return out
	}

	current := sectionNone
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if s, found := markerIn(line); found {
			current = s
			continue
		}
		if current == sectionNone || line == "" {
			continue
		}

		clean := lineCleaner.Replace(line)
		switch current {
		case sectionNumber:
			out.Number = clean
		case sectionColor:
			out.Color = clean
		case sectionPersonality:
			out.Personality += clean + " "
		case sectionLove:
			out.Love += clean + " "
		case sectionCareer:
			out.Career += clean + " "
		case sectionFuture:
			out.Future += clean + " "
		case sectionLife:
			out.Life += clean + " "
		}
	}

	return out
}

func markerIn(line string) (section, bool) {
	for _, m := range markers {
		if strings.Contains(line, m.marker) {
			return m.section, true
		}
	}
	return sectionNone, false
}
