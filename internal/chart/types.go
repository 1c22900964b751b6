package chart

import (
	"time"

	"astro-chart-api/internal/location"
	"astro-chart-api/pkg/ephemeris"
)

// --- UseCase Inputs ---

// GenerateInput is a birth record. Month is 1-based, Hour is 0-23 local time at City.
type GenerateInput struct {
	Name   string
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	City   string
}

// --- Domain Models ---

// Subject is a chart cast for one moment at one place.
type Subject struct {
	Name     string
	Moment   time.Time
	Location location.Record
	Chart    ephemeris.Chart
}

func (s Subject) sign(b ephemeris.Body) ephemeris.Sign {
	return s.Chart.Point(b).Sign
}

func (s Subject) Sun() ephemeris.Sign     { return s.sign(ephemeris.Sun) }
func (s Subject) Moon() ephemeris.Sign    { return s.sign(ephemeris.Moon) }
func (s Subject) Rising() ephemeris.Sign  { return s.sign(ephemeris.Ascendant) }
func (s Subject) Venus() ephemeris.Sign   { return s.sign(ephemeris.Venus) }
func (s Subject) Mars() ephemeris.Sign    { return s.sign(ephemeris.Mars) }
func (s Subject) Jupiter() ephemeris.Sign { return s.sign(ephemeris.Jupiter) }
func (s Subject) Saturn() ephemeris.Sign  { return s.sign(ephemeris.Saturn) }

// Analysis holds the narrative sections returned to clients.
type Analysis struct {
	Personality string `json:"personality"`
	Love        string `json:"love"`
	Career      string `json:"career"`
	Future      string `json:"future"`
	Life        string `json:"life"`
	Number      string `json:"number"`
	Color       string `json:"color"`
}

const (
	DefaultLuckyNumber = "7"
	DefaultLuckyColor  = "Gold"
)

// DefaultAnalysis is the result when no narrative is available.
func DefaultAnalysis() Analysis {
	return Analysis{
		Number: DefaultLuckyNumber,
		Color:  DefaultLuckyColor,
	}
}

// Placement is one natal point in the response.
type Placement struct {
	Body      string  `json:"body"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	Longitude float64 `json:"abs_pos"`
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Sun        string
	Moon       string
	Rising     string
	Analysis   Analysis
	Location   location.Record
	Placements []Placement
}
