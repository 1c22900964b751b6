package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"astro-chart-api/internal/chart"
	"astro-chart-api/internal/location"
)

const (
	defaultName = "User"
	defaultCity = "New York"
)

var errNotInteger = errors.New("not an integer")

// flexInt accepts 1990, 1990.0 and "1990".
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: %q", errNotInteger, s)
		}
		*f = flexInt(n)
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", errNotInteger, b)
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return fmt.Errorf("%w: %s out of range", errNotInteger, b)
	}
	*f = flexInt(math.Trunc(n))
	return nil
}

// --- Request DTOs ---

type chartReq struct {
	Name   *string  `json:"name"`
	Year   *flexInt `json:"year"`
	Month  *flexInt `json:"month"`
	Day    *flexInt `json:"day"`
	Hour   *flexInt `json:"hour"`
	Minute *flexInt `json:"minute"`
	City   *string  `json:"city"`
}

func (r chartReq) validate() error {
	for _, f := range []struct {
		name string
		v    *flexInt
	}{
		{"year", r.Year},
		{"month", r.Month},
		{"day", r.Day},
		{"hour", r.Hour},
		{"minute", r.Minute},
	} {
		if f.v == nil {
			return fmt.Errorf("missing required field %q", f.name)
		}
	}
	return nil
}

func (r chartReq) toInput() chart.GenerateInput {
	name := defaultName
	if r.Name != nil {
		name = *r.Name
	}
	city := defaultCity
	if r.City != nil {
		city = *r.City
	}
	return chart.GenerateInput{
		Name:   name,
		Year:   int(*r.Year),
		Month:  int(*r.Month),
		Day:    int(*r.Day),
		Hour:   int(*r.Hour),
		Minute: int(*r.Minute),
		City:   city,
	}
}

// --- Response DTOs ---

type analysisResp struct {
	Personality string `json:"personality"`
	Love        string `json:"love"`
	Career      string `json:"career"`
	Future      string `json:"future"`
	Life        string `json:"life"`
	Number      string `json:"number"`
	Color       string `json:"color"`
}

type locationResp struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Timezone  string  `json:"tz"`
}

type placementResp struct {
	Body      string  `json:"body"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	Longitude float64 `json:"abs_pos"`
}

type chartResp struct {
	Sun        string          `json:"sun"`
	Moon       string          `json:"moon"`
	Rising     string          `json:"rising"`
	Analysis   analysisResp    `json:"analysis"`
	Location   locationResp    `json:"location"`
	Placements []placementResp `json:"placements"`
}

func newLocationResp(rec location.Record) locationResp {
	return locationResp{
		City:      rec.City,
		Latitude:  rec.Latitude,
		Longitude: rec.Longitude,
		Timezone:  rec.Timezone,
	}
}

func (h *handler) newChartResp(out chart.GenerateOutput) chartResp {
	placements := make([]placementResp, len(out.Placements))
	for i, p := range out.Placements {
		placements[i] = placementResp{
			Body:      p.Body,
			Sign:      p.Sign,
			Degree:    math.Round(p.Degree*100) / 100,
			Longitude: math.Round(p.Longitude*100) / 100,
		}
	}
	a := out.Analysis
	return chartResp{
		Sun:    out.Sun,
		Moon:   out.Moon,
		Rising: out.Rising,
		Analysis: analysisResp{
			Personality: a.Personality,
			Love:        a.Love,
			Career:      a.Career,
			Future:      a.Future,
			Life:        a.Life,
			Number:      a.Number,
			Color:       a.Color,
		},
		Location:   newLocationResp(out.Location),
		Placements: placements,
	}
}
