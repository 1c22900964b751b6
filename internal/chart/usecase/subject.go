package usecase

import (
	"fmt"
	"time"

	"astro-chart-api/internal/chart"
	"astro-chart-api/internal/location"
	"astro-chart-api/pkg/ephemeris"
)

// birthMoment validates the calendar fields and places them in loc.
func birthMoment(in chart.GenerateInput, loc *time.Location) (time.Time, error) {
	if in.Month < 1 || in.Month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d out of range 1..12", chart.ErrInvalidDate, in.Month)
	}
	if in.Hour < 0 || in.Hour > 23 {
		return time.Time{}, fmt.Errorf("%w: hour %d out of range 0..23", chart.ErrInvalidTime, in.Hour)
	}
	if in.Minute < 0 || in.Minute > 59 {
		return time.Time{}, fmt.Errorf("%w: minute %d out of range 0..59", chart.ErrInvalidTime, in.Minute)
	}

	t := time.Date(in.Year, time.Month(in.Month), in.Day, in.Hour, in.Minute, 0, 0, loc)
	if t.Year() != in.Year || int(t.Month()) != in.Month || t.Day() != in.Day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", chart.ErrInvalidDate, in.Year, in.Month, in.Day)
	}
	return t, nil
}

func loadZone(rec location.Record) (*time.Location, error) {
	loc, err := time.LoadLocation(rec.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", chart.ErrInvalidTimezone, rec.Timezone, err)
	}
	return loc, nil
}

func newSubject(name string, moment time.Time, rec location.Record) (chart.Subject, error) {
	c, err := ephemeris.NewChart(moment, rec.Latitude, rec.Longitude)
	if err != nil {
		return chart.Subject{}, err
	}
	return chart.Subject{
		Name:     name,
		Moment:   moment,
		Location: rec,
		Chart:    c,
	}, nil
}

func placements(s chart.Subject) []chart.Placement {
	out := make([]chart.Placement, 0, len(ephemeris.Bodies))
	for _, b := range ephemeris.Bodies {
		p := s.Chart.Point(b)
		out = append(out, chart.Placement{
			Body:      string(b),
			Sign:      p.Sign.Abbrev(),
			Degree:    p.Degree,
			Longitude: p.Longitude,
		})
	}
	return out
}
