package ephemeris

import (
	"math"
	"time"
)

// NewChart computes every body in Bodies for moment at the given place.
// Latitude and longitude are in degrees, east and north positive.
func NewChart(moment time.Time, latitude, longitude float64) (Chart, error) {
	jd := JulianDay(moment)
	chart := Chart{
		JulianDay: jd,
		Latitude:  latitude,
		Longitude: longitude,
		Points:    make(map[Body]Point, len(Bodies)),
	}

	for _, b := range Bodies {
		var (
			lon float64
			err error
		)
		switch b {
		case Sun:
			lon = SunLongitude(jd)
		case Moon:
			lon = MoonLongitude(jd)
		case Ascendant:
			lon, err = AscendantLongitude(jd, latitude, longitude)
		default:
			lon, err = PlanetLongitude(b, jd)
		}
		if err != nil {
			return Chart{}, err
		}
		chart.Points[b] = newPoint(b, lon)
	}

	return chart, nil
}

func newPoint(b Body, lon float64) Point {
	lon = normalize(lon)
	return Point{
		Body:      b,
		Longitude: lon,
		Sign:      SignOf(lon),
		Degree:    math.Mod(lon, 30),
	}
}
