package ephemeris

import "math"

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi

	// j2000 is the Julian day of 2000-01-01 12:00 TT.
	j2000 = 2451545.0

	// precessionPerCentury is the general precession in longitude, degrees per Julian century.
	precessionPerCentury = 1.396971
)

// normalize folds an angle in degrees into [0,360).
func normalize(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func sinD(d float64) float64 { return math.Sin(d * deg2rad) }
func cosD(d float64) float64 { return math.Cos(d * deg2rad) }

// centuries returns Julian centuries since J2000 for jd.
func centuries(jd float64) float64 {
	return (jd - j2000) / 36525
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees.
func meanObliquity(t float64) float64 {
	return 23.439291111 - 0.013004167*t - 1.639e-7*t*t + 5.036e-7*t*t*t
}

// nutationLongitude is the dominant term of nutation in longitude, degrees.
func nutationLongitude(t float64) float64 {
	omega := 125.04452 - 1934.136261*t
	return -0.00478 * sinD(omega)
}
