package ephemeris

// SunLongitude returns the apparent geocentric longitude of the Sun in degrees.
// Low-precision solar theory, good to about 0.01 degree.
func SunLongitude(jd float64) float64 {
	t := centuries(jd)

	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	c := (1.914602-0.004817*t-0.000014*t*t)*sinD(m) +
		(0.019993-0.000101*t)*sinD(2*m) +
		0.000289*sinD(3*m)

	omega := 125.04 - 1934.136*t
	return normalize(l0 + c - 0.00569 - 0.00478*sinD(omega))
}
