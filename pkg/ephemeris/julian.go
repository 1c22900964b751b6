package ephemeris

import "time"

// unixEpochJD is the Julian day of 1970-01-01 00:00 UTC.
const unixEpochJD = 2440587.5

// JulianDay returns the Julian day number of t (UT; the TT-UT offset is ignored).
func JulianDay(t time.Time) float64 {
	ms := t.UTC().UnixMilli()
	return unixEpochJD + float64(ms)/86400000.0
}
