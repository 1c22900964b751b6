package ephemeris

import "math"

// SiderealTime returns the local mean sidereal time in degrees for an east-positive longitude.
func SiderealTime(jd, longitude float64) float64 {
	t := centuries(jd)
	gmst := 280.46061837 + 360.98564736629*(jd-j2000) + 0.000387933*t*t - t*t*t/38710000
	return normalize(gmst + longitude)
}

// AscendantFromRAMC returns the ecliptic longitude rising on the eastern horizon
// given the right ascension of the meridian, the latitude and the obliquity, all in degrees.
func AscendantFromRAMC(ramc, latitude, obliquity float64) float64 {
	y := cosD(ramc)
	x := -(sinD(ramc)*cosD(obliquity) + math.Tan(latitude*deg2rad)*sinD(obliquity))
	return normalize(math.Atan2(y, x) * rad2deg)
}

// AscendantLongitude returns the first house cusp for jd at the given place.
func AscendantLongitude(jd, latitude, longitude float64) (float64, error) {
	if latitude <= -90 || latitude >= 90 || math.IsNaN(latitude) {
		return 0, ErrLatitude
	}
	t := centuries(jd)
	return AscendantFromRAMC(SiderealTime(jd, longitude), latitude, meanObliquity(t)), nil
}
