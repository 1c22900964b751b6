package ephemeris

import (
	"fmt"
	"math"
)

// orbit holds Keplerian elements at J2000 and their rates per Julian century:
// semi-major axis (au), eccentricity, inclination, mean longitude,
// longitude of perihelion and longitude of the ascending node (degrees).
type orbit struct {
	a, e, i, l, peri, node                   float64
	aDot, eDot, iDot, lDot, periDot, nodeDot float64
}

// Approximate mean elements relative to the J2000 ecliptic, valid 1800-2050.
var orbits = map[Body]orbit{
	Mercury: {0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
	Venus: {0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
	Mars: {1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
	Jupiter: {5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
	Saturn: {9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
	Uranus: {19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
	Neptune: {30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.01262724},
	Pluto: {39.48211675, 0.24882730, 17.14001206, 238.92903833, 224.06891629, 110.30393684,
		-0.00031596, 0.00005170, 0.00004818, 145.20780515, -0.04062942, -0.01183482},
}

// earthMoonBarycenter is used as the observer for geocentric planet positions.
var earthMoonBarycenter = orbit{1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0,
	0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0}

// PlanetLongitude returns the geocentric ecliptic longitude of date of body, in degrees.
func PlanetLongitude(body Body, jd float64) (float64, error) {
	o, ok := orbits[body]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}

	t := centuries(jd)
	px, py, _ := o.heliocentric(t)
	ex, ey, _ := earthMoonBarycenter.heliocentric(t)

	lon := math.Atan2(py-ey, px-ex) * rad2deg
	return normalize(lon + precessionPerCentury*t + nutationLongitude(t)), nil
}

// heliocentric returns J2000 ecliptic rectangular coordinates in au.
func (o orbit) heliocentric(t float64) (x, y, z float64) {
	a := o.a + o.aDot*t
	e := o.e + o.eDot*t
	i := (o.i + o.iDot*t) * deg2rad
	l := o.l + o.lDot*t
	peri := o.peri + o.periDot*t
	node := o.node + o.nodeDot*t

	omega := (peri - node) * deg2rad
	m := normalize(l - peri)
	if m > 180 {
		m -= 360
	}
	ea := solveKepler(m*deg2rad, e)

	xp := a * (math.Cos(ea) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ea)

	n := node * deg2rad
	cw, sw := math.Cos(omega), math.Sin(omega)
	cn, sn := math.Cos(n), math.Sin(n)
	ci, si := math.Cos(i), math.Sin(i)

	x = (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp
	y = (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// solveKepler solves E - e sin E = M for E (radians) by Newton iteration.
func solveKepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)
	for range 30 {
		delta := (ea - e*math.Sin(ea) - m) / (1 - e*math.Cos(ea))
		ea -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return ea
}
