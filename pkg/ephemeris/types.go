package ephemeris

// Body identifies a chart point.
type Body string

const (
	Sun       Body = "sun"
	Moon      Body = "moon"
	Mercury   Body = "mercury"
	Venus     Body = "venus"
	Mars      Body = "mars"
	Jupiter   Body = "jupiter"
	Saturn    Body = "saturn"
	Uranus    Body = "uranus"
	Neptune   Body = "neptune"
	Pluto     Body = "pluto"
	Ascendant Body = "first_house"
)

// Bodies lists every point computed by NewChart, in chart order.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto, Ascendant}

// Point is a single placement on the tropical zodiac.
type Point struct {
	Body      Body
	Longitude float64 // ecliptic longitude of date, degrees [0,360)
	Sign      Sign
	Degree    float64 // position inside the sign, degrees [0,30)
}

// Chart is the set of placements for one moment and place.
type Chart struct {
	JulianDay float64
	Latitude  float64
	Longitude float64
	Points    map[Body]Point
}

// Point returns the placement for b. The zero Point is returned for unknown bodies.
func (c Chart) Point(b Body) Point {
	return c.Points[b]
}
