package ephemeris

import "math"

// Sign is a zodiac sign, Aries = 0.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the full sign name, e.g. "Capricorn".
func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return ""
	}
	return signNames[s]
}

// Abbrev returns the three letter form used in chart payloads, e.g. "Cap".
func (s Sign) Abbrev() string {
	name := s.String()
	if len(name) < 3 {
		return name
	}
	return name[:3]
}

// SignOf maps an ecliptic longitude in degrees to its sign.
func SignOf(longitude float64) Sign {
	return Sign(int(math.Floor(normalize(longitude)/30)) % 12)
}
