package ephemeris

// lunarTerm is one periodic term of the lunar longitude series.
// Arguments are multiples of D, M, M', F; coef is in millionths of a degree.
type lunarTerm struct {
	d, m, mp, f float64
	coef        float64
}

// lunarLongitudeTerms holds the largest terms of the ELP-2000/82 longitude series.
var lunarLongitudeTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689},
	{2, 0, -1, 2, -2602},
	{2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348},
	{2, -2, 0, 0, 2236},
	{0, 1, 2, 0, -2120},
	{0, 2, 0, 0, -2069},
}

// MoonLongitude returns the apparent geocentric longitude of the Moon in degrees,
// accurate to roughly 0.05 degree.
func MoonLongitude(jd float64) float64 {
	t := centuries(jd)

	lp := 218.3164477 + 481267.88123421*t - 0.0015786*t*t
	d := 297.8501921 + 445267.1114034*t - 0.0018819*t*t
	m := 357.5291092 + 35999.0502909*t - 0.0001536*t*t
	mp := 134.9633964 + 477198.8675055*t + 0.0087414*t*t
	f := 93.2720950 + 483202.0175233*t - 0.0036539*t*t

	// eccentricity of Earth's orbit damps the terms involving M
	e := 1 - 0.002516*t - 0.0000074*t*t

	var sum float64
	for _, term := range lunarLongitudeTerms {
		arg := term.d*d + term.m*m + term.mp*mp + term.f*f
		coef := term.coef
		switch term.m {
		case 1, -1:
			coef *= e
		case 2, -2:
			coef *= e * e
		}
		sum += coef * sinD(arg)
	}

	// additive terms from Venus (A1) and Jupiter (A2) and the flattening term
	a1 := 119.75 + 131.849*t
	a2 := 53.09 + 479264.290*t
	sum += 3958*sinD(a1) + 1962*sinD(lp-f) + 318*sinD(a2)

	return normalize(lp + sum/1e6 + nutationLongitude(t))
}
