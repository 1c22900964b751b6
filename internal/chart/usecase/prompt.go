package usecase

import (
	"fmt"

	"astro-chart-api/internal/chart"
)

// Section markers, in the order the model is asked to emit them.
const (
	MarkerPersonality = "SECTION_PERSONALITY:"
	MarkerLove        = "SECTION_LOVE:"
	MarkerCareer      = "SECTION_CAREER:"
	MarkerFuture      = "SECTION_FUTURE:"
	MarkerLifePath    = "SECTION_LIFE_PATH:"
	MarkerLuckyNumber = "SECTION_LUCKY_NUMBER:"
	MarkerLuckyColor  = "SECTION_LUCKY_COLOR:"
)

// SystemPrompt is the system instruction sent with every chart.
const SystemPrompt = `You are a celebrity astrologer for a luxury magazine.
Write a comprehensive "Book of You" analysis.
Tone: Psychological, Empowering, Elegant. No cheesy newspaper horoscopes.`

const promptTemplate = `USER CHART:
Sun: %s, Moon: %s, Rising: %s
Venus: %s, Mars: %s, Jupiter: %s

CURRENT TRANSITS:
Sun: %s, Moon: %s, Saturn: %s

Provide analysis in these EXACT SECTIONS (do not use markdown bolding **):

` + MarkerPersonality + `
(150 words. Describe their core character based on Sun/Moon/Rising blend. Deep psychological insight.)

` + MarkerLove + `
(100 words. Analyze Venus sign. How do they love? What partner suits them?)

` + MarkerCareer + `
(100 words. Analyze Mars and Saturn. Their work style and path to success.)

` + MarkerFuture + `
(150 words. A predictive look at the next 6 months based on current Transits. What is the major theme?)

` + MarkerLifePath + `
(50 words. A spiritual summary of their life's purpose.)

` + MarkerLuckyNumber + `
(Just the number, e.g., "7")

` + MarkerLuckyColor + `
(Just the color name, e.g., "Emerald Green")
`

// BuildPrompt renders the user prompt for a natal subject and the current sky.
func BuildPrompt(user, now chart.Subject) string {
	return fmt.Sprintf(promptTemplate,
		user.Sun(), user.Moon(), user.Rising(),
		user.Venus(), user.Mars(), user.Jupiter(),
		now.Sun(), now.Moon(), now.Saturn(),
	)
}
