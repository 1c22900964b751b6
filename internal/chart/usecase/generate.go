package usecase

import (
	"context"
	"fmt"
	"time"

	"astro-chart-api/internal/chart"
)

// Generate casts the natal chart for input and the transit chart for the
// current minute at the same place, then narrates both.
func (uc *implUseCase) Generate(ctx context.Context, input chart.GenerateInput) (chart.GenerateOutput, error) {
	// Step 1: Resolve the birthplace
	rec := uc.locator.Resolve(ctx, input.City)

	loc, err := loadZone(rec)
	if err != nil {
		return chart.GenerateOutput{}, err
	}

	// Step 2: Natal and transit subjects
	moment, err := birthMoment(input, loc)
	if err != nil {
		return chart.GenerateOutput{}, err
	}

	user, err := newSubject(input.Name, moment, rec)
	if err != nil {
		return chart.GenerateOutput{}, fmt.Errorf("natal chart: %w", err)
	}

	now := uc.now().In(loc).Truncate(time.Minute)
	sky, err := newSubject("Now", now, rec)
	if err != nil {
		return chart.GenerateOutput{}, fmt.Errorf("transit chart: %w", err)
	}

	// Step 3: Narrative, defaulted when the model is unavailable
	text, ok := uc.narrate(ctx, SystemPrompt, BuildPrompt(user, sky))
	analysis := ParseSections(text, ok)

	uc.l.Infof(ctx, "chart.Generate: city=%q sun=%s moon=%s rising=%s narrated=%t",
		rec.City, user.Sun(), user.Moon(), user.Rising(), ok)

	return chart.GenerateOutput{
		Sun:        user.Sun().Abbrev(),
		Moon:       user.Moon().Abbrev(),
		Rising:     user.Rising().Abbrev(),
		Analysis:   analysis,
		Location:   rec,
		Placements: placements(user),
	}, nil
}
