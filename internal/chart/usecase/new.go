package usecase

import (
	"time"

	"astro-chart-api/internal/chart"
	"astro-chart-api/internal/location"
	"astro-chart-api/pkg/llmprovider"
	pkgLog "astro-chart-api/pkg/log"
)

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2500
)

// Options tune the narrative request. A nil Temperature selects
// DefaultTemperature; an explicit zero is kept.
type Options struct {
	Temperature *float64
	MaxTokens   int
}

type implUseCase struct {
	l           pkgLog.Logger
	locator     location.UseCase
	llm         *llmprovider.Manager
	temperature float64
	maxTokens   int
	now         func() time.Time
}

// New creates a new chart UseCase instance. llm may be nil, in which case
// every chart is returned with the default analysis.
func New(l pkgLog.Logger, locator location.UseCase, llm *llmprovider.Manager, opts Options) chart.UseCase {
	temperature := DefaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &implUseCase{
		l:           l,
		locator:     locator,
		llm:         llm,
		temperature: temperature,
		maxTokens:   opts.MaxTokens,
		now:         time.Now,
	}
}
