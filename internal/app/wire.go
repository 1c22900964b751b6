// Package app builds the service object graph shared by the API server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	"astro-chart-api/config"
	"astro-chart-api/internal/chart"
	chartUC "astro-chart-api/internal/chart/usecase"
	"astro-chart-api/internal/location"
	locationUC "astro-chart-api/internal/location/usecase"
	"astro-chart-api/pkg/llmprovider"
	"astro-chart-api/pkg/log"
	"astro-chart-api/pkg/nominatim"
	"astro-chart-api/pkg/tzlookup"
)

// App is the wired set of use cases.
type App struct {
	Locator location.UseCase
	Chart   chart.UseCase

	// Narrating reports whether an LLM provider is configured.
	Narrating bool
}

// Wire builds every client and use case from cfg. Missing optional upstreams
// (LLM key, timezone data) degrade to defaults instead of failing.
func Wire(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	// Geocoder
	geocoder, err := nominatim.New(nominatim.Config{
		BaseURL:           cfg.Geocoder.BaseURL,
		UserAgent:         cfg.Geocoder.UserAgent,
		Timeout:           cfg.Geocoder.Timeout,
		RequestsPerSecond: cfg.Geocoder.RequestsPerSecond,
	})
	if err != nil {
		return nil, fmt.Errorf("wire geocoder: %w", err)
	}

	// Timezone finder
	var tz location.TimezoneFinder
	finder, err := tzlookup.New()
	if err != nil {
		l.Warnf(ctx, "Timezone lookup unavailable, geocoded places will use UTC: %v", err)
	} else {
		tz = finder
	}

	// Location resolver
	locator, err := locationUC.New(l, geocoder, tz, cfg.Location.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("wire location resolver: %w", err)
	}

	// LLM gateway
	var manager *llmprovider.Manager
	providers, err := llmprovider.InitializeProviders(cfg.Groq)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		l.Warn(ctx, "GROQ_API_KEY is not set, charts will use the default analysis")
	case err != nil:
		return nil, fmt.Errorf("wire llm providers: %w", err)
	default:
		manager = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      cfg.LLM.RetryDelay,
			MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
		}, l)
		l.Infof(ctx, "LLM provider: groq model=%s", cfg.Groq.Model)
	}

	temperature := cfg.Groq.Temperature
	return &App{
		Locator: locator,
		Chart: chartUC.New(l, locator, manager, chartUC.Options{
			Temperature: &temperature,
			MaxTokens:   cfg.Groq.MaxTokens,
		}),
		Narrating: manager != nil,
	}, nil
}
