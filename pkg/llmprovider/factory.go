package llmprovider

import (
	"fmt"

	"astro-chart-api/config"
	"astro-chart-api/pkg/groq"
)

// InitializeProviders creates Provider instances from configuration.
// Returns ErrNoProvidersConfigured when no API key is set, which callers
// treat as "narration disabled" rather than a startup failure.
func InitializeProviders(cfg config.GroqConfig) ([]Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoProvidersConfigured
	}

	client, err := groq.New(groq.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create groq client: %w", err)
	}

	return []Provider{NewGroqAdapter(client)}, nil
}
