package app

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astro-chart-api/config"
	"astro-chart-api/internal/chart"
	"astro-chart-api/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		Groq: config.GroqConfig{Model: "llama-3.3-70b-versatile", Temperature: 0.7, MaxTokens: 2500, Timeout: time.Second},
		LLM:  config.LLMConfig{RetryAttempts: 1},
		Geocoder: config.GeocoderConfig{
			BaseURL:           "http://127.0.0.1:1",
			UserAgent:         "astro-chart-api-test",
			Timeout:           time.Second,
			RequestsPerSecond: 1,
		},
		Location: config.LocationConfig{CacheSize: 10},
	}
}

func TestWire_WithoutLLM(t *testing.T) {
	a, err := Wire(context.Background(), testConfig(), log.NewNop())
	require.NoError(t, err)
	assert.False(t, a.Narrating)

	rec := a.Locator.Resolve(context.Background(), "Mumbai")
	assert.Equal(t, "Asia/Kolkata", rec.Timezone)

	out, err := a.Chart.Generate(context.Background(), chart.GenerateInput{
		Name: "Ravi", Year: 1985, Month: 1, Day: 20, Hour: 6, Minute: 15, City: "Mumbai",
	})
	require.NoError(t, err)
	assert.Equal(t, chart.DefaultAnalysis(), out.Analysis)
}

func TestWire_WithLLMKey(t *testing.T) {
	cfg := testConfig()
	cfg.Groq.APIKey = "gsk_test"

	a, err := Wire(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	assert.True(t, a.Narrating)
}

func TestWire_MissingUserAgent(t *testing.T) {
	cfg := testConfig()
	cfg.Geocoder.UserAgent = ""

	_, err := Wire(context.Background(), cfg, log.NewNop())
	assert.Error(t, err)
}
