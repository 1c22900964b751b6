package usecase

import (
	"context"

	"astro-chart-api/pkg/llmprovider"
)

// narrate asks the model for the chart reading. Any failure, including an
// unconfigured provider, yields ok=false so the caller falls back to defaults.
func (uc *implUseCase) narrate(ctx context.Context, system, prompt string) (string, bool) {
	if uc.llm == nil {
		uc.l.Debugf(ctx, "chart.narrate: LLM not configured, using default analysis")
		return "", false
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: system}},
		},
		Messages:    []llmprovider.Message{llmprovider.TextMessage("user", prompt)},
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chart.narrate: %v", err)
		return "", false
	}

	text := resp.Text()
	if text == "" {
		uc.l.Warnf(ctx, "chart.narrate: empty completion from %s", resp.ProviderName)
		return "", false
	}
	return text, true
}
