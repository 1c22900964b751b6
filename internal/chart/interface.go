package chart

import "context"

// UseCase defines the business logic interface for the chart domain.
type UseCase interface {
	// Generate casts the natal and transit charts for input and narrates them.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
