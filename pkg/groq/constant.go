package groq

import "time"

const (
	// DefaultBaseURL is the OpenAI-compatible Groq endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
