package llmprovider

import (
	"context"
	"fmt"

	"astro-chart-api/pkg/groq"
)

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	groqReq := &groq.Request{
		Messages:    convertToGroqMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// System instruction goes first, as the chat API expects
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := groq.Message{
			Role:    "system",
			Content: joinParts(req.SystemInstruction.Parts),
		}
		groqReq.Messages = append([]groq.Message{systemMsg}, groqReq.Messages...)
	}

	resp, err := a.client.ChatCompletion(ctx, groqReq)
	if err != nil {
		return nil, &ProviderError{Provider: "groq", Err: err}
	}

	return convertFromGroqResponse(resp)
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func convertToGroqMessages(msgs []Message) []groq.Message {
	messages := make([]groq.Message, 0, len(msgs))
	for _, msg := range msgs {
		messages = append(messages, groq.Message{
			Role:    msg.Role,
			Content: joinParts(msg.Parts),
		})
	}
	return messages
}

func convertFromGroqResponse(resp *groq.Response) (*Response, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", ErrEmptyResponse)
	}

	return &Response{
		Content:      TextMessage("assistant", resp.Choices[0].Message.Content),
		ProviderName: "groq",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func joinParts(parts []Part) string {
	var text string
	for _, p := range parts {
		text += p.Text
	}
	return text
}
