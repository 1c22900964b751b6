package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func textResponse(provider, text string) *Response {
	return &Response{
		Content:      TextMessage("assistant", text),
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func userRequest() *Request {
	return &Request{
		SystemInstruction: &Message{Role: "system", Parts: []Part{{Text: "be brief"}}},
		Messages:          []Message{TextMessage("user", "Hello")},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: textResponse("primary", "hi")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text() != "hi" {
		t.Errorf("Expected text 'hi', got: %q", resp.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn messages, got %d and %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_SingleAttemptByDefault(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	manager := NewManager([]Provider{primary}, nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), userRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly one attempt, got: %d", primary.callCount)
	}
}

func TestGenerateContent_RetryThenFallback(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "ok")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected secondary provider, got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary to be retried twice, got: %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "ok")}
	manager := NewManager([]Provider{primary, secondary}, &Config{RetryAttempts: 1}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), userRequest()); err == nil {
		t.Fatal("Expected error when fallback disabled")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary not to be called, got: %d", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), userRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	primary := &mockProvider{name: "primary", response: textResponse("primary", "late")}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1, MaxTotalTimeout: time.Nanosecond}, &mockLogger{})

	time.Sleep(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := manager.GenerateContent(ctx, userRequest()); err == nil {
		t.Fatal("Expected error for cancelled context")
	}
	if primary.callCount != 0 {
		t.Errorf("Expected provider not to be called, got: %d", primary.callCount)
	}
}
