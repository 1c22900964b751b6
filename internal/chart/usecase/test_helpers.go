package usecase

import (
	"context"
	"errors"
	"time"

	"astro-chart-api/internal/location"
	"astro-chart-api/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock locator returning a fixed record
type mockLocator struct {
	rec   location.Record
	calls []string
}

func (m *mockLocator) Resolve(ctx context.Context, city string) location.Record {
	m.calls = append(m.calls, city)
	return m.rec
}

// Mock provider capturing the last request
type mockProvider struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.TextMessage("assistant", m.text),
		ProviderName: "mock",
		ModelName:    "mock-model",
	}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

var errUpstream = errors.New("401 invalid api key")

var londonRecord = location.Record{City: "London", Latitude: 51.5074, Longitude: -0.1278, Timezone: "Europe/London"}

// newTestUseCase wires a use case around the mocks. provider may be nil.
func newTestUseCase(loc *mockLocator, provider llmprovider.Provider) *implUseCase {
	var manager *llmprovider.Manager
	if provider != nil {
		manager = llmprovider.NewManager([]llmprovider.Provider{provider}, &llmprovider.Config{RetryAttempts: 1}, &mockLogger{})
	}
	uc := New(&mockLogger{}, loc, manager, Options{}).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2024, 3, 20, 12, 0, 30, 0, time.UTC) }
	return uc
}
