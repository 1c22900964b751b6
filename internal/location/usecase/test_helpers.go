package usecase

import (
	"context"
	"sync"

	"astro-chart-api/pkg/nominatim"
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

// Mock geocoder counting calls per query
type mockGeocoder struct {
	mu     sync.Mutex
	places map[string]*nominatim.Place
	err    error
	calls  map[string]int
}

func newMockGeocoder() *mockGeocoder {
	return &mockGeocoder{
		places: map[string]*nominatim.Place{},
		calls:  map[string]int{},
	}
}

func (m *mockGeocoder) Geocode(ctx context.Context, query string) (*nominatim.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[query]++
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.places[query]
	if !ok {
		return nil, nominatim.ErrNoResult
	}
	return p, nil
}

func (m *mockGeocoder) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

func (m *mockGeocoder) count(query string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[query]
}

// Mock timezone finder returning a fixed zone
type mockTZ struct {
	zone string
}

func (m mockTZ) TimezoneAt(lat, lng float64) string {
	return m.zone
}
