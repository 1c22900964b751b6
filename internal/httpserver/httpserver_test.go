package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astro-chart-api/config"
	"astro-chart-api/internal/chart"
	chartUC "astro-chart-api/internal/chart/usecase"
	locationUC "astro-chart-api/internal/location/usecase"
	"astro-chart-api/pkg/log"
)

func newTestServer(t *testing.T, rateLimit int, trustedProxies ...string) *HTTPServer {
	t.Helper()
	l := log.NewNop()

	// No geocoder and no LLM: fallback table cities resolve offline and the
	// analysis is defaulted.
	locator, err := locationUC.New(l, nil, nil, locationUC.DefaultCacheSize)
	require.NoError(t, err)

	srv, err := New(l, Config{
		Logger:         l,
		Port:           5000,
		Mode:           gin.TestMode,
		Environment:    "test",
		TrustedProxies: trustedProxies,
		CORS:           config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit:      config.RateLimitConfig{RequestsPerMin: rateLimit},
		ChartUseCase:   chartUC.New(l, locator, nil, chartUC.Options{}),
	})
	require.NoError(t, err)
	return srv
}

func post(srv *HTTPServer, body string) *httptest.ResponseRecorder {
	return postFrom(srv, body, "")
}

// postFrom sends the request from httptest's fixed peer address, with an
// optional X-Forwarded-For header.
func postFrom(srv *HTTPServer, body, forwardedFor string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://client.example")
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestChart_EndToEndWithoutLLM(t *testing.T) {
	srv := newTestServer(t, 0)

	w := post(srv, `{"name":"Ada","year":1990,"month":7,"day":14,"hour":9,"minute":30,"city":"Delhi"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Sun      string            `json:"sun"`
			Moon     string            `json:"moon"`
			Rising   string            `json:"rising"`
			Analysis map[string]string `json:"analysis"`
			Location struct {
				City string `json:"city"`
				TZ   string `json:"tz"`
			} `json:"location"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "Can", body.Data.Sun)
	assert.NotEmpty(t, body.Data.Moon)
	assert.NotEmpty(t, body.Data.Rising)
	assert.Len(t, body.Data.Analysis, 7)
	assert.Equal(t, "7", body.Data.Analysis["number"])
	assert.Equal(t, "Gold", body.Data.Analysis["color"])
	assert.Equal(t, "Delhi", body.Data.Location.City)
	assert.Equal(t, "Asia/Kolkata", body.Data.Location.TZ)
}

func TestChart_MissingFieldIs500(t *testing.T) {
	srv := newTestServer(t, 0)

	w := post(srv, `{"year":1990,"month":7,"day":14,"hour":9}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "minute")
}

func TestChart_RateLimited(t *testing.T) {
	srv := newTestServer(t, 10)

	assert.Equal(t, http.StatusOK, post(srv, `{"year":1990,"month":7,"day":14,"hour":9,"minute":30,"city":"London"}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, post(srv, `{"year":1990,"month":7,"day":14,"hour":9,"minute":30,"city":"London"}`).Code)
}

func TestChart_RateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	srv := newTestServer(t, 10)
	body := `{"year":1990,"month":7,"day":14,"hour":9,"minute":30,"city":"London"}`

	ok := 0
	for i := 0; i < 20; i++ {
		if postFrom(srv, body, fmt.Sprintf("203.0.113.%d", i+1)).Code == http.StatusOK {
			ok++
		}
	}
	assert.Equal(t, 1, ok)
}

func TestChart_RateLimitHonoursForwardedForFromTrustedProxy(t *testing.T) {
	// httptest requests originate from 192.0.2.1.
	srv := newTestServer(t, 10, "192.0.2.1")
	body := `{"year":1990,"month":7,"day":14,"hour":9,"minute":30,"city":"London"}`

	assert.Equal(t, http.StatusOK, postFrom(srv, body, "203.0.113.1").Code)
	assert.Equal(t, http.StatusOK, postFrom(srv, body, "203.0.113.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, postFrom(srv, body, "203.0.113.1").Code)
}

func TestNew_RejectsInvalidTrustedProxy(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Port: 5000, Mode: gin.TestMode, ChartUseCase: stubUseCase{}, TrustedProxies: []string{"not-an-ip"}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, 0)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"success":true`, path)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/api/chart")
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Port: 5000, Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = New(l, Config{Mode: gin.TestMode, ChartUseCase: stubUseCase{}})
	assert.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{Port: 0, Mode: gin.TestMode, ChartUseCase: stubUseCase{}})
	require.Error(t, err, "port 0 is rejected")

	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	srv, err = New(l, Config{Port: port, Mode: gin.TestMode, ChartUseCase: stubUseCase{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type stubUseCase struct{}

func (stubUseCase) Generate(ctx context.Context, input chart.GenerateInput) (chart.GenerateOutput, error) {
	return chart.GenerateOutput{Analysis: chart.DefaultAnalysis()}, nil
}
