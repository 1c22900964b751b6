package nominatim_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"astro-chart-api/pkg/nominatim"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *nominatim.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := nominatim.New(nominatim.Config{
		BaseURL:           ts.URL,
		UserAgent:         "astro-test",
		Timeout:           2 * time.Second,
		RequestsPerSecond: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestGeocode_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("User-Agent") != "astro-test" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.URL.Query().Get("q") != "Paris" || r.URL.Query().Get("format") != "jsonv2" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`[{"place_id":1,"lat":"48.8588897","lon":"2.3200410","display_name":"Paris, Ile-de-France, France"}]`))
	})

	place, err := c.Geocode(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if place.Latitude != 48.8588897 || place.Longitude != 2.3200410 {
		t.Errorf("unexpected coordinates: %v, %v", place.Latitude, place.Longitude)
	}
	if place.DisplayName != "Paris, Ile-de-France, France" {
		t.Errorf("unexpected display name: %s", place.DisplayName)
	}
}

func TestGeocode_NoResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := c.Geocode(context.Background(), "Atlantis")
	if !errors.Is(err, nominatim.ErrNoResult) {
		t.Errorf("expected ErrNoResult, got %v", err)
	}
}

func TestGeocode_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := c.Geocode(context.Background(), "Paris"); err == nil {
		t.Error("expected error on 503")
	}
}

func TestGeocode_BadCoordinates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"north","lon":"2.3"}]`))
	})

	if _, err := c.Geocode(context.Background(), "Paris"); err == nil {
		t.Error("expected error on malformed latitude")
	}
}

func TestGeocode_EmptyQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server must not be called")
	})

	if _, err := c.Geocode(context.Background(), "   "); !errors.Is(err, nominatim.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestNew_RequiresUserAgent(t *testing.T) {
	if _, err := nominatim.New(nominatim.Config{}); err == nil {
		t.Error("expected error without user agent")
	}
}

func TestGeocode_PacingWaitBoundedByTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"place_id":1,"lat":"1.5","lon":"2.5","display_name":"Somewhere"}]`))
	}))
	t.Cleanup(ts.Close)

	timeout := 200 * time.Millisecond
	c, err := nominatim.New(nominatim.Config{
		BaseURL:           ts.URL,
		UserAgent:         "astro-test",
		Timeout:           timeout,
		RequestsPerSecond: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const callers = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		worst     time.Duration
		succeeded int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			_, err := c.Geocode(context.Background(), "Somewhere")
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if elapsed > worst {
				worst = elapsed
			}
			if err == nil {
				succeeded++
			}
		}()
	}
	wg.Wait()

	if worst > timeout+500*time.Millisecond {
		t.Errorf("worst latency %v exceeds timeout %v", worst, timeout)
	}
	if succeeded == 0 || succeeded == callers {
		t.Errorf("expected some callers to be paced out, got %d/%d successes", succeeded, callers)
	}
}
