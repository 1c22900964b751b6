package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astro-chart-api/internal/app"
	"astro-chart-api/internal/chart"
	chartUC "astro-chart-api/internal/chart/usecase"
	locationUC "astro-chart-api/internal/location/usecase"
	"astro-chart-api/pkg/log"
)

// offlineWire resolves only fallback cities and never narrates.
func offlineWire(ctx context.Context, verbose bool) (*app.App, error) {
	l := log.NewNop()
	locator, err := locationUC.New(l, nil, nil, locationUC.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &app.App{
		Locator: locator,
		Chart:   chartUC.New(l, locator, nil, chartUC.Options{}),
	}, nil
}

func executeCLI(t *testing.T, wire wireFunc, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd(wire)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLocateFallbackCity(t *testing.T) {
	stdout, _, err := executeCLI(t, offlineWire, "locate", "new", "york")
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
	assert.Equal(t, "New York", rec["city"])
	assert.Equal(t, "America/New_York", rec["tz"])
}

func TestLocateRequiresCity(t *testing.T) {
	_, _, err := executeCLI(t, offlineWire, "locate")
	require.Error(t, err)
}

func TestChartHappyPath(t *testing.T) {
	stdout, _, err := executeCLI(t, offlineWire,
		"chart",
		"--year", "1990", "--month", "7", "--day", "14",
		"--hour", "9", "--minute", "30",
		"--city", "London",
		"--placements",
	)
	require.NoError(t, err)

	var out chartOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "Can", out.Sun)
	assert.Equal(t, chart.DefaultAnalysis(), out.Analysis)
	assert.Len(t, out.Placements, 11)
}

func TestChartRequiresDate(t *testing.T) {
	_, _, err := executeCLI(t, offlineWire, "chart", "--year", "1990")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
}

func TestChartInvalidDate(t *testing.T) {
	_, _, err := executeCLI(t, offlineWire, "chart", "--year", "1990", "--month", "2", "--day", "31")
	require.Error(t, err)
	assert.ErrorIs(t, err, chart.ErrInvalidDate)
}

func TestWireErrorSurfaces(t *testing.T) {
	boom := errors.New("config broken")
	failing := func(context.Context, bool) (*app.App, error) { return nil, boom }

	_, _, err := executeCLI(t, failing, "locate", "delhi")
	assert.ErrorIs(t, err, boom)
}

