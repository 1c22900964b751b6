package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"astro-chart-api/config"
	"astro-chart-api/internal/app"
	"astro-chart-api/pkg/log"
)

// wireFunc builds the application for a command invocation.
type wireFunc func(ctx context.Context, verbose bool) (*app.App, error)

func defaultWire(ctx context.Context, verbose bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.NewNop()
	if verbose {
		logger = log.Init(log.ZapConfig{
			Level:    "debug",
			Mode:     log.ModeDevelopment,
			Encoding: log.EncodingConsole,
		})
	}

	return app.Wire(ctx, cfg, logger)
}

func newRootCmd(wire wireFunc) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "astroctl",
		Short:         "astroctl: resolve places and cast charts from the terminal",
		Long:          "astroctl runs the same location resolver and chart pipeline as the API server, using the same configuration and environment variables, and prints JSON.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stdout")

	build := func(cmd *cobra.Command) (*app.App, error) {
		return wire(cmd.Context(), verbose)
	}

	rootCmd.AddCommand(
		newLocateCmd(build),
		newChartCmd(build),
	)

	return rootCmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
