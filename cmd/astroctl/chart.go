package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"astro-chart-api/internal/app"
	"astro-chart-api/internal/chart"
	"astro-chart-api/internal/location"
)

type chartOutput struct {
	Sun        string            `json:"sun"`
	Moon       string            `json:"moon"`
	Rising     string            `json:"rising"`
	Analysis   chart.Analysis    `json:"analysis"`
	Location   location.Record   `json:"location"`
	Placements []chart.Placement `json:"placements,omitempty"`
}

func newChartCmd(build func(*cobra.Command) (*app.App, error)) *cobra.Command {
	var (
		in         chart.GenerateInput
		placements bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Cast a natal chart and print the reading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build(cmd)
			if err != nil {
				return err
			}

			out, err := a.Chart.Generate(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("generate chart: %w", err)
			}

			res := chartOutput{
				Sun:      out.Sun,
				Moon:     out.Moon,
				Rising:   out.Rising,
				Analysis: out.Analysis,
				Location: out.Location,
			}
			if placements {
				res.Placements = out.Placements
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "User", "subject name")
	cmd.Flags().IntVar(&in.Year, "year", 0, "birth year")
	cmd.Flags().IntVar(&in.Month, "month", 0, "birth month (1-12)")
	cmd.Flags().IntVar(&in.Day, "day", 0, "birth day")
	cmd.Flags().IntVar(&in.Hour, "hour", 0, "birth hour (0-23), local time")
	cmd.Flags().IntVar(&in.Minute, "minute", 0, "birth minute")
	cmd.Flags().StringVar(&in.City, "city", "New York", "birth city")
	cmd.Flags().BoolVar(&placements, "placements", false, "include every body in the output")

	for _, f := range []string{"year", "month", "day"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}
