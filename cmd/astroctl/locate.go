package main

import (
	"strings"

	"github.com/spf13/cobra"

	"astro-chart-api/internal/app"
)

func newLocateCmd(build func(*cobra.Command) (*app.App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <city>",
		Short: "Resolve a city to coordinates and a timezone",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(cmd)
			if err != nil {
				return err
			}
			rec := a.Locator.Resolve(cmd.Context(), strings.Join(args, " "))
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}
}
