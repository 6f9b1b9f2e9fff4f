package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/podium/internal/api"
)

// ErrServerOffline is returned by the health command when the probe fails.
var ErrServerOffline = errors.New("leaderboard server is offline")

func (a *App) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the leaderboard server is reachable",
		Long: `Probe the leaderboard server's health endpoint.

Exits with a non-zero status when the server is offline.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := api.New(a.config.API.BaseURL, api.WithHealthTimeout(a.config.HealthTimeout()))
			if err != nil {
				return err
			}

			online := client.CheckHealth(context.Background())
			fmt.Printf("%s  %s\n", formatServer(online), formatMuted(client.BaseURL()))
			if !online {
				return ErrServerOffline
			}
			return nil
		},
	}
}
