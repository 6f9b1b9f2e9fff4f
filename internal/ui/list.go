package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/podium/internal/api"
	"github.com/javiermolinar/podium/internal/leaderboard"
)

func (a *App) listCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		sortBy   string
		search   string
		retries  int
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the leaderboard",
		Long: `Fetch a single page of the leaderboard and print it.

Defaults come from the [board] section of the config file.`,
		Example: `  podium list
  podium list --page=3 --page-size=20
  podium list --search=ada --sort=progress`,
		RunE: func(c *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			state := leaderboard.NewStateWithDefaults(a.config.InitialQuery())
			if c.Flags().Changed("page-size") {
				if err := state.SetPageSize(pageSize); err != nil {
					return err
				}
			}
			if sortBy != "" {
				sf, err := leaderboard.ParseSortField(sortBy)
				if err != nil {
					return err
				}
				if err := state.SetSortField(sf); err != nil {
					return err
				}
			}
			state.SetSearchTerm(search)
			if err := state.SetPage(page); err != nil {
				return err
			}

			client, err := api.New(a.config.API.BaseURL,
				api.WithHealthTimeout(a.config.HealthTimeout()),
				api.WithRequestTimeout(a.config.RequestTimeout()),
			)
			if err != nil {
				return err
			}

			attempts := a.config.Retry.MaxAttempts
			if c.Flags().Changed("retries") {
				attempts = retries + 1
			}
			fetcher := client.Fetcher(api.RetryPolicy{
				MaxAttempts: attempts,
				BaseDelay:   a.config.RetryBaseDelay(),
			})

			if err := state.Refetch(context.Background(), fetcher); err != nil {
				return listError(err)
			}

			PrintRanking(os.Stdout, state.Query(), state.Result(), termWidth())
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to fetch (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Rows per page (1-100, defaults to config)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort field: score or progress (defaults to config)")
	cmd.Flags().StringVar(&search, "search", "", "Filter entrants by name or id")
	cmd.Flags().IntVar(&retries, "retries", 0, "Retries after a failed fetch (defaults to config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// listError turns a fetch failure into the message shown to the user.
func listError(err error) error {
	msg := api.UserMessage(err)
	if errors.Is(err, api.ErrNetwork) || errors.Is(err, api.ErrTimeout) {
		return fmt.Errorf("%s (%s)", msg, err)
	}
	return errors.New(msg)
}
