package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/podium/internal/config"
	"github.com/javiermolinar/podium/internal/debuglog"
	"github.com/javiermolinar/podium/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	root       *cobra.Command
	debug      bool   // Enable debug logging
	configPath string // Alternate config file
	baseURL    string // Overrides api.base_url for this run
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "podium",
		Short: "A terminal dashboard for leaderboards",
		Long: `Podium shows a paginated, searchable leaderboard served by a
leaderboard API.

Run it without a subcommand to open the dashboard. Use "podium list"
for a one-shot print of a single page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.preRun()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.config)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.config/podium/config.toml)")
	a.root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "Leaderboard API base URL (overrides config)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.healthCmd())

	return a
}

// preRun applies flag overrides and opens the debug log for every command.
func (a *App) preRun() error {
	if err := a.applyOverrides(); err != nil {
		return err
	}
	return debuglog.Init(a.debug)
}

func (a *App) applyOverrides() error {
	if a.configPath != "" {
		cfg, err := config.LoadFrom(config.ExpandPath(a.configPath))
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}
	if a.baseURL == "" {
		return nil
	}
	a.config.API.BaseURL = a.baseURL
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("--base-url: %w", err)
	}
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("podium %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ConfigPath returns the config file in use.
func (a *App) ConfigPath() string {
	if a.configPath != "" {
		return config.ExpandPath(a.configPath)
	}
	return config.DefaultConfigPath()
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	defer debuglog.Close()
	return a.root.Execute()
}
