// Package config loads podium settings. Values come from built-in defaults,
// then config.toml, then PODIUM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/podium/internal/leaderboard"
)

// Config is everything podium reads from config.toml.
type Config struct {
	API     APIConfig     `toml:"api"`
	Retry   RetryConfig   `toml:"retry"`
	Board   BoardConfig   `toml:"board"`
	Network NetworkConfig `toml:"network"`
	UI      UIConfig      `toml:"ui"`
}

// APIConfig holds the leaderboard service settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`        // e.g., "http://localhost:8000"
	HealthTimeout  string `toml:"health_timeout"`  // e.g., "5s"
	RequestTimeout string `toml:"request_timeout"` // "0s" disables the bound
}

// RetryConfig holds the bounded retry policy for leaderboard fetches.
type RetryConfig struct {
	MaxAttempts int    `toml:"max_attempts"` // 1 disables retries
	BaseDelay   string `toml:"base_delay"`   // delay grows as base_delay * attempt
}

// BoardConfig holds the initial query and presets.
type BoardConfig struct {
	PageSize     int    `toml:"page_size"`
	SortBy       string `toml:"sort_by"`       // "score" or "progress"
	PageSizes    []int  `toml:"page_sizes"`    // presets cycled with [ and ]
	StartupDelay string `toml:"startup_delay"` // pause between health badge and first fetch
}

// NetworkConfig holds connectivity watching settings.
type NetworkConfig struct {
	Watch        bool   `toml:"watch"`
	PollInterval string `toml:"poll_interval"`
}

// UIConfig holds dashboard appearance settings.
type UIConfig struct {
	Theme string `toml:"theme"` // one of theme.Available()
}

// Default is the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8000",
			HealthTimeout:  "5s",
			RequestTimeout: "0s",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   "1s",
		},
		Board: BoardConfig{
			PageSize:     leaderboard.DefaultPageSize,
			SortBy:       string(leaderboard.DefaultSortField),
			PageSizes:    []int{10, 20, 50, 100},
			StartupDelay: "500ms",
		},
		Network: NetworkConfig{
			Watch:        true,
			PollInterval: "2s",
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// DefaultConfigPath is ~/.config/podium/config.toml, or config.toml in the
// working directory when there is no home.
func DefaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "podium", "config.toml")
	}
	return "config.toml"
}

// Load reads DefaultConfigPath.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom layers path and the environment over Default and validates the
// result. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	for _, o := range envOverrides {
		if v, ok := os.LookupEnv(o.name); ok && v != "" {
			o.apply(cfg, v)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envOverrides maps PODIUM_* variables onto fields. Numbers and booleans
// that fail to parse are ignored and the file value stands.
var envOverrides = []struct {
	name  string
	apply func(*Config, string)
}{
	{"PODIUM_API_BASE_URL", func(c *Config, v string) { c.API.BaseURL = v }},
	{"PODIUM_API_HEALTH_TIMEOUT", func(c *Config, v string) { c.API.HealthTimeout = v }},
	{"PODIUM_API_REQUEST_TIMEOUT", func(c *Config, v string) { c.API.RequestTimeout = v }},
	{"PODIUM_RETRY_MAX_ATTEMPTS", func(c *Config, v string) { setInt(&c.Retry.MaxAttempts, v) }},
	{"PODIUM_RETRY_BASE_DELAY", func(c *Config, v string) { c.Retry.BaseDelay = v }},
	{"PODIUM_PAGE_SIZE", func(c *Config, v string) { setInt(&c.Board.PageSize, v) }},
	{"PODIUM_SORT_BY", func(c *Config, v string) { c.Board.SortBy = v }},
	{"PODIUM_NETWORK_WATCH", func(c *Config, v string) { setBool(&c.Network.Watch, v) }},
	{"PODIUM_UI_THEME", func(c *Config, v string) { c.UI.Theme = v }},
}

func setInt(dst *int, v string) {
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

func setBool(dst *bool, v string) {
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("base_url must be set")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}

	if err := validateDuration(c.API.HealthTimeout, "health_timeout", false); err != nil {
		return err
	}
	if err := validateDuration(c.API.RequestTimeout, "request_timeout", true); err != nil {
		return err
	}
	if c.Retry.MaxAttempts < 1 {
		return errors.New("max_attempts must be at least 1")
	}
	if err := validateDuration(c.Retry.BaseDelay, "base_delay", true); err != nil {
		return err
	}

	if c.Board.PageSize < 1 || c.Board.PageSize > leaderboard.MaxPageSize {
		return fmt.Errorf("page_size must be between 1 and %d, got %d", leaderboard.MaxPageSize, c.Board.PageSize)
	}
	if _, err := leaderboard.ParseSortField(c.Board.SortBy); err != nil {
		return fmt.Errorf("sort_by: %w", err)
	}
	for i, size := range c.Board.PageSizes {
		if size < 1 || size > leaderboard.MaxPageSize {
			return fmt.Errorf("page_sizes[%d] must be between 1 and %d, got %d", i, leaderboard.MaxPageSize, size)
		}
		if i > 0 && size <= c.Board.PageSizes[i-1] {
			return errors.New("page_sizes must be in increasing order")
		}
	}
	if err := validateDuration(c.Board.StartupDelay, "startup_delay", true); err != nil {
		return err
	}

	if err := validateDuration(c.Network.PollInterval, "poll_interval", false); err != nil {
		return err
	}
	return nil
}

// validateDuration checks a Go duration string. Zero is only allowed when allowZero is set.
func validateDuration(s, field string, allowZero bool) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%s must be a duration like \"5s\", got %q", field, s)
	}
	if d < 0 || (d == 0 && !allowZero) {
		return fmt.Errorf("%s must be positive, got %q", field, s)
	}
	return nil
}

// mustDuration parses a duration that Validate already accepted.
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

// HealthTimeout returns the health probe bound.
func (c *Config) HealthTimeout() time.Duration { return mustDuration(c.API.HealthTimeout) }

// RequestTimeout returns the leaderboard fetch bound (0 = none).
func (c *Config) RequestTimeout() time.Duration { return mustDuration(c.API.RequestTimeout) }

// RetryBaseDelay returns the retry backoff unit.
func (c *Config) RetryBaseDelay() time.Duration { return mustDuration(c.Retry.BaseDelay) }

// StartupDelay returns the pause before the first fetch.
func (c *Config) StartupDelay() time.Duration { return mustDuration(c.Board.StartupDelay) }

// PollInterval returns the connectivity sampling interval.
func (c *Config) PollInterval() time.Duration { return mustDuration(c.Network.PollInterval) }

// InitialQuery returns the query the dashboard starts with.
func (c *Config) InitialQuery() leaderboard.Query {
	q := leaderboard.DefaultQuery()
	q.PageSize = c.Board.PageSize
	if sf, err := leaderboard.ParseSortField(c.Board.SortBy); err == nil {
		q.SortField = sf
	}
	return q
}

// SaveTo writes c as TOML to path, creating parent directories. The file is
// written next to path and renamed into place.
func (c *Config) SaveTo(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading "~/" against the home directory.
func ExpandPath(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
