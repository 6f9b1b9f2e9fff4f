package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/podium/internal/config"
	"github.com/javiermolinar/podium/internal/leaderboard"
	"github.com/javiermolinar/podium/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show or edit the config file",
		Long: `Show the config file and optionally walk through each setting.

A missing file is created with default values first. Press enter at a
prompt to keep the current value.

Example:
  podium config
  podium --config ./board.toml config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(a.ConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfig(path string, in io.Reader, out io.Writer) error {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := cfg.SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s with default values.\n", path)
	}

	fmt.Fprintf(out, "%s\n\n", formatHeader(path))
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintf(out, "%s", data)

	p := prompter{in: bufio.NewReader(in), out: out}
	if !p.confirm("\nEdit the configuration?") {
		return nil
	}

	sorts := []string{string(leaderboard.SortScore), string(leaderboard.SortProgress)}
	cfg.API.BaseURL = p.text("API base URL", cfg.API.BaseURL)
	cfg.API.HealthTimeout = p.text("Health check timeout", cfg.API.HealthTimeout)
	cfg.API.RequestTimeout = p.text("Request timeout (0s for none)", cfg.API.RequestTimeout)
	cfg.Retry.MaxAttempts = p.number("Fetch attempts", cfg.Retry.MaxAttempts)
	cfg.Retry.BaseDelay = p.text("Retry base delay", cfg.Retry.BaseDelay)
	cfg.Board.PageSize = p.number("Page size", cfg.Board.PageSize)
	cfg.Board.SortBy = p.choice("Sort by", cfg.Board.SortBy, sorts)
	cfg.Board.PageSizes = p.numbers("Page size presets", cfg.Board.PageSizes)
	cfg.Network.Watch = p.flag("Watch network connectivity", cfg.Network.Watch)
	cfg.UI.Theme = p.choice("Theme", cfg.UI.Theme, theme.Available())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("not saved: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSaved %s\n", path)
	return nil
}

// prompter asks one question per line. Input that does not parse is asked
// again; end of input keeps the current value.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p prompter) ask(label, current string) (string, bool) {
	if current == "" {
		fmt.Fprintf(p.out, "  %s: ", label)
	} else {
		fmt.Fprintf(p.out, "  %s [%s]: ", label, current)
	}
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current, err == nil
	}
	return line, true
}

func (p prompter) confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, _ := p.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (p prompter) text(label, current string) string {
	v, _ := p.ask(label, current)
	return v
}

func (p prompter) number(label string, current int) int {
	for {
		v, more := p.ask(label, strconv.Itoa(current))
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		if !more {
			return current
		}
		fmt.Fprintf(p.out, "  %q is not a number\n", v)
	}
}

func (p prompter) numbers(label string, current []int) []int {
	for {
		v, more := p.ask(label+" (comma separated)", joinInts(current))
		ns, err := parseInts(v)
		if err == nil {
			return ns
		}
		if !more {
			return current
		}
		fmt.Fprintf(p.out, "  %v\n", err)
	}
}

func (p prompter) flag(label string, current bool) bool {
	for {
		v, more := p.ask(label+" (true/false)", strconv.FormatBool(current))
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		if !more {
			return current
		}
		fmt.Fprintf(p.out, "  %q is not true or false\n", v)
	}
}

func (p prompter) choice(label, current string, options []string) string {
	list := strings.Join(options, ", ")
	for {
		v, more := p.ask(label+" ("+list+")", current)
		v = strings.ToLower(v)
		if slices.Contains(options, v) {
			return v
		}
		if !more {
			return current
		}
		fmt.Fprintf(p.out, "  %q is not one of: %s\n", v, list)
	}
}

// parseInts parses a comma-separated list such as "10, 20, 50".
func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", field)
		}
		out = append(out, n)
	}
	return out, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
