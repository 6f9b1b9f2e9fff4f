// Package theme loads the color themes the dashboard ships with.
package theme

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embedded embed.FS

// fallback is used for empty or unknown theme names.
const fallback = "mocha"

var names = []string{"mocha", "macchiato", "frappe", "latte"}

// Theme is one embedded color scheme. All colors are "#rrggbb".
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // header band
	BgSelection string `toml:"bg_selection"` // current page button
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"`
	Accent      string `toml:"accent"`
	Up          string `toml:"up"`
	Down        string `toml:"down"`
	Gold        string `toml:"gold"`
	Silver      string `toml:"silver"`
	Bronze      string `toml:"bronze"`
	Online      string `toml:"online"`
	Offline     string `toml:"offline"`
	Warning     string `toml:"warning"`

	// Optional error panel overrides.
	PanelBg     string `toml:"panel_bg"`
	PanelBorder string `toml:"panel_border"`
}

// Load returns the named theme. Unknown names load the fallback theme.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = fallback
	}

	data, err := embedded.ReadFile(path.Join("embedded", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	return &t, nil
}

// PanelBackground is the error panel fill.
func (t *Theme) PanelBackground() string {
	return firstSet(t.PanelBg, t.BgHighlight, t.Bg)
}

// PanelFrame is the error panel border color.
func (t *Theme) PanelFrame() string {
	return firstSet(t.PanelBorder, t.Warning, t.Accent)
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available lists the theme names in display order.
func Available() []string {
	return slices.Clone(names)
}

// IsAvailable reports whether name is a shipped theme, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(names, strings.ToLower(name))
}
