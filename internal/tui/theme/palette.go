package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a theme resolved into lipgloss colors, plus the shades derived
// from it.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Up          lipgloss.Color
	Down        lipgloss.Color
	Gold        lipgloss.Color
	Silver      lipgloss.Color
	Bronze      lipgloss.Color
	Online      lipgloss.Color
	Offline     lipgloss.Color
	Warning     lipgloss.Color

	// RowAlt stripes every other ranking row.
	RowAlt lipgloss.Color
	// Podium tints are the medal colors washed into the background.
	GoldBg   lipgloss.Color
	SilverBg lipgloss.Color
	BronzeBg lipgloss.Color

	// TextOnAccent is whichever of bg and fg reads better on the accent.
	TextOnAccent lipgloss.Color

	Panel PanelColors
}

// PanelColors are the error panel colors.
type PanelColors struct {
	Bg     lipgloss.Color
	Border lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Button lipgloss.Color
}

// NewPalette resolves t. A nil theme resolves the fallback theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(fallback)
	}
	light := isLight(t.Bg)

	// Light themes need more of the background in the tint to keep row text
	// readable.
	tint := 0.85
	stripe := "#ffffff"
	if light {
		tint = 0.80
		stripe = "#000000"
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Up:          lipgloss.Color(t.Up),
		Down:        lipgloss.Color(t.Down),
		Gold:        lipgloss.Color(t.Gold),
		Silver:      lipgloss.Color(t.Silver),
		Bronze:      lipgloss.Color(t.Bronze),
		Online:      lipgloss.Color(t.Online),
		Offline:     lipgloss.Color(t.Offline),
		Warning:     lipgloss.Color(t.Warning),

		RowAlt:   lipgloss.Color(mix(t.Bg, stripe, 0.04)),
		GoldBg:   lipgloss.Color(mix(t.Gold, t.Bg, tint)),
		SilverBg: lipgloss.Color(mix(t.Silver, t.Bg, tint)),
		BronzeBg: lipgloss.Color(mix(t.Bronze, t.Bg, tint)),

		TextOnAccent: lipgloss.Color(readableOn(t.Accent, t.Bg, t.Fg)),

		Panel: PanelColors{
			Bg:     lipgloss.Color(t.PanelBackground()),
			Border: lipgloss.Color(t.PanelFrame()),
			Text:   lipgloss.Color(t.Fg),
			Muted:  lipgloss.Color(t.FgMuted),
			Button: lipgloss.Color(firstSet(t.BgSelection, t.BgHighlight, t.Bg)),
		},
	}
}

func isLight(bg string) bool {
	return luminance(bg) > 0.55
}

// mix moves a toward b by ratio, clamped to [0, 1]. Unparseable input
// returns a unchanged.
func mix(a, b string, ratio float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Hex()
}

// readableOn picks the candidate with the best contrast against bg.
func readableOn(bg string, candidates ...string) string {
	best, bestRatio := "", -1.0
	for _, c := range candidates {
		if r := contrast(bg, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}

// contrast is the WCAG contrast ratio between two colors.
func contrast(a, b string) float64 {
	hi, lo := luminance(a), luminance(b)
	if hi < lo {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05)
}

// luminance is the WCAG relative luminance; 0 for unparseable input.
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
