// Package tui provides the terminal user interface for podium.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/podium/internal/tui/theme"
	"github.com/javiermolinar/podium/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Header
	TitleStyle    lipgloss.Style
	MetaStyle     lipgloss.Style
	OnlineStyle   lipgloss.Style
	OfflineStyle  lipgloss.Style
	CheckingStyle lipgloss.Style

	// Ranking table
	TableHeaderStyle lipgloss.Style
	TableBorderStyle lipgloss.Style
	RowStyle         lipgloss.Style
	RowAltStyle      lipgloss.Style
	GoldRowStyle     lipgloss.Style
	SilverRowStyle   lipgloss.Style
	BronzeRowStyle   lipgloss.Style
	TopBadgeStyle    lipgloss.Style
	TrendUpStyle     lipgloss.Style
	TrendDownStyle   lipgloss.Style
	TrendFlatStyle   lipgloss.Style

	// Loading and empty states
	SpinnerStyle lipgloss.Style
	LoadingStyle lipgloss.Style
	EmptyStyle   lipgloss.Style

	// Pagination bar
	PageButtonStyle   lipgloss.Style
	PageCurrentStyle  lipgloss.Style
	PageDisabledStyle lipgloss.Style
	PageLabelStyle    lipgloss.Style
	PageSepStyle      lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	NoticeStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Error panel
	PanelBg                lipgloss.Color
	PanelStyle             lipgloss.Style
	PanelTitleStyle        lipgloss.Style
	PanelBodyStyle         lipgloss.Style
	PanelHintStyle         lipgloss.Style
	PanelButtonStyle       lipgloss.Style
	PanelButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning

	base := lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.TitleStyle = base.
		Bold(true).
		Foreground(s.colorAccent)
	s.MetaStyle = base.Foreground(s.colorFgMuted)
	s.OnlineStyle = base.Foreground(palette.Online).Bold(true)
	s.OfflineStyle = base.Foreground(palette.Offline).Bold(true)
	s.CheckingStyle = base.Foreground(s.colorWarning)

	s.TableHeaderStyle = base.
		Bold(true).
		Foreground(s.colorAccent).
		Padding(0, 1)
	s.TableBorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)
	s.RowStyle = base.Padding(0, 1)
	s.RowAltStyle = s.RowStyle.Background(palette.RowAlt)

	// Podium rows: medal text over a washed medal background.
	s.GoldRowStyle = s.RowStyle.
		Background(palette.GoldBg).
		Foreground(palette.Gold).
		Bold(true)
	s.SilverRowStyle = s.RowStyle.
		Background(palette.SilverBg).
		Foreground(palette.Silver).
		Bold(true)
	s.BronzeRowStyle = s.RowStyle.
		Background(palette.BronzeBg).
		Foreground(palette.Bronze).
		Bold(true)
	s.TopBadgeStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Bold(true)

	s.TrendUpStyle = lipgloss.NewStyle().Foreground(palette.Up)
	s.TrendDownStyle = lipgloss.NewStyle().Foreground(palette.Down)
	s.TrendFlatStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.SpinnerStyle = base.Foreground(s.colorAccent)
	s.LoadingStyle = base.Foreground(s.colorFgMuted).Padding(1, 2)
	s.EmptyStyle = base.Foreground(s.colorFgMuted).Padding(1, 2)

	s.PageButtonStyle = base
	s.PageCurrentStyle = base.
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent)
	s.PageDisabledStyle = base.Foreground(s.colorBgSelection)
	s.PageLabelStyle = base.Foreground(s.colorFgMuted)
	s.PageSepStyle = base

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = base.Foreground(s.colorWarning)
	s.NoticeStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Italic(true)
	s.HelpStyle = base.Foreground(s.colorFgMuted)

	// Error panel
	s.PanelBg = palette.Panel.Bg
	onPanel := lipgloss.NewStyle().Background(s.PanelBg).Foreground(palette.Panel.Text)
	s.PanelStyle = onPanel.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Panel.Border).
		BorderBackground(s.PanelBg).
		Padding(1, 2).
		Width(56)
	s.PanelTitleStyle = onPanel.Bold(true).Foreground(palette.Warning)
	s.PanelBodyStyle = onPanel
	s.PanelHintStyle = onPanel.Foreground(palette.Panel.Muted).Italic(true)
	s.PanelButtonStyle = onPanel.Background(palette.Panel.Button).Padding(0, 2)
	s.PanelButtonActiveStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 2)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, 1)

	return s
}

func (s *Styles) headerStyles() view.HeaderStyles {
	return view.HeaderStyles{
		Title:    s.TitleStyle,
		Meta:     s.MetaStyle,
		Online:   s.OnlineStyle,
		Offline:  s.OfflineStyle,
		Checking: s.CheckingStyle,
		Bg:       s.colorBg,
	}
}

func (s *Styles) rankingStyles() view.RankingStyles {
	return view.RankingStyles{
		Header:   s.TableHeaderStyle,
		Row:      s.RowStyle,
		RowAlt:   s.RowAltStyle,
		Gold:     s.GoldRowStyle,
		Silver:   s.SilverRowStyle,
		Bronze:   s.BronzeRowStyle,
		TopBadge: s.TopBadgeStyle,
		Up:       s.TrendUpStyle,
		Down:     s.TrendDownStyle,
		Flat:     s.TrendFlatStyle,
	}
}

func (s *Styles) paginationStyles() view.PaginationStyles {
	return view.PaginationStyles{
		Button:   s.PageButtonStyle,
		Current:  s.PageCurrentStyle,
		Disabled: s.PageDisabledStyle,
		Label:    s.PageLabelStyle,
		Sep:      s.PageSepStyle,
	}
}

func (s *Styles) panelStyles() view.PanelStyles {
	return view.PanelStyles{
		Frame:        s.PanelStyle,
		Title:        s.PanelTitleStyle,
		Body:         s.PanelBodyStyle,
		Notice:       s.NoticeStyle.Background(s.PanelBg),
		Hint:         s.PanelHintStyle,
		Button:       s.PanelButtonStyle,
		ButtonActive: s.PanelButtonActiveStyle,
	}
}
