package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/podium/internal/dashboard"
)

// staleHint sits under the error message when rows from an earlier load
// remain visible behind the panel.
const staleHint = "The list behind this panel is from the last successful load."

// PanelStyles styles the error panel. Every style is expected to carry the
// panel background so text does not punch holes through it.
type PanelStyles struct {
	Frame        lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
	Notice       lipgloss.Style
	Hint         lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// ErrorPanel is what the error panel shows.
type ErrorPanel struct {
	Title      string
	Message    string
	Notice     string
	StaleRows  int
	Recoveries []dashboard.Recovery
	// Compact drops the button padding for narrow terminals.
	Compact bool
}

var recoveryKeys = map[dashboard.Recovery]string{
	dashboard.RecoverRetry:       "r",
	dashboard.RecoverCheckServer: "c",
}

// RenderErrorPanel renders the framed panel: title, message, optional notice
// and stale hint, then one button per recovery plus quit.
func RenderErrorPanel(p ErrorPanel, s PanelStyles) string {
	sections := []string{s.Title.Render(p.Title), panelBody(p, s)}
	if buttons := panelButtons(p.Recoveries, p.Compact, s); buttons != "" {
		sections = append(sections, buttons)
	}
	return s.Frame.Render(strings.Join(sections, "\n\n"))
}

func panelBody(p ErrorPanel, s PanelStyles) string {
	parts := []string{s.Body.Render("⚠ " + p.Message)}
	if p.Notice != "" {
		parts = append(parts, s.Notice.Render(p.Notice))
	}
	if p.StaleRows > 0 {
		parts = append(parts, s.Hint.Render(staleHint))
	}
	return strings.Join(parts, "\n\n")
}

// panelButtons lays out the recovery buttons. The first one is highlighted
// since enter triggers it.
func panelButtons(recoveries []dashboard.Recovery, compact bool, s PanelStyles) string {
	labels := make([]string, 0, len(recoveries)+1)
	for _, r := range recoveries {
		labels = append(labels, "["+recoveryKeys[r]+"] "+r.Label())
	}
	labels = append(labels, "[q] Quit")

	idle, active := s.Button, s.ButtonActive
	if compact {
		idle, active = idle.Padding(0, 1), active.Padding(0, 1)
	}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if i == 0 {
			rendered[i] = active.Render(label)
		} else {
			rendered[i] = idle.Render(label)
		}
	}
	return strings.Join(rendered, s.Body.Render(" "))
}
