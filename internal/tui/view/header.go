package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/podium/internal/dashboard"
	"github.com/javiermolinar/podium/internal/leaderboard"
)

// HeaderModel holds what the two header lines show.
type HeaderModel struct {
	Width       int
	Title       string
	Server      dashboard.ServerStatus
	Query       leaderboard.Query
	LastRefresh time.Time
}

// HeaderStyles groups header styles.
type HeaderStyles struct {
	Title    lipgloss.Style
	Meta     lipgloss.Style
	Online   lipgloss.Style
	Offline  lipgloss.Style
	Checking lipgloss.Style
	Bg       lipgloss.Color
}

// ServerBadge renders the server status badge.
func ServerBadge(status dashboard.ServerStatus, styles HeaderStyles) string {
	style := styles.Checking
	switch status {
	case dashboard.ServerOnline:
		style = styles.Online
	case dashboard.ServerOffline:
		style = styles.Offline
	}
	return style.Render("● " + status.String())
}

// RenderHeader renders the title and badge line above the query and refresh line.
func RenderHeader(model HeaderModel, styles HeaderStyles) string {
	title := styles.Title.Render(model.Title)
	badge := ServerBadge(model.Server, styles)
	summary := styles.Meta.Render(QuerySummary(model.Query))
	refresh := styles.Meta.Render("updated " + FormatRefresh(model.LastRefresh))

	lines := []string{
		spreadLine(title, badge, model.Width, styles.Bg),
		spreadLine(summary, refresh, model.Width, styles.Bg),
	}
	return strings.Join(lines, "\n")
}

// spreadLine puts left and right at opposite ends of a line width cells wide.
// The right side is dropped when both do not fit.
func spreadLine(left, right string, width int, bg lipgloss.Color) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return PadLinesWithBackground(left, width, 1, bg)
	}
	fill := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap))
	return left + fill + right
}
