package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/podium/internal/leaderboard"
)

// LoadingText follows the spinner while a fetch is in flight.
const LoadingText = "Loading leaderboard..."

// RenderLoading renders the spinner line.
func RenderLoading(spinner string, style lipgloss.Style) string {
	return style.Render(spinner + " " + LoadingText)
}

// EmptyMessage explains an empty page.
func EmptyMessage(q leaderboard.Query) string {
	if q.SearchTerm != "" {
		return "No entrants match " + strconv.Quote(q.SearchTerm) + ". Press x to clear the search."
	}
	return "No entrants found."
}

// RenderEmpty renders the empty state message.
func RenderEmpty(q leaderboard.Query, style lipgloss.Style) string {
	return style.Render("ⓘ " + EmptyMessage(q))
}
