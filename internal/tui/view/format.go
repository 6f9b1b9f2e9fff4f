// Package view provides rendering helpers for the TUI.
package view

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/podium/internal/leaderboard"
)

// FormatNumber formats v with thousands separators and up to three decimals.
// Trailing zero decimals are dropped.
func FormatNumber(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop negative zero
	}
	return humanize.CommafWithDigits(r, 3)
}

// FormatID formats an entrant id with thousands separators.
func FormatID(id int64) string {
	return humanize.Comma(id)
}

// TrendGlyph returns the arrow shown for a trend.
func TrendGlyph(t leaderboard.Trend) string {
	switch t {
	case leaderboard.TrendUp:
		return "▲"
	case leaderboard.TrendDown:
		return "▼"
	default:
		return "-"
	}
}

// FitName truncates name to width cells, marking the cut with an ellipsis.
func FitName(name string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width, "…")
}

// FormatRefresh renders the last refresh stamp as a wall clock time.
func FormatRefresh(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("15:04:05")
}

// QuerySummary describes the active query in one line.
func QuerySummary(q leaderboard.Query) string {
	parts := []string{
		"sort: " + string(q.SortField),
		strconv.Itoa(q.PageSize) + "/page",
	}
	if q.SearchTerm != "" {
		parts = append(parts, "search: "+strconv.Quote(q.SearchTerm))
	}
	return strings.Join(parts, " · ")
}
