package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/podium/internal/dashboard"
	"github.com/javiermolinar/podium/internal/leaderboard"
	"github.com/javiermolinar/podium/internal/tui/view"
)

// Column widths for plain ranking output. The name column takes the rest.
const (
	rankW    = 5
	idW      = 10
	badgeW   = 4 // " TOP"
	scoreW   = 14
	trendW   = 1
	gapW     = 2
	minNameW = 8
	maxNameW = 40
)

// NameWidth returns the name column width for a terminal of width tw.
func NameWidth(tw int) int {
	w := tw - rankW - idW - badgeW - scoreW - trendW - 4*gapW
	return min(max(w, minNameW), maxNameW)
}

// FormatRankingRow formats a single entrant line. Podium ranks take their
// medal color and carry a TOP badge.
func FormatRankingRow(e leaderboard.Entrant, nameW int) string {
	name := padRight(view.FitName(e.Name, nameW), nameW)
	badge := strings.Repeat(" ", badgeW)
	if e.IsTop() {
		badge = " TOP"
	}

	rank := fmt.Sprintf("%*d", rankW, e.Rank)
	if c := medalColor(e.Rank); c != nil {
		rank = c.Sprint(rank)
		name = c.Sprint(name)
		badge = c.Sprint(badge)
	}

	return fmt.Sprintf("%s  %*s  %s%s  %*s  %s",
		rank,
		idW, view.FormatID(e.ID),
		name,
		badge,
		scoreW, view.FormatNumber(e.Score),
		formatTrend(e.Trend),
	)
}

// PrintRanking writes one page of results followed by a summary line.
func PrintRanking(w io.Writer, q leaderboard.Query, rs leaderboard.ResultSet, width int) {
	if len(rs.Items) == 0 {
		_, _ = fmt.Fprintln(w, view.EmptyMessage(q))
		return
	}

	nameW := NameWidth(width)
	header := fmt.Sprintf("%*s  %*s  %s%s  %*s  %s",
		rankW, "Rank",
		idW, "ID",
		padRight("Name", nameW),
		strings.Repeat(" ", badgeW),
		scoreW, "Score",
		"T",
	)
	_, _ = fmt.Fprintln(w, formatHeader(strings.TrimRight(header, " ")))

	for _, e := range rs.Items {
		_, _ = fmt.Fprintln(w, FormatRankingRow(e, nameW))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, formatMuted(PageSummary(q, rs)))
}

// PageSummary describes the page position and active query.
func PageSummary(q leaderboard.Query, rs leaderboard.ResultSet) string {
	p := dashboard.NewPagination(q.Page, rs.TotalPages, rs.TotalCount, q.PageSize)
	return fmt.Sprintf("%s · page %s/%s · %s", p.RangeLabel,
		humanize.Comma(int64(q.Page)), humanize.Comma(int64(max(rs.TotalPages, 1))), view.QuerySummary(q))
}

func formatTrend(t leaderboard.Trend) string {
	glyph := view.TrendGlyph(t)
	switch t {
	case leaderboard.TrendUp:
		return colorUp.Sprint(glyph)
	case leaderboard.TrendDown:
		return colorDown.Sprint(glyph)
	default:
		return formatMuted(glyph)
	}
}

func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
