package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/podium/internal/dashboard"
)

// PlainPage renders the shown page as unstyled text for the clipboard.
func PlainPage(screen dashboard.Screen) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Leaderboard (%s)\n", QuerySummary(screen.Query))
	nameW := 4
	for _, e := range screen.Items {
		nameW = max(nameW, runewidth.StringWidth(e.Name))
	}
	for _, e := range screen.Items {
		badge := ""
		if e.IsTop() {
			badge = " TOP"
		}
		fmt.Fprintf(&b, "%4d  %s  %12s  %s%s\n",
			e.Rank,
			runewidth.FillRight(e.Name, nameW),
			FormatNumber(e.Score),
			TrendGlyph(e.Trend),
			badge,
		)
	}
	b.WriteString(screen.Pagination.RangeLabel)
	return b.String()
}
