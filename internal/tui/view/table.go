package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/javiermolinar/podium/internal/leaderboard"
)

// Ranking table columns.
const (
	ColRank = iota
	ColID
	ColName
	ColBadge
	ColScore
	ColTrend
)

// RankingHeaders are the ranking table column titles.
var RankingHeaders = []string{"Rank", "ID", "Name", "", "Score", "Trend"}

// Fixed column widths; the name column takes whatever is left.
const (
	rankColW  = 6
	idColW    = 10
	badgeColW = 5
	scoreColW = 14
	trendColW = 7
	// Left and right table borders.
	tableChromeW = 2
)

// NameColumnWidth returns the width left for names in a table innerW wide.
func NameColumnWidth(innerW int) int {
	w := innerW - 2 - tableChromeW - rankColW - idColW - badgeColW - scoreColW - trendColW
	if w < 8 {
		return 8
	}
	return w
}

// RankingStyles holds the styles for ranking rows.
type RankingStyles struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	RowAlt   lipgloss.Style
	Gold     lipgloss.Style
	Silver   lipgloss.Style
	Bronze   lipgloss.Style
	TopBadge lipgloss.Style
	Up       lipgloss.Style
	Down     lipgloss.Style
	Flat     lipgloss.Style
}

// RankingHeaderStyles returns one header style per ranking column.
func RankingHeaderStyles(styles RankingStyles) []lipgloss.Style {
	out := make([]lipgloss.Style, len(RankingHeaders))
	for i := range out {
		out[i] = styles.Header
	}
	out[ColScore] = styles.Header.Align(lipgloss.Right)
	out[ColTrend] = styles.Header.Align(lipgloss.Center)
	return out
}

// RankingContent builds table rows and cell styles for one page of entrants.
// Rows for ranks 1-3 take the medal style and carry a TOP badge.
func RankingContent(items []leaderboard.Entrant, nameW int, styles RankingStyles) TableContent {
	rows := make([][]string, 0, len(items))
	cellStyles := make([][]lipgloss.Style, 0, len(items))

	for i, e := range items {
		row := rowStyle(e.Rank, i, styles)
		nameFit := nameW - row.GetHorizontalFrameSize()

		badge := ""
		if e.IsTop() {
			badge = "TOP"
		}
		rows = append(rows, []string{
			strconv.Itoa(e.Rank),
			FormatID(e.ID),
			FitName(e.Name, nameFit),
			badge,
			FormatNumber(e.Score),
			TrendGlyph(e.Trend),
		})

		trend := styles.Flat
		switch e.Trend {
		case leaderboard.TrendUp:
			trend = styles.Up
		case leaderboard.TrendDown:
			trend = styles.Down
		}

		cellStyles = append(cellStyles, []lipgloss.Style{
			row.Width(rankColW),
			row.Width(idColW),
			row.Width(nameW),
			styles.TopBadge.Inherit(row).Width(badgeColW),
			row.Width(scoreColW).Align(lipgloss.Right),
			trend.Inherit(row).Width(trendColW).Align(lipgloss.Center),
		})
	}

	return TableContent{Rows: rows, CellStyles: cellStyles}
}

func rowStyle(rank, index int, styles RankingStyles) lipgloss.Style {
	switch rank {
	case 1:
		return styles.Gold
	case 2:
		return styles.Silver
	case 3:
		return styles.Bronze
	}
	if index%2 == 1 {
		return styles.RowAlt
	}
	return styles.Row
}

// TableContent contains table rows and cell styles.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// TableViewState holds data needed to render the ranking table.
type TableViewState struct {
	InnerW       int
	GridH        int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      TableContent
	BorderStyle  lipgloss.Style
	VAlign       lipgloss.Position
	Bg           lipgloss.Color
	Render       bool
}

// RenderTable renders the ranking table using a lipgloss table.
// A GridH of zero lets the table take its natural height.
func RenderTable(state TableViewState) string {
	if !state.Render || state.GridH < 0 {
		return ""
	}

	tableWidth := state.InnerW - 2
	if tableWidth < 0 {
		tableWidth = 0
	}
	t := table.New().
		Headers(state.Headers...).
		Width(tableWidth).
		Border(lipgloss.RoundedBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderLeft(true).
		BorderRight(true).
		BorderHeader(true).
		BorderColumn(false).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Content.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(state.HeaderStyles) {
					return state.HeaderStyles[col]
				}
				return lipgloss.NewStyle()
			}
			if row < 0 || row >= len(state.Content.CellStyles) || col < 0 || col >= len(state.Content.CellStyles[row]) {
				return lipgloss.NewStyle()
			}
			return state.Content.CellStyles[row][col]
		})

	if state.GridH > 0 {
		t = t.Height(state.GridH)
	}

	grid := t.Render()
	if state.GridH == 0 {
		return PadLinesWithBackground(grid, state.InnerW, lipgloss.Height(grid), state.Bg)
	}
	return PlaceBox(state.InnerW, state.GridH, state.VAlign, grid, state.Bg)
}
