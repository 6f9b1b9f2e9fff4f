package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const suggestionHead = "  try: "

// PromptState is an open prompt.
type PromptState struct {
	Label       string // "search", "page size"
	Value       string
	Cursor      string
	Suggestions []string // already filtered to Value
}

// PromptLines lays out the input row, then the suggestions, wrapped to width.
func PromptLines(p PromptState, width int) []string {
	head := "> "
	if p.Label != "" {
		head = p.Label + head
	}
	lines := hangingWrap(head, p.Value+p.Cursor, width)
	if len(p.Suggestions) > 0 {
		lines = append(lines, hangingWrap(suggestionHead, strings.Join(p.Suggestions, "  "), width)...)
	}
	return lines
}

// ClampPromptLines keeps at most maxLines rows and marks the last kept row
// with an ellipsis when something was dropped.
func ClampPromptLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	out := append([]string(nil), lines[:maxLines]...)
	out[maxLines-1] = withEllipsis(out[maxLines-1], width)
	return out
}

func withEllipsis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) < width {
		return s + "…"
	}
	return runewidth.Truncate(s, width-1, "") + "…"
}

// RenderPromptBox renders rows inside the prompt frame at the given outer
// width. lipgloss widths include padding, so only the border is taken off.
func RenderPromptBox(width int, style lipgloss.Style, rows []string) string {
	inner := max(width-style.GetHorizontalBorderSize(), 0)
	if len(rows) == 0 {
		rows = []string{""}
	}
	return style.Width(inner).Render(strings.Join(rows, "\n"))
}

// hangingWrap wraps text to width. The first row starts with head and later
// rows are indented to line up under it.
func hangingWrap(head, text string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	headW := runewidth.StringWidth(head)
	rows := wrapWords(text, max(width-headW, 0), max(width-headW, 0))
	indent := strings.Repeat(" ", headW)
	for i := range rows {
		if i == 0 {
			rows[i] = head + rows[i]
		} else {
			rows[i] = indent + rows[i]
		}
	}
	return rows
}

// wrapWords breaks s on spaces into rows of at most first cells for the first
// row and rest cells after that. Runs of spaces inside a row are kept. Words
// wider than a row are split.
func wrapWords(s string, first, rest int) []string {
	if first <= 0 || rest <= 0 {
		return []string{""}
	}

	var (
		rows  []string
		row   strings.Builder
		rowW  int
		limit = first
		open  bool
	)
	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		rowW, limit, open = 0, rest, false
	}

	for _, word := range strings.Split(s, " ") {
		w := runewidth.StringWidth(word)
		if open && rowW+1+w > limit {
			flush()
		}
		if open {
			row.WriteByte(' ')
			rowW++
		}
		for w > limit-rowW {
			part := runewidth.Truncate(word, limit-rowW, "")
			if part == "" {
				part = string([]rune(word)[:1])
			}
			row.WriteString(part)
			word = word[len(part):]
			w = runewidth.StringWidth(word)
			flush()
		}
		row.WriteString(word)
		rowW += w
		open = true
	}
	return append(rows, row.String())
}
