package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox places content in a w×h box, filling the gaps with bg.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content, lipgloss.WithWhitespaceBackground(bg))
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground makes content exactly height lines, each padded to
// width with bg. Lines already wider than width are left alone.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	fill := lipgloss.NewStyle().Background(bg)
	src := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(src) {
			line = src[i]
		}
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += fill.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// Overlay centers panel over base, a width×height screen. Base cells outside
// the panel box are kept, so whatever was on screen stays visible around it.
func Overlay(base, panel string, width, height int, panelBg lipgloss.Color) string {
	box := panelBox(panel, width, panelBg)
	if len(box) == 0 {
		return base
	}
	boxW := lipgloss.Width(box[0])
	top := max((height-len(box))/2, 0)
	left := max((width-boxW)/2, 0)

	rows := strings.Split(PadLinesWithBackground(base, width, height, ""), "\n")
	for i, line := range box {
		if r := top + i; r < len(rows) {
			rows[r] = spliceRow(rows[r], line, left, boxW, width)
		}
	}
	return strings.Join(rows, "\n")
}

// panelBox normalizes panel lines to a common width no wider than maxW, with
// the panel background held across any resets inside a line.
func panelBox(panel string, maxW int, bg lipgloss.Color) []string {
	if panel == "" {
		return nil
	}
	lines := strings.Split(panel, "\n")
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, lipgloss.Width(l))
	}
	boxW = min(boxW, maxW)
	if boxW <= 0 {
		return nil
	}
	fill := lipgloss.NewStyle().Background(bg)
	for i, l := range lines {
		if w := lipgloss.Width(l); w > boxW {
			l = ansi.Cut(l, 0, boxW)
		} else if w < boxW {
			l += fill.Render(strings.Repeat(" ", boxW-w))
		}
		lines[i] = holdBackground(l, bg) + ansi.ResetStyle
	}
	return lines
}

// spliceRow replaces cells [left, left+w) of row with insert.
func spliceRow(row, insert string, left, w, width int) string {
	return ansi.Cut(row, 0, left) + insert + ansi.Cut(row, left+w, width)
}

// holdBackground re-emits bg after every sequence that would clear it.
func holdBackground(line string, bg lipgloss.Color) string {
	if bg == "" {
		return line
	}
	seq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+seq)
	}
	return line
}
