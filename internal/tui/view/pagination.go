package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/podium/internal/dashboard"
)

// PaginationStyles groups pagination bar styles.
type PaginationStyles struct {
	Button   lipgloss.Style
	Current  lipgloss.Style
	Disabled lipgloss.Style
	Label    lipgloss.Style
	Sep      lipgloss.Style
}

// RenderPagination renders the page buttons followed by the range label.
// Only the label is shown when there is a single page.
func RenderPagination(p dashboard.Pagination, styles PaginationStyles) string {
	label := styles.Label.Render(p.RangeLabel)
	if !p.Visible {
		return label
	}

	prev := styles.Button.Render("‹")
	if p.PrevDisabled {
		prev = styles.Disabled.Render("‹")
	}
	next := styles.Button.Render("›")
	if p.NextDisabled {
		next = styles.Disabled.Render("›")
	}

	parts := make([]string, 0, len(p.Pages)+2)
	parts = append(parts, prev)
	for _, n := range p.Pages {
		if n == p.Current {
			parts = append(parts, styles.Current.Render("["+strconv.Itoa(n)+"]"))
			continue
		}
		parts = append(parts, styles.Button.Render(strconv.Itoa(n)))
	}
	parts = append(parts, next)

	sep := styles.Sep.Render(" ")
	return strings.Join(parts, sep) + styles.Sep.Render("   ") + label
}
