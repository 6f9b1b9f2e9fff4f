package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterStyles styles the footer rows.
type FooterStyles struct {
	Pagination    lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Prompt        lipgloss.Style
	PromptFocused lipgloss.Style
}

// Footer is the bottom block: pagination, the prompt box when there is room
// for it, status and help.
type Footer struct {
	Width  int
	Height int
	// Full reserves the prompt box. Compact footers skip it.
	Full       bool
	Pagination string
	Status     string
	Help       string
	// Prompt holds the open prompt's rows, nil when closed.
	Prompt []string
	// PromptRows is how many rows the closed prompt box keeps.
	PromptRows int
	Styles     FooterStyles
	Bg         lipgloss.Color
}

// RenderFooter renders f bottom-aligned in its box.
func RenderFooter(f Footer) string {
	if f.Height <= 0 {
		return ""
	}
	rows := []string{fitRow(f.Width, f.Styles.Pagination, f.Pagination)}
	if f.Full {
		rows = append(rows, f.promptBox())
	}
	rows = append(rows,
		fitRow(f.Width, f.Styles.Status, f.Status),
		fitRow(f.Width, f.Styles.Help, f.Help),
	)
	return PlaceBox(f.Width, f.Height, lipgloss.Bottom, strings.Join(rows, "\n"), f.Bg)
}

func (f Footer) promptBox() string {
	if f.Prompt != nil {
		return RenderPromptBox(f.Width, f.Styles.PromptFocused, f.Prompt)
	}
	return RenderPromptBox(f.Width, f.Styles.Prompt, make([]string, max(f.PromptRows, 1)))
}

// fitRow renders content on one row of width cells, cutting what overflows.
func fitRow(width int, style lipgloss.Style, content string) string {
	inner := max(width-style.GetHorizontalFrameSize(), 0)
	if inner > 0 {
		content = ansi.Truncate(content, inner, "")
	}
	return style.Width(inner).Render(content)
}
