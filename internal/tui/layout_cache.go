package tui

import "github.com/charmbracelet/lipgloss"

const (
	headerLines = 3 // title, query summary, spacer

	footerCompact         = 3 // pagination, status, help
	footerBaseLines       = 3
	promptBorderLines     = 2
	promptMinContentLines = 1
	promptMaxContentLines = 3
	footerFullMinHeight   = 16

	minBodyLines = 3
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH    int
	BodyH      int
	FooterH    int
	FullFooter bool

	PaginationStyle    lipgloss.Style
	StatusAuxStyle     lipgloss.Style
	HelpAuxStyle       lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

func promptContentWidth(styles *Styles, innerW int) int {
	promptFrameW, _ := styles.PromptStyle.GetFrameSize()
	promptWidth := innerW - promptFrameW
	if promptWidth < 0 {
		promptWidth = 0
	}
	return promptWidth
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	promptWidth := promptContentWidth(styles, innerW)

	footerH := footerCompact
	full := false
	if innerH >= footerFullMinHeight {
		promptLines := len(m.promptLines(promptWidth))
		promptLines = min(max(promptLines, promptMinContentLines), promptMaxContentLines)
		footerH = footerBaseLines + promptBorderLines + promptLines
		full = true
	}

	headerH := min(headerLines, innerH)
	bodyH := max(innerH-headerH-footerH, minBodyLines)

	lineStyle := lipgloss.NewStyle().
		Width(innerW).
		Background(styles.colorBg)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		HeaderH:            headerH,
		BodyH:              bodyH,
		FooterH:            footerH,
		FullFooter:         full,
		PaginationStyle:    lineStyle,
		StatusAuxStyle:     styles.StatusStyle.Inherit(lineStyle),
		HelpAuxStyle:       styles.HelpStyle.Inherit(lineStyle),
		PromptStyle:        styles.PromptStyle,
		PromptFocusedStyle: styles.PromptFocusedStyle,
		PromptContentWidth: promptWidth,
	}
}
