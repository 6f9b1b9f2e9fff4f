package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/podium/internal/dashboard"
	"github.com/javiermolinar/podium/internal/leaderboard"
	"github.com/javiermolinar/podium/internal/tui/view"
)

const (
	appTitle        = "Podium"
	errorPanelTitle = "Leaderboard unavailable"
	// Below this width the error panel uses compact buttons.
	compactPanelWidth = 64
)

// View renders the UI.
func (m Model) View() string {
	screen := m.ctrl.Screen()
	state := view.ViewState{
		Width:  m.width,
		Height: m.height,
		Base:   m.renderApp(screen),
	}
	if screen.Mode == dashboard.ModeError {
		// The panel floats over the rows from the last good load.
		state.Panel = m.renderErrorPanel(screen)
		state.PanelBg = m.styles.PanelBg
	}
	return view.Render(state)
}

func (m Model) renderApp(screen dashboard.Screen) string {
	content := strings.Join([]string{
		m.renderHeader(screen),
		m.renderBody(screen),
		m.renderFooter(screen),
	}, "\n")
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderHeader(screen dashboard.Screen) string {
	lc := m.layoutCache
	header := view.RenderHeader(view.HeaderModel{
		Width:       lc.InnerW,
		Title:       appTitle,
		Server:      screen.Server,
		Query:       screen.Query,
		LastRefresh: screen.LastRefresh,
	}, m.styles.headerStyles())
	return view.PlaceBox(lc.InnerW, lc.HeaderH, lipgloss.Top, header, m.styles.colorBg)
}

func (m Model) renderBody(screen dashboard.Screen) string {
	lc := m.layoutCache
	var body string
	switch screen.Mode {
	case dashboard.ModeLoading:
		body = view.RenderLoading(m.spinner.View(), m.styles.LoadingStyle)
	case dashboard.ModeEmpty:
		body = view.RenderEmpty(screen.Query, m.styles.EmptyStyle)
	default:
		// Populated, or the error panel over whatever was last loaded.
		body = m.viewport.View()
	}
	return view.PlaceBox(lc.InnerW, lc.BodyH, lipgloss.Top, body, m.styles.colorBg)
}

// renderRanking renders one page of entrants as a table.
func (m Model) renderRanking(items []leaderboard.Entrant) string {
	innerW := m.layoutCache.InnerW
	if len(items) == 0 || innerW <= 0 {
		return ""
	}
	rs := m.styles.rankingStyles()
	return view.RenderTable(view.TableViewState{
		InnerW:       innerW,
		Headers:      view.RankingHeaders,
		HeaderStyles: view.RankingHeaderStyles(rs),
		Content:      view.RankingContent(items, view.NameColumnWidth(innerW), rs),
		BorderStyle:  m.styles.TableBorderStyle,
		VAlign:       lipgloss.Top,
		Bg:           m.styles.colorBg,
		Render:       true,
	})
}

func (m Model) renderFooter(screen dashboard.Screen) string {
	lc := m.layoutCache

	pagination := ""
	if screen.Mode != dashboard.ModeLoading {
		pagination = view.RenderPagination(screen.Pagination, m.styles.paginationStyles())
	}

	status := m.statusMsg
	if status == "" && screen.Notice != "" && screen.Mode != dashboard.ModeError {
		status = screen.Notice
	}

	promptLines := view.ClampPromptLines(m.promptLines(lc.PromptContentWidth), m.promptMaxContentLines(), lc.PromptContentWidth)
	if !lc.FullFooter && m.promptActive() && len(promptLines) > 0 {
		// No room for the prompt box; type on the status line.
		status = promptLines[0]
	}

	return view.RenderFooter(view.Footer{
		Width:      lc.InnerW,
		Height:     lc.FooterH,
		Full:       lc.FullFooter,
		Pagination: pagination,
		Status:     status,
		Help:       m.helpText(screen.Mode),
		Prompt:     promptLines,
		PromptRows: m.promptMaxContentLines(),
		Styles: view.FooterStyles{
			Pagination:    lc.PaginationStyle,
			Status:        lc.StatusAuxStyle,
			Help:          lc.HelpAuxStyle,
			Prompt:        lc.PromptStyle,
			PromptFocused: lc.PromptFocusedStyle,
		},
		Bg: m.styles.colorBg,
	})
}

func (m Model) helpText(mode dashboard.Mode) string {
	switch {
	case m.promptActive():
		if m.inputMode == InputPageSize {
			return "enter apply · tab complete · esc cancel"
		}
		return "enter search · esc cancel"
	case mode == dashboard.ModeError:
		return "r retry · c check server · q quit"
	default:
		return "/ search · s sort · [ ] z size · h l 1-5 page · x reset · r refresh · y copy · q quit"
	}
}

func (m Model) renderErrorPanel(screen dashboard.Screen) string {
	return view.RenderErrorPanel(view.ErrorPanel{
		Title:      errorPanelTitle,
		Message:    screen.Message,
		Notice:     screen.Notice,
		StaleRows:  len(screen.Items),
		Recoveries: screen.Recoveries,
		Compact:    m.width < compactPanelWidth,
	}, m.styles.panelStyles())
}
