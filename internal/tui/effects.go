package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/podium/internal/dashboard"
	"github.com/javiermolinar/podium/internal/tui/commands"
)

// effectCmds turns controller effects into commands. Effects that only touch
// local widgets (scroll, search input) are applied by apply instead.
func (m Model) effectCmds(effects []dashboard.Effect) []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e.Kind {
		case dashboard.EffectFetch:
			cmds = append(cmds, commands.Fetch(m.fetcher, e.Ticket, e.Delay))
		case dashboard.EffectProbe:
			cmds = append(cmds, commands.Probe(m.health, e.Reason))
		}
	}
	return cmds
}

// apply runs controller effects against the model and returns the
// resulting command, then syncs the ranking view with the new screen.
func (m *Model) apply(effects []dashboard.Effect) tea.Cmd {
	for _, e := range effects {
		switch e.Kind {
		case dashboard.EffectScrollTop:
			m.viewport.GotoTop()
		case dashboard.EffectClearSearch:
			if m.inputMode == InputSearch {
				m.closePrompt()
			}
			m.input.Reset()
		}
	}
	m.syncViewport()
	return tea.Batch(m.effectCmds(effects)...)
}
