package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/podium/internal/debuglog"
	"github.com/javiermolinar/podium/internal/tui/commands"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case tea.FocusMsg:
		// The window became visible again.
		cmd := m.apply(m.ctrl.Visible())
		return m, cmd

	case commands.NetEventMsg:
		debuglog.Log("NET_EVENT", map[string]any{"online": msg.Event.Online})
		var cmd tea.Cmd
		if msg.Event.Online {
			cmd = m.apply(m.ctrl.Online())
		} else {
			cmd = m.apply(m.ctrl.Offline())
		}
		if m.netEvents != nil {
			cmd = tea.Batch(cmd, commands.WaitNetEvent(m.netEvents))
		}
		return m, cmd

	case commands.FetchResultMsg:
		cmd := m.apply(m.ctrl.FetchDone(msg.Ticket, msg.Result, msg.Err))
		return m, cmd

	case commands.ProbeResultMsg:
		cmd := m.apply(m.ctrl.ProbeDone(msg.Reason, msg.Online))
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.ErrMsg:
		debuglog.Error("tui", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(errorDuration)
		return m, commands.ClearStatusAfter(errorDuration)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(statusDuration)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// relayout recomputes the layout for the current window and prompt.
func (m *Model) relayout() {
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	m.viewport.Width = m.layoutCache.InnerW
	m.viewport.Height = m.layoutCache.BodyH
	m.syncViewport()
}

// syncViewport renders the current page into the scrollable ranking view.
func (m *Model) syncViewport() {
	screen := m.ctrl.Screen()
	m.viewport.SetContent(m.renderRanking(screen.Items))
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(statusDuration)
	return commands.ClearStatusAfter(statusDuration)
}
