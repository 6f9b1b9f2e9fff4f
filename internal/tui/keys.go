package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/podium/internal/dashboard"
	"github.com/javiermolinar/podium/internal/debuglog"
	"github.com/javiermolinar/podium/internal/tui/commands"
	"github.com/javiermolinar/podium/internal/tui/input"
	"github.com/javiermolinar/podium/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	debuglog.Log("KEY", map[string]any{
		"key":    key,
		"prompt": m.inputMode.String(),
		"mode":   m.ctrl.Mode().String(),
	})

	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.promptActive() {
		return m.handlePromptKey(msg)
	}
	if m.ctrl.Mode() == dashboard.ModeError {
		return m.handleErrorKey(key)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		return m.submitPrompt()

	case "tab":
		if completed, ok := input.Autocomplete(m.input.Value(), m.promptSuggestions()); ok {
			m.input.SetValue(completed)
			m.input.CursorEnd()
			m.relayout()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.relayout()
	return m, cmd
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	mode := m.inputMode
	m.closePrompt()

	switch mode {
	case InputSearch:
		cmd := m.apply(m.ctrl.Search(value))
		return m, cmd
	case InputPageSize:
		effects, err := m.ctrl.ChangePageSize(value)
		if err != nil {
			cmd := m.setStatus(fmt.Sprintf("Invalid page size: %v", err))
			return m, cmd
		}
		cmd := m.apply(effects)
		return m, cmd
	}
	return m, nil
}

// handleErrorKey handles keys while the error panel is shown. Only the
// panel's recovery actions are reachable.
func (m Model) handleErrorKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "r", "enter":
		cmd := m.apply(m.ctrl.Retry())
		return m, cmd
	case "c":
		cmd := m.apply(m.ctrl.CheckServer())
		return m, cmd
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit

	// Query
	case "/":
		m.openPrompt(InputSearch, m.ctrl.State().Query().SearchTerm)
		return m, nil
	case "z":
		m.openPrompt(InputPageSize, "")
		return m, nil
	case "]":
		cmd := m.apply(m.ctrl.CyclePageSize(1))
		return m, cmd
	case "[":
		cmd := m.apply(m.ctrl.CyclePageSize(-1))
		return m, cmd
	case "s":
		cmd := m.apply(m.ctrl.CycleSort())
		return m, cmd
	case "x":
		cmd := m.apply(m.ctrl.Reset())
		return m, cmd
	case "r":
		cmd := m.apply(m.ctrl.Refresh())
		return m, cmd
	case "c":
		cmd := m.apply(m.ctrl.CheckServer())
		return m, cmd

	// Pages
	case "l", "right", "n":
		cmd := m.apply(m.ctrl.NextPage())
		return m, cmd
	case "h", "left", "p":
		cmd := m.apply(m.ctrl.PrevPage())
		return m, cmd
	case "g", "home":
		cmd := m.apply(m.ctrl.FirstPage())
		return m, cmd
	case "G", "end":
		cmd := m.apply(m.ctrl.LastPage())
		return m, cmd
	case "1", "2", "3", "4", "5":
		cmd := m.apply(m.ctrl.ChangePageButton(int(key[0] - '0')))
		return m, cmd

	// Scrolling
	case "j", "down":
		m.viewport.LineDown(1)
		return m, nil
	case "k", "up":
		m.viewport.LineUp(1)
		return m, nil
	case "ctrl+d", "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	case "ctrl+u", "pgup":
		m.viewport.HalfViewUp()
		return m, nil

	case "y":
		screen := m.ctrl.Screen()
		if len(screen.Items) == 0 {
			cmd := m.setStatus("Nothing to copy")
			return m, cmd
		}
		return m, commands.CopyText(view.PlainPage(screen), "page", m.copyText)
	}

	return m, nil
}
