package tui

import (
	"strconv"

	"github.com/javiermolinar/podium/internal/tui/input"
	"github.com/javiermolinar/podium/internal/tui/view"
)

func (m Model) promptActive() bool {
	return m.inputMode != InputNone
}

func (m Model) promptCursor() string {
	if m.promptActive() {
		return "_"
	}
	return ""
}

// promptSuggestions lists the completions offered for the active prompt.
func (m Model) promptSuggestions() []string {
	if m.inputMode != InputPageSize {
		return nil
	}
	sizes := m.ctrl.PageSizes()
	out := make([]string, 0, len(sizes))
	for _, n := range sizes {
		out = append(out, strconv.Itoa(n))
	}
	return out
}

func (m Model) promptMaxContentLines() int {
	maxLines := m.layoutCache.FooterH - footerBaseLines - promptBorderLines
	if maxLines < promptMinContentLines {
		return promptMinContentLines
	}
	return maxLines
}

func (m Model) promptLines(contentWidth int) []string {
	if !m.promptActive() {
		return nil
	}
	value := m.input.Value()
	state := view.PromptState{
		Label:       m.inputMode.String(),
		Value:       value,
		Cursor:      m.promptCursor(),
		Suggestions: input.Matching(value, m.promptSuggestions()),
	}
	return view.PromptLines(state, contentWidth)
}

func (m *Model) openPrompt(mode InputMode, value string) {
	m.inputMode = mode
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.relayout()
}

func (m *Model) closePrompt() {
	m.inputMode = InputNone
	m.input.Reset()
	m.input.Blur()
	m.relayout()
}
