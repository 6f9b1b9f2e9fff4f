package view

import "github.com/charmbracelet/lipgloss"

// ViewState is the fully rendered screen plus an optional panel on top.
type ViewState struct {
	Width  int
	Height int
	Base   string
	// Panel, when set, is centered over Base.
	Panel   string
	PanelBg lipgloss.Color
	// Placeholder is shown before the first window size arrives.
	Placeholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.Placeholder != "" {
			return state.Placeholder
		}
		return LoadingText
	}
	if state.Panel == "" {
		return state.Base
	}
	return Overlay(state.Base, state.Panel, state.Width, state.Height, state.PanelBg)
}
