// Package view provides view composition helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ViewState contains the pre-rendered sections of the screen.
type ViewState struct {
	Width            int
	Height           int
	Header           string
	Body             string
	Footer           string
	App              lipgloss.Style
	Bg               lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	content := state.App.Render(lipgloss.JoinVertical(lipgloss.Left, state.Header, state.Body, state.Footer))
	return PadLinesWithBackground(content, state.Width, state.Height, state.Bg)
}
