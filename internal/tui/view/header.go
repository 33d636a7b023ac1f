package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HeaderViewState holds what the title bar shows.
type HeaderViewState struct {
	InnerW     int
	Title      string
	Rows       int
	Disabled   int
	TitleStyle lipgloss.Style
	CountStyle lipgloss.Style
	Bg         lipgloss.Color
}

// RenderHeader renders the document title with a row count on the right.
func RenderHeader(state HeaderViewState) string {
	if state.InnerW <= 0 {
		return ""
	}
	count := RowCountLabel(state.Rows, state.Disabled)
	countW := lipgloss.Width(count)

	titleW := state.InnerW - countW - 1
	title := state.Title
	if titleW < 1 {
		title, count, titleW = ansi.Truncate(title, state.InnerW, "…"), "", state.InnerW
	} else {
		title = ansi.Truncate(title, titleW, "…")
	}

	left := state.TitleStyle.Render(title)
	gap := state.InnerW - lipgloss.Width(left) - lipgloss.Width(count)
	if gap < 0 {
		gap = 0
	}
	line := left + lipgloss.NewStyle().Background(state.Bg).Render(strings.Repeat(" ", gap)) + state.CountStyle.Render(count)
	return PadLinesWithBackground(line, state.InnerW, 1, state.Bg)
}

// RowCountLabel formats "4 rows" or "4 rows, 1 disabled".
func RowCountLabel(rows, disabled int) string {
	label := strconv.Itoa(rows) + " row"
	if rows != 1 {
		label += "s"
	}
	if disabled > 0 {
		label += ", " + strconv.Itoa(disabled) + " disabled"
	}
	return label
}
