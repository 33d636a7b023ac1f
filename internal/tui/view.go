package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/flextable/internal/flextable"
	"github.com/javiermolinar/flextable/internal/tui/view"
)

const (
	headerHeight = 1
	footerHeight = view.FooterHeight
)

const (
	helpNormal = "↑/↓ move · enter action · pgup/pgdn scroll · q quit"
	helpMenu   = "↑/↓ choose · enter select · esc close · tab next row"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	state := view.ViewState{
		Width:            m.width,
		Height:           m.height,
		App:              m.styles.AppStyle,
		Bg:               m.styles.colorBg,
		EmptyPlaceholder: "Loading...",
	}
	if m.width == 0 || m.height == 0 {
		return state
	}

	innerW := m.innerWidth()
	state.Header = view.RenderHeader(m.headerViewState(innerW))
	state.Body = view.PlaceBox(innerW, m.viewport.Height, lipgloss.Top, m.viewport.View(), m.styles.colorBg)
	state.Footer = view.RenderFooter(m.footerViewState(innerW))
	return state
}

func (m Model) headerViewState(innerW int) view.HeaderViewState {
	title := m.doc.Title
	if title == "" {
		title = "flextable"
	}
	disabled := 0
	for _, row := range m.doc.Rows {
		if row.Disabled {
			disabled++
		}
	}
	return view.HeaderViewState{
		InnerW:     innerW,
		Title:      title,
		Rows:       len(m.doc.Rows),
		Disabled:   disabled,
		TitleStyle: m.styles.TitleStyle,
		CountStyle: m.styles.CountStyle,
		Bg:         m.styles.colorBg,
	}
}

func (m Model) footerViewState(innerW int) view.FooterViewState {
	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}
	help := helpNormal
	if m.table.MenuState(m.focus) == flextable.MenuOpen {
		help = helpMenu
	}
	return view.FooterViewState{
		InnerW:      innerW,
		StatusText:  m.statusMsg,
		HelpText:    help,
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}
