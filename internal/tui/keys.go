package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/flextable/internal/flextable"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.table.MenuState(m.focus) == flextable.MenuOpen {
		return m.handleMenuKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys while no menu is open.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "k", "up", "shift+tab":
		m.moveFocus(-1)
	case "j", "down", "tab":
		m.moveFocus(1)
	case "g", "home":
		m.focusIndex(0)
	case "G", "end":
		m.focusIndex(len(m.rowKeys()) - 1)

	// Page navigation
	case "pgup", "ctrl+u":
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil
	case "pgdown", "ctrl+d":
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil

	// Actions
	case "enter", " ":
		return m.pressFocused()

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// handleMenuKeys handles keys while the focused row's menu is open.
func (m Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "k", "up":
		m.table.MoveMenuCursor(m.focus, -1)
	case "j", "down":
		m.table.MoveMenuCursor(m.focus, 1)
	case "shift+tab":
		m.moveFocus(-1)
	case "tab":
		m.moveFocus(1)

	case "enter", " ":
		if m.table.SelectCurrent(m.focus) {
			LogMenuTransition(m.focus, flextable.MenuOpen, flextable.MenuClosed, "select")
		}
		m.refresh()
		return m, m.dispatch()

	case "esc", "q", "h", "left":
		if m.table.Dismiss(m.focus) {
			LogMenuTransition(m.focus, flextable.MenuOpen, flextable.MenuClosed, "dismiss")
		}

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m Model) pressFocused() (tea.Model, tea.Cmd) {
	before := m.table.MenuState(m.focus)
	if !m.table.Press(m.focus) {
		return m, nil
	}
	LogMenuTransition(m.focus, before, m.table.MenuState(m.focus), "press")
	m.refresh()
	return m, m.dispatch()
}

func (m *Model) moveFocus(delta int) {
	keys := m.rowKeys()
	for i, key := range keys {
		if key == m.focus {
			m.focusIndex(i + delta)
			return
		}
	}
	m.focusIndex(0)
}

// focusIndex focuses the row at i, clamped to the table. Leaving a row
// closes its menu.
func (m *Model) focusIndex(i int) {
	keys := m.rowKeys()
	if len(keys) == 0 {
		m.focus = ""
		return
	}
	i = max(0, min(i, len(keys)-1))
	if keys[i] == m.focus {
		return
	}
	if m.table.Dismiss(m.focus) {
		LogMenuTransition(m.focus, flextable.MenuOpen, flextable.MenuClosed, "focus")
	}
	LogFocusMove(m.focus, keys[i])
	m.focus = keys[i]
}
