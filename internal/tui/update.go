package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/flextable/internal/tui/commands"
)

const errorStatusDuration = 5 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case commands.RowToggledMsg:
		if !m.doc.SetDisabled(msg.Row, !m.doc.Disabled(msg.Row)) {
			return m, nil
		}
		m.table.SetTable(m.doc.Table(m.queue))
		m.refresh()
		state := "enabled"
		if m.doc.Disabled(msg.Row) {
			state = "disabled"
		}
		return m, m.setStatus(fmt.Sprintf("%s %s", msg.Row, state), false, commands.StatusDuration)

	case commands.ErrMsg:
		m.err = msg.Err
		LogError("command", msg.Err)
		return m, m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true, errorStatusDuration)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg, false, commands.StatusDuration)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}
