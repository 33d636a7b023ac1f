// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/flextable/internal/document"
)

// StatusDuration is how long a status message stays on screen.
const StatusDuration = 3 * time.Second

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// RowToggledMsg asks the model to flip a row's disabled flag.
type RowToggledMsg struct {
	Row string
}

// FromCommand turns a dispatched action into a tea.Cmd.
func FromCommand(cmd document.Command) tea.Cmd {
	switch cmd.Name {
	case document.CommandCopy:
		return CopyRow(cmd.Row.Key, document.RowText(cmd.Row))
	case document.CommandToggle:
		return ToggleRow(cmd.Row.Key)
	case document.CommandEcho:
		title := cmd.Title
		if title == "" {
			title = cmd.Action
		}
		return Echo(fmt.Sprintf("%s: %s", title, cmd.Row.Key))
	default:
		return func() tea.Msg {
			return ErrMsg{Err: fmt.Errorf("unknown command %q", cmd.Name)}
		}
	}
}

// CopyRow writes a row's text to the system clipboard.
func CopyRow(rowKey, text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying %s: %w", rowKey, err)}
		}
		return StatusMsgCmd{Msg: "Copied " + rowKey}
	}
}

// ToggleRow requests a disabled flip for rowKey.
func ToggleRow(rowKey string) tea.Cmd {
	return func() tea.Msg {
		return RowToggledMsg{Row: rowKey}
	}
}

// Echo shows msg in the status line.
func Echo(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
