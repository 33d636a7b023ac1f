package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/flextable/internal/document"
	"github.com/javiermolinar/flextable/internal/flextable"
)

// DebugLogger logs keystrokes, menu transitions, and dispatched actions to a file.
type DebugLogger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "flextable-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	// Create log file in current directory with fixed name (easy to find)
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = newDebugLogger(f, f)
	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

func newDebugLogger(w io.Writer, c io.Closer) *DebugLogger {
	return &DebugLogger{out: w, closer: c, enabled: true}
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	if debugLog.closer != nil {
		_ = debugLog.closer.Close()
	}
	debugLog.enabled = false
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.out == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.out, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogFocusMove logs the focused row changing.
func LogFocusMove(from, to string) {
	if debugLog == nil || !debugLog.enabled || from == to {
		return
	}
	debugLog.log("FOCUS_MOVE", map[string]any{
		"from": from,
		"to":   to,
	})
}

// LogMenuTransition logs a row's menu opening or closing.
func LogMenuTransition(row string, from, to flextable.MenuState, reason string) {
	if debugLog == nil || !debugLog.enabled || from == to {
		return
	}
	debugLog.log("MENU_TRANSITION", map[string]any{
		"row":    row,
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

// LogActionDispatch logs an action handed to the host.
func LogActionDispatch(cmd document.Command) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ACTION_DISPATCH", map[string]any{
		"row":     cmd.Row.Key,
		"action":  cmd.Action,
		"command": cmd.Name,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
