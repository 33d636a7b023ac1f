// Package tui provides the terminal user interface for flextable.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/flextable/internal/config"
	"github.com/javiermolinar/flextable/internal/document"
	"github.com/javiermolinar/flextable/internal/flextable"
	"github.com/javiermolinar/flextable/internal/tui/commands"
	"github.com/javiermolinar/flextable/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	doc    *document.Document

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Table component and the presses it has handed back
	table *flextable.FlexTable
	queue *dispatchQueue

	// State
	focus    string // Key of the focused data row
	viewport viewport.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // Render statusMsg as an error
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// dispatchQueue collects commands raised by action presses until the
// model turns them into tea.Cmds.
type dispatchQueue struct {
	pending []document.Command
}

func (q *dispatchQueue) Dispatch(cmd document.Command) {
	q.pending = append(q.pending, cmd)
}

func (q *dispatchQueue) drain() []document.Command {
	out := q.pending
	q.pending = nil
	return out
}

// New creates a new TUI model.
func New(cfg *config.Config, doc *document.Document) *Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	queue := &dispatchQueue{}
	table := flextable.New(doc.Table(queue),
		flextable.WithDefaultStyle(styles.TableStyle()),
		flextable.WithDefaultStyle(flextable.TableStyle{
			BorderColor:     lipgloss.Color(cfg.Table.BorderColor),
			BackgroundColor: lipgloss.Color(cfg.Table.BackgroundColor),
		}),
		flextable.WithCellStyles(styles.Cells),
	)

	m := &Model{
		config:   cfg,
		doc:      doc,
		theme:    t,
		styles:   styles,
		table:    table,
		queue:    queue,
		viewport: viewport.New(0, 0),
	}
	if keys := m.rowKeys(); len(keys) > 0 {
		m.focus = keys[0]
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI.
func Run(cfg *config.Config, doc *document.Document) error {
	return RunWithDebug(cfg, doc, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, doc *document.Document, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(New(cfg, doc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) rowKeys() []string {
	rows := m.table.Table().Rows
	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = row.Key
	}
	return keys
}

func (m Model) innerWidth() int {
	frameW, _ := m.styles.AppStyle.GetFrameSize()
	return max(0, m.width-frameW)
}

// tableWidth is the configured width capped at the space available.
func (m Model) tableWidth() int {
	inner := m.innerWidth()
	if w := m.config.UI.Width; w > 0 && w < inner {
		return w
	}
	return inner
}

func (m *Model) resize() {
	m.viewport.Width = m.innerWidth()
	m.viewport.Height = max(1, m.height-headerHeight-footerHeight)
}

// refresh redraws the table into the viewport and scrolls the focused row
// into view.
func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	drawn := m.table.Draw(m.tableWidth(), m.focus)
	m.viewport.SetContent(drawn.String())
	m.ensureFocusVisible(drawn)
}

func (m *Model) ensureFocusVisible(drawn flextable.Rendered) {
	span, ok := drawn.Rows[m.focus]
	if !ok {
		return
	}
	// Keep the borders around the row visible, and the menu hanging below it.
	top := max(0, span.Start-1)
	bottom := span.End + 1
	if m.table.MenuState(m.focus) == flextable.MenuOpen {
		if _, ra, ok := m.focusedActions(); ok {
			bottom += len(ra.Actions) + 2
		}
	}

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m Model) focusedActions() (flextable.Row, flextable.RowActions, bool) {
	t := m.table.Table()
	if t.GetRowActions == nil {
		return flextable.Row{}, flextable.RowActions{}, false
	}
	for _, row := range t.Rows {
		if row.Key == m.focus {
			return row, t.GetRowActions(row), true
		}
	}
	return flextable.Row{}, flextable.RowActions{}, false
}

// dispatch turns queued action presses into commands.
func (m Model) dispatch() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range m.queue.drain() {
		LogActionDispatch(c)
		cmds = append(cmds, commands.FromCommand(c))
	}
	return tea.Batch(cmds...)
}

func (m *Model) setStatus(text string, isErr bool, d time.Duration) tea.Cmd {
	m.statusMsg = text
	m.statusErr = isErr
	m.statusTime = time.Now().Add(d)
	return commands.ClearStatusAfter(d)
}
