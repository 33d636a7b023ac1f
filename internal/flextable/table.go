// Package flextable renders a bordered grid of rows and cells with an
// optional trailing column of per-row actions.
package flextable

import "github.com/charmbracelet/lipgloss"

// Column is a header cell definition.
type Column struct {
	Key   string
	Value string
}

// Cell is one data unit within a row.
type Cell struct {
	Key string
	// Hidden suppresses the cell content. The cell still takes part in
	// border computation so the grid stays continuous.
	Hidden bool
	Title  string
	Value  string
	// RenderCell overrides Title and Value when set.
	RenderCell func(Row) string
}

// InsertedRow is caller content placed before or after a data row,
// outside the grid's cell layout.
type InsertedRow struct {
	Key       string
	RenderRow func() string
}

// Row is a data row.
type Row struct {
	Key        string
	Cells      []Cell
	IsDisabled bool

	RenderOnDisabledOverlay func() string
	RenderRowsBefore        func() []InsertedRow
	RenderRowsAfter         func() []InsertedRow
}

// Action is a single entry of a row's action cell.
type Action struct {
	Key     string
	Icon    func(Row) string
	Title   func(Row) string
	OnPress func(Row)
}

// RowActions is what a table's GetRowActions returns for one row.
type RowActions struct {
	// Hidden renders an empty placeholder cell instead of controls.
	Hidden  bool
	Actions []Action
}

// TableStyle holds the colors threaded down to every row and cell.
// Empty fields are unset.
type TableStyle struct {
	BorderColor     lipgloss.Color
	BackgroundColor lipgloss.Color
}

// Table is the full set of props for one render.
type Table struct {
	Columns       []Column
	Rows          []Row
	GetRowActions func(Row) RowActions
	Style         TableStyle
}

// DefaultTableStyle is used when no theme supplies one.
var DefaultTableStyle = TableStyle{
	BorderColor:     lipgloss.Color("#000000"),
	BackgroundColor: lipgloss.Color("#ffffff"),
}

// ResolveStyle merges override over defaults. Non-empty override fields win.
func ResolveStyle(defaults, override TableStyle) TableStyle {
	out := defaults
	if override.BorderColor != "" {
		out.BorderColor = override.BorderColor
	}
	if override.BackgroundColor != "" {
		out.BackgroundColor = override.BackgroundColor
	}
	return out
}

func (a Action) icon(row Row) string {
	if a.Icon == nil {
		return ""
	}
	return a.Icon(row)
}

func (a Action) title(row Row) string {
	if a.Title == nil {
		return a.Key
	}
	return a.Title(row)
}

func (a Action) press(row Row) {
	if a.OnPress != nil {
		a.OnPress(row)
	}
}
