// Package document loads table definitions from TOML and turns them into
// flextable props.
package document

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/flextable/internal/flextable"
)

//go:embed sample.toml
var sampleDocument []byte

// Commands an action can dispatch.
const (
	CommandCopy   = "copy"
	CommandToggle = "toggle"
	CommandEcho   = "echo"
)

var knownCommands = map[string]bool{
	CommandCopy:   true,
	CommandToggle: true,
	CommandEcho:   true,
}

// Document is a table definition.
type Document struct {
	Title   string      `toml:"title"`
	Style   StyleDef    `toml:"style"`
	Columns []ColumnDef `toml:"columns"`
	Rows    []RowDef    `toml:"rows"`
}

// StyleDef overrides the table style.
type StyleDef struct {
	BorderColor     string `toml:"border_color"`
	BackgroundColor string `toml:"background_color"`
}

// ColumnDef is a header cell.
type ColumnDef struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// RowDef is a data row with its cells and actions.
type RowDef struct {
	Key         string      `toml:"key"`
	Disabled    bool        `toml:"disabled"`
	Overlay     string      `toml:"overlay"`
	Before      []string    `toml:"before"`
	After       []string    `toml:"after"`
	HideActions bool        `toml:"hide_actions"`
	Cells       []CellDef   `toml:"cells"`
	Actions     []ActionDef `toml:"actions"`
}

// CellDef is one cell. Meter renders a gauge instead of Value.
type CellDef struct {
	Key    string   `toml:"key"`
	Title  string   `toml:"title"`
	Value  string   `toml:"value"`
	Hidden bool     `toml:"hidden"`
	Meter  *float64 `toml:"meter"`
}

// ActionDef is one row action.
type ActionDef struct {
	Key     string `toml:"key"`
	Icon    string `toml:"icon"`
	Title   string `toml:"title"`
	Command string `toml:"command"`
}

// Command is an action press routed to the host.
type Command struct {
	Name   string
	Action string
	Title  string
	Row    flextable.Row
}

// Dispatcher receives action presses.
type Dispatcher interface {
	Dispatch(Command)
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(Command)

// Dispatch calls f(cmd).
func (f DispatchFunc) Dispatch(cmd Command) {
	f(cmd)
}

// Load reads and validates a document file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

// Sample returns the built-in document.
func Sample() *Document {
	doc, err := Parse(sampleDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded sample document: %v", err))
	}
	return doc
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that keys are unique among siblings and that every
// action names a known command.
func (d *Document) Validate() error {
	var errs []error

	if err := uniqueKeys("column", len(d.Columns), func(i int) string { return d.Columns[i].Key }); err != nil {
		errs = append(errs, err)
	}
	if err := uniqueKeys("row", len(d.Rows), func(i int) string { return d.Rows[i].Key }); err != nil {
		errs = append(errs, err)
	}
	for _, row := range d.Rows {
		if err := uniqueKeys("cell in row "+row.Key, len(row.Cells), func(i int) string { return row.Cells[i].Key }); err != nil {
			errs = append(errs, err)
		}
		if err := uniqueKeys("action in row "+row.Key, len(row.Actions), func(i int) string { return row.Actions[i].Key }); err != nil {
			errs = append(errs, err)
		}
		for _, a := range row.Actions {
			if !knownCommands[a.Command] {
				errs = append(errs, fmt.Errorf("row %s action %s: unknown command %q", row.Key, a.Key, a.Command))
			}
		}
	}

	return errors.Join(errs...)
}

func uniqueKeys(what string, n int, key func(int) string) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if k == "" {
			return fmt.Errorf("%s %d has no key", what, i)
		}
		if seen[k] {
			return fmt.Errorf("duplicate %s key %q", what, k)
		}
		seen[k] = true
	}
	return nil
}

// SetDisabled sets a row's disabled flag and reports whether the row exists.
func (d *Document) SetDisabled(rowKey string, disabled bool) bool {
	for i := range d.Rows {
		if d.Rows[i].Key == rowKey {
			d.Rows[i].Disabled = disabled
			return true
		}
	}
	return false
}

// Disabled reports a row's disabled flag.
func (d *Document) Disabled(rowKey string) bool {
	for _, row := range d.Rows {
		if row.Key == rowKey {
			return row.Disabled
		}
	}
	return false
}

// Table builds flextable props. Action presses go to dispatcher.
func (d *Document) Table(dispatcher Dispatcher) flextable.Table {
	t := flextable.Table{
		Style: flextable.TableStyle{
			BorderColor:     lipgloss.Color(d.Style.BorderColor),
			BackgroundColor: lipgloss.Color(d.Style.BackgroundColor),
		},
	}
	for _, c := range d.Columns {
		t.Columns = append(t.Columns, flextable.Column{Key: c.Key, Value: c.Value})
	}

	defs := make(map[string]RowDef, len(d.Rows))
	hasActions := false
	for _, def := range d.Rows {
		defs[def.Key] = def
		t.Rows = append(t.Rows, buildRow(def))
		if len(def.Actions) > 0 {
			hasActions = true
		}
	}

	if hasActions {
		t.GetRowActions = func(row flextable.Row) flextable.RowActions {
			def := defs[row.Key]
			ra := flextable.RowActions{Hidden: def.HideActions}
			for _, a := range def.Actions {
				ra.Actions = append(ra.Actions, buildAction(a, dispatcher))
			}
			return ra
		}
	}
	return t
}

func buildRow(def RowDef) flextable.Row {
	row := flextable.Row{Key: def.Key, IsDisabled: def.Disabled}
	for _, c := range def.Cells {
		cell := flextable.Cell{Key: c.Key, Hidden: c.Hidden, Title: c.Title, Value: c.Value}
		if c.Meter != nil {
			title, level := c.Title, *c.Meter
			cell.RenderCell = func(flextable.Row) string {
				if title == "" {
					return Meter(level, meterWidth)
				}
				return title + "\n" + Meter(level, meterWidth)
			}
		}
		row.Cells = append(row.Cells, cell)
	}
	if def.Overlay != "" {
		overlay := def.Overlay
		row.RenderOnDisabledOverlay = func() string { return overlay }
	}
	if len(def.Before) > 0 {
		before := inserted(def.Key+"-before", def.Before)
		row.RenderRowsBefore = func() []flextable.InsertedRow { return before }
	}
	if len(def.After) > 0 {
		after := inserted(def.Key+"-after", def.After)
		row.RenderRowsAfter = func() []flextable.InsertedRow { return after }
	}
	return row
}

func inserted(prefix string, texts []string) []flextable.InsertedRow {
	out := make([]flextable.InsertedRow, len(texts))
	for i, text := range texts {
		out[i] = flextable.InsertedRow{
			Key:       prefix + "-" + strconv.Itoa(i),
			RenderRow: func() string { return text },
		}
	}
	return out
}

func buildAction(def ActionDef, dispatcher Dispatcher) flextable.Action {
	return flextable.Action{
		Key:   def.Key,
		Icon:  func(flextable.Row) string { return def.Icon },
		Title: func(flextable.Row) string { return def.Title },
		OnPress: func(row flextable.Row) {
			if dispatcher == nil {
				return
			}
			dispatcher.Dispatch(Command{Name: def.Command, Action: def.Key, Title: def.Title, Row: row})
		},
	}
}

const meterWidth = 10

// Meter draws level (0..1) as a fixed-width gauge followed by a percentage.
func Meter(level float64, width int) string {
	if math.IsNaN(level) || level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	filled := int(math.Round(level * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) +
		" " + strconv.Itoa(int(math.Round(level*100))) + "%"
}

// RowText joins the displayed values of a row with tabs.
func RowText(row flextable.Row) string {
	values := make([]string, 0, len(row.Cells))
	for _, c := range row.Cells {
		if c.Hidden {
			continue
		}
		if c.RenderCell != nil {
			values = append(values, strings.ReplaceAll(c.RenderCell(row), "\n", " "))
			continue
		}
		values = append(values, c.Value)
	}
	return strings.Join(values, "\t")
}
