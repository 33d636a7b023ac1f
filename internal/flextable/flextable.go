package flextable

// FlexTable owns the props of a table and the menu state of each row's
// action cell. It is not safe for concurrent use; a host renders and
// dispatches presses from one goroutine.
type FlexTable struct {
	table    Table
	defaults TableStyle
	styles   CellStyles
	menus    MenuStates
}

// Option configures a FlexTable.
type Option func(*FlexTable)

// WithDefaultStyle sets the style the table's own Style is merged over.
func WithDefaultStyle(s TableStyle) Option {
	return func(f *FlexTable) {
		f.defaults = ResolveStyle(f.defaults, s)
	}
}

// WithCellStyles sets the text styles used inside cells.
func WithCellStyles(s CellStyles) Option {
	return func(f *FlexTable) {
		f.styles = s
	}
}

// New creates a FlexTable for t.
func New(t Table, opts ...Option) *FlexTable {
	f := &FlexTable{
		table:    t,
		defaults: DefaultTableStyle,
		styles:   DefaultCellStyles(),
		menus:    MenuStates{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Table returns the current props.
func (f *FlexTable) Table() Table {
	return f.table
}

// SetTable replaces the props. Menu state of rows that no longer exist
// is dropped.
func (f *FlexTable) SetTable(t Table) {
	f.table = t
	keep := make(map[string]bool, len(t.Rows))
	for _, row := range t.Rows {
		keep[row.Key] = true
	}
	for key := range f.menus {
		if !keep[key] {
			delete(f.menus, key)
		}
	}
}

// Layout composes the current props without rendering them.
func (f *FlexTable) Layout() Layout {
	return BuildLayout(f.table, f.defaults, f.menus)
}

// View renders the table for a terminal of the given width.
func (f *FlexTable) View(width int, focusRow string) string {
	return f.Draw(width, focusRow).String()
}

// Draw renders the table and reports the line span of each row.
func (f *FlexTable) Draw(width int, focusRow string) Rendered {
	styles := f.styles
	return Draw(f.Layout(), RenderOptions{
		Width:    width,
		FocusRow: focusRow,
		Styles:   &styles,
	})
}

// Press presses the action control of a row.
func (f *FlexTable) Press(rowKey string) bool {
	row, ra, ok := f.rowActions(rowKey)
	if !ok {
		return false
	}
	return f.menus.Get(rowKey).Press(row, ra)
}

// Select picks item i of a row's open menu.
func (f *FlexTable) Select(rowKey string, i int) bool {
	row, ra, ok := f.rowActions(rowKey)
	if !ok {
		return false
	}
	return f.menus.Get(rowKey).Select(row, ra, i)
}

// SelectCurrent picks the highlighted item of a row's open menu.
func (f *FlexTable) SelectCurrent(rowKey string) bool {
	return f.Select(rowKey, f.menus.Get(rowKey).Cursor())
}

// Dismiss closes a row's menu without invoking an action.
func (f *FlexTable) Dismiss(rowKey string) bool {
	c, ok := f.menus[rowKey]
	if !ok {
		return false
	}
	return c.Dismiss()
}

// MoveMenuCursor moves the highlight of a row's open menu.
func (f *FlexTable) MoveMenuCursor(rowKey string, delta int) {
	_, ra, ok := f.rowActions(rowKey)
	if !ok {
		return
	}
	f.menus.Get(rowKey).MoveCursor(delta, len(ra.Actions))
}

// MenuState returns the menu state of a row.
func (f *FlexTable) MenuState(rowKey string) MenuState {
	state, _ := f.menus.state(rowKey)
	return state
}

// OpenMenuRow returns the first row, in table order, whose menu is open.
func (f *FlexTable) OpenMenuRow() (string, bool) {
	for _, row := range f.table.Rows {
		if f.MenuState(row.Key) == MenuOpen {
			return row.Key, true
		}
	}
	return "", false
}

func (f *FlexTable) rowActions(rowKey string) (Row, RowActions, bool) {
	if f.table.GetRowActions == nil {
		return Row{}, RowActions{}, false
	}
	for _, row := range f.table.Rows {
		if row.Key == rowKey {
			return row, f.table.GetRowActions(row), true
		}
	}
	return Row{}, RowActions{}, false
}
