package flextable

import "strconv"

// Control is what an action cell hosts.
type Control int

const (
	ControlNone Control = iota
	ControlPlaceholder
	ControlIconButton
	ControlMenuAnchor
)

// RowKind identifies a band of the layout.
type RowKind int

const (
	RowHeader RowKind = iota
	RowData
	RowInsertedBefore
	RowInsertedAfter
)

// MenuItem is one entry of an open action menu.
type MenuItem struct {
	Key   string
	Title string
}

// MenuLayout describes a row's dropdown. Items are only filled while open.
type MenuLayout struct {
	State  MenuState
	Cursor int
	Items  []MenuItem
}

// CellLayout is one resolved cell.
type CellLayout struct {
	Key      string
	Position CellPosition
	Borders  BorderSpec

	Hidden bool
	Title  string
	Value  string
	// Content is the output of RenderCell or of an inserted row.
	Content string
	Custom  bool

	Control Control
	Icon    string
}

// RowLayout is one band of the table, top to bottom.
type RowLayout struct {
	Key      string
	Kind     RowKind
	Cells    []CellLayout
	Disabled bool
	Overlay  string
	Menu     *MenuLayout
}

// ActionCell returns the trailing action cell, if the row has one.
func (r RowLayout) ActionCell() (CellLayout, bool) {
	if len(r.Cells) == 0 {
		return CellLayout{}, false
	}
	last := r.Cells[len(r.Cells)-1]
	if last.Position.Kind == KindAction || last.Position.Kind == KindActionHeader {
		return last, true
	}
	return CellLayout{}, false
}

// Layout is the host-independent result of composing a Table.
type Layout struct {
	Rows       []RowLayout
	HasHeader  bool
	HasActions bool
	// Columns is the number of data columns used for width distribution.
	Columns int
	Style   TableStyle
}

// BuildLayout composes the table top-down: header, then for each data row
// its inserted-before rows, the row itself and its inserted-after rows.
// GetRowActions is called exactly once per data row.
func BuildLayout(t Table, defaults TableStyle, menus MenuStates) Layout {
	out := Layout{
		HasHeader: len(t.Columns) > 0,
		Style:     ResolveStyle(defaults, t.Style),
	}

	resolved := resolveActions(t)
	for _, ra := range resolved {
		if ra.Hidden || len(ra.Actions) > 0 {
			out.HasActions = true
			break
		}
	}

	out.Columns = len(t.Columns)
	if out.Columns == 0 {
		for _, row := range t.Rows {
			if len(row.Cells) > out.Columns {
				out.Columns = len(row.Cells)
			}
		}
	}

	if out.HasHeader {
		out.Rows = append(out.Rows, headerLayout(t.Columns, out.HasActions))
	}

	for r, row := range t.Rows {
		if row.RenderRowsBefore != nil {
			out.Rows = append(out.Rows, insertedLayouts(row, row.RenderRowsBefore(), RowInsertedBefore)...)
		}

		rl := RowLayout{
			Key:      row.Key,
			Kind:     RowData,
			Disabled: row.IsDisabled,
		}
		if row.IsDisabled && row.RenderOnDisabledOverlay != nil {
			rl.Overlay = row.RenderOnDisabledOverlay()
		}
		for i, cell := range row.Cells {
			pos := CellPosition{
				Kind:          KindBody,
				FirstRow:      r == 0,
				LastRow:       r == len(t.Rows)-1,
				LastCell:      i == len(row.Cells)-1 && !out.HasActions,
				HasHeader:     out.HasHeader,
				Displayed:     !cell.Hidden,
				NextDisplayed: nextDisplayed(t.Rows, r, i),
			}
			cl := CellLayout{
				Key:      cell.Key,
				Position: pos,
				Borders:  ComputeCellBorders(pos),
				Hidden:   cell.Hidden,
			}
			if !cell.Hidden {
				if cell.RenderCell != nil {
					cl.Content = cell.RenderCell(row)
					cl.Custom = true
				} else {
					cl.Title = cell.Title
					cl.Value = cell.Value
				}
			}
			rl.Cells = append(rl.Cells, cl)
		}
		if out.HasActions {
			cl, menu := actionLayout(row, resolved[r], r, len(t.Rows), menus)
			rl.Cells = append(rl.Cells, cl)
			rl.Menu = menu
		}
		out.Rows = append(out.Rows, rl)

		if row.RenderRowsAfter != nil {
			out.Rows = append(out.Rows, insertedLayouts(row, row.RenderRowsAfter(), RowInsertedAfter)...)
		}
	}

	return out
}

func resolveActions(t Table) []RowActions {
	if t.GetRowActions == nil {
		return nil
	}
	out := make([]RowActions, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = t.GetRowActions(row)
	}
	return out
}

func headerLayout(columns []Column, hasActions bool) RowLayout {
	rl := RowLayout{Key: "header", Kind: RowHeader}
	for i, col := range columns {
		pos := CellPosition{
			Kind:      KindHeader,
			FirstRow:  true,
			LastCell:  i == len(columns)-1 && !hasActions,
			HasHeader: true,
			Displayed: true,
		}
		rl.Cells = append(rl.Cells, CellLayout{
			Key:      col.Key,
			Position: pos,
			Borders:  ComputeCellBorders(pos),
			Value:    col.Value,
		})
	}
	if hasActions {
		pos := CellPosition{Kind: KindActionHeader, FirstRow: true, LastCell: true, HasHeader: true}
		rl.Cells = append(rl.Cells, CellLayout{
			Key:      "header-actions",
			Position: pos,
			Borders:  ComputeCellBorders(pos),
		})
	}
	return rl
}

func actionLayout(row Row, ra RowActions, r, n int, menus MenuStates) (CellLayout, *MenuLayout) {
	pos := CellPosition{
		Kind:      KindAction,
		FirstRow:  r == 0,
		LastRow:   r == n-1,
		LastCell:  true,
		Displayed: true,
	}
	cl := CellLayout{
		Key:      row.Key + "-actions",
		Position: pos,
		Borders:  ComputeCellBorders(pos),
		Control:  ControlPlaceholder,
	}

	switch {
	case ra.Hidden || len(ra.Actions) == 0:
		return cl, nil
	case len(ra.Actions) == 1:
		cl.Control = ControlIconButton
		cl.Icon = ra.Actions[0].icon(row)
		return cl, nil
	}

	cl.Control = ControlMenuAnchor
	state, cursor := menus.state(row.Key)
	menu := &MenuLayout{State: state, Cursor: cursor}
	if state == MenuOpen {
		for _, a := range ra.Actions {
			menu.Items = append(menu.Items, MenuItem{Key: a.Key, Title: a.title(row)})
		}
	}
	return cl, menu
}

func insertedLayouts(row Row, inserted []InsertedRow, kind RowKind) []RowLayout {
	cellKind, suffix := KindInsertedBefore, "-before-"
	if kind == RowInsertedAfter {
		cellKind, suffix = KindInsertedAfter, "-after-"
	}

	out := make([]RowLayout, 0, len(inserted))
	for i, ins := range inserted {
		key := ins.Key
		if key == "" {
			key = row.Key + suffix + strconv.Itoa(i)
		}
		pos := CellPosition{Kind: cellKind, LastCell: true, Displayed: true}
		cl := CellLayout{
			Key:      key,
			Position: pos,
			Borders:  ComputeCellBorders(pos),
			Custom:   true,
		}
		if ins.RenderRow != nil {
			cl.Content = ins.RenderRow()
		}
		out = append(out, RowLayout{Key: key, Kind: kind, Cells: []CellLayout{cl}})
	}
	return out
}
