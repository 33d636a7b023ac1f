package flextable

// CellKind identifies where a cell sits in the grid.
type CellKind int

const (
	KindBody CellKind = iota
	KindHeader
	KindActionHeader
	KindAction
	KindInsertedBefore
	KindInsertedAfter
)

// CellPosition is the layout position and visibility flags of one cell.
type CellPosition struct {
	Kind      CellKind
	FirstRow  bool
	LastRow   bool
	LastCell  bool
	HasHeader bool
	// Displayed is false for hidden cells.
	Displayed bool
	// NextDisplayed reports whether the cell with the same index in the
	// next data row exists and is displayed.
	NextDisplayed bool
}

// BorderSpec says which edges of a cell are drawn. The grid has no outer
// left or right edge.
type BorderSpec struct {
	Top    bool
	Right  bool
	Bottom bool
}

// ComputeCellBorders maps a cell position to the edges drawn around it.
func ComputeCellBorders(pos CellPosition) BorderSpec {
	switch pos.Kind {
	case KindHeader:
		return BorderSpec{Top: true, Right: !pos.LastCell}
	case KindActionHeader:
		return BorderSpec{}
	case KindAction:
		return BorderSpec{Bottom: true}
	case KindInsertedBefore:
		return BorderSpec{Top: true}
	case KindInsertedAfter:
		return BorderSpec{Bottom: true}
	}

	top := pos.FirstRow || pos.Displayed
	if pos.FirstRow && !pos.HasHeader {
		top = false
	}
	return BorderSpec{
		Top:    top,
		Right:  !pos.LastCell,
		Bottom: pos.Displayed || pos.NextDisplayed,
	}
}

// nextDisplayed is the look-ahead for cell index i of rows[r].
func nextDisplayed(rows []Row, r, i int) bool {
	if r+1 >= len(rows) {
		return false
	}
	next := rows[r+1].Cells
	if i >= len(next) {
		return false
	}
	return !next[i].Hidden
}
