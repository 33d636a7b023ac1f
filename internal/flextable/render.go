package flextable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// ActionColumnWidth is the fixed width of the action column,
	// including no trailing border.
	ActionColumnWidth = 5
	minColumnWidth    = 3
	defaultWidth      = 80
)

// CellStyles are the text styles used inside cells.
type CellStyles struct {
	Title   lipgloss.Style
	Value   lipgloss.Style
	Header  lipgloss.Style
	Control lipgloss.Style
	Focus   lipgloss.Style
	Menu    lipgloss.Style
	// Overlay is applied to disabled rows on top of the table background.
	Overlay lipgloss.Style
}

// DefaultCellStyles returns the styles used when none are configured.
func DefaultCellStyles() CellStyles {
	return CellStyles{
		Title:   lipgloss.NewStyle().Faint(true),
		Value:   lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Bold(true),
		Control: lipgloss.NewStyle(),
		Focus:   lipgloss.NewStyle().Reverse(true),
		Menu:    lipgloss.NewStyle(),
		Overlay: lipgloss.NewStyle().Faint(true),
	}
}

// RenderOptions control one terminal render.
type RenderOptions struct {
	Width    int
	FocusRow string
	Styles   *CellStyles
}

// segment is the horizontal extent of one cell within a band.
type segment struct {
	x, w    int
	borders BorderSpec
}

func (s segment) inner() int {
	if s.borders.Right {
		return s.w - 1
	}
	return s.w
}

type band struct {
	row      RowLayout
	segments []segment
	lines    []string
}

func (b *band) segmentAt(x int) (segment, bool) {
	if b == nil {
		return segment{}, false
	}
	for _, s := range b.segments {
		if x >= s.x && x < s.x+s.w {
			return s, true
		}
	}
	return segment{}, false
}

func (b *band) topAt(x int) bool {
	s, ok := b.segmentAt(x)
	return ok && s.borders.Top
}

func (b *band) bottomAt(x int) bool {
	s, ok := b.segmentAt(x)
	return ok && s.borders.Bottom
}

func (b *band) verticalAt(x int) bool {
	s, ok := b.segmentAt(x)
	return ok && s.borders.Right && x == s.x+s.w-1
}

// Span is the range of output lines a row occupies, end exclusive.
type Span struct {
	Start, End int
}

// Rendered is a drawn table plus the line span of every row band.
type Rendered struct {
	Lines []string
	Rows  map[string]Span
}

// String joins the drawn lines.
func (r Rendered) String() string {
	return strings.Join(r.Lines, "\n")
}

// Render draws a layout as terminal lines.
func Render(l Layout, opts RenderOptions) string {
	return Draw(l, opts).String()
}

// Draw is Render keeping the lines split and recording where each row
// landed.
func Draw(l Layout, opts RenderOptions) Rendered {
	out := Rendered{Rows: make(map[string]Span, len(l.Rows))}
	if len(l.Rows) == 0 {
		return out
	}
	styles := DefaultCellStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	width := tableWidth(l, opts.Width)
	borderStyle := lipgloss.NewStyle().Foreground(l.Style.BorderColor)

	bands := make([]*band, 0, len(l.Rows))
	for _, row := range l.Rows {
		b := &band{row: row, segments: rowSegments(row, l.HasActions, width)}
		b.lines = bandLines(b, styles, borderStyle, opts.FocusRow)
		if row.Disabled {
			b.lines = applyDisabledOverlay(b.lines, row.Overlay, width, l.Style.BackgroundColor, styles.Overlay)
		}
		bands = append(bands, b)
	}

	var lines []string
	type anchor struct {
		line int
		menu *MenuLayout
	}
	var anchors []anchor

	var prev *band
	for _, b := range bands {
		if line, ok := boundaryLine(prev, b, width, borderStyle); ok {
			lines = append(lines, line)
		}
		if b.row.Menu != nil && b.row.Menu.State == MenuOpen {
			anchors = append(anchors, anchor{line: len(lines), menu: b.row.Menu})
		}
		out.Rows[b.row.Key] = Span{Start: len(lines), End: len(lines) + len(b.lines)}
		lines = append(lines, b.lines...)
		prev = b
	}
	if line, ok := boundaryLine(prev, nil, width, borderStyle); ok {
		lines = append(lines, line)
	}

	for _, a := range anchors {
		lines = spliceMenu(lines, a.line+1, width, renderMenu(a.menu, styles, l.Style.BorderColor))
	}

	out.Lines = lines
	return out
}

func tableWidth(l Layout, requested int) int {
	if requested <= 0 {
		requested = defaultWidth
	}
	cols := l.Columns
	if cols < 1 {
		cols = 1
	}
	minimum := cols * minColumnWidth
	if l.HasActions {
		minimum += ActionColumnWidth
	}
	if requested < minimum {
		return minimum
	}
	return requested
}

func rowSegments(row RowLayout, hasActions bool, width int) []segment {
	if row.Kind == RowInsertedBefore || row.Kind == RowInsertedAfter {
		return []segment{{x: 0, w: width, borders: row.Cells[0].Borders}}
	}

	dataCells := len(row.Cells)
	dataWidth := width
	if hasActions {
		dataCells--
		dataWidth -= ActionColumnWidth
	}

	segs := make([]segment, 0, len(row.Cells))
	x := 0
	if dataCells > 0 {
		base := dataWidth / dataCells
		for i := 0; i < dataCells; i++ {
			w := base
			if i == dataCells-1 {
				w = dataWidth - x
			}
			segs = append(segs, segment{x: x, w: w, borders: row.Cells[i].Borders})
			x += w
		}
	}
	if hasActions {
		// A row without data cells still keeps the action column aligned.
		segs = append(segs, segment{x: dataWidth, w: ActionColumnWidth, borders: row.Cells[len(row.Cells)-1].Borders})
	}
	return segs
}

func bandLines(b *band, styles CellStyles, borderStyle lipgloss.Style, focusRow string) []string {
	row := b.row
	_, hasActionCell := row.ActionCell()
	focused := row.Kind == RowData && focusRow != "" && row.Key == focusRow

	contents := make([][]string, len(row.Cells))
	height := 1
	for i, c := range row.Cells {
		contents[i] = cellLines(c, styles, focused, hasActionCell)
		if len(contents[i]) > height {
			height = len(contents[i])
		}
	}

	align := lipgloss.Center
	if row.Kind == RowInsertedBefore || row.Kind == RowInsertedAfter {
		align = lipgloss.Left
	}

	lines := make([]string, height)
	for li := 0; li < height; li++ {
		var sb strings.Builder
		for i, seg := range b.segments {
			text := ""
			if i < len(contents) && li < len(contents[i]) {
				text = contents[i][li]
			}
			inner := seg.inner()
			if align == lipgloss.Left && text != "" {
				text = " " + text
			}
			text = ansi.Truncate(text, inner, "…")
			sb.WriteString(lipgloss.PlaceHorizontal(inner, align, text))
			if seg.borders.Right {
				sb.WriteString(borderStyle.Render("│"))
			}
		}
		lines[li] = sb.String()
	}
	return lines
}

func cellLines(c CellLayout, styles CellStyles, focused, hasActionCell bool) []string {
	switch c.Position.Kind {
	case KindHeader:
		return []string{styles.Header.Render(c.Value)}
	case KindActionHeader:
		return nil
	case KindAction:
		glyph := ""
		switch c.Control {
		case ControlIconButton:
			glyph = IconGlyph(c.Icon)
		case ControlMenuAnchor:
			glyph = menuAnchorGlyph
		default:
			return nil
		}
		if focused {
			return []string{styles.Focus.Render(" " + glyph + " ")}
		}
		return []string{styles.Control.Render(glyph)}
	case KindInsertedBefore, KindInsertedAfter:
		return splitLines(c.Content)
	}

	if c.Hidden {
		return nil
	}
	if c.Custom {
		return splitLines(c.Content)
	}
	valueStyle := styles.Value
	if focused && !hasActionCell {
		valueStyle = styles.Focus
	}
	var lines []string
	if c.Title != "" {
		lines = append(lines, styles.Title.Render(c.Title))
	}
	return append(lines, valueStyle.Render(c.Value))
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// boundaryLine draws the collapsed horizontal edge between two bands.
// A segment is drawn when the band above has a bottom border there or the
// band below has a top border. It reports false when nothing is drawn.
func boundaryLine(above, below *band, width int, borderStyle lipgloss.Style) (string, bool) {
	var sb strings.Builder
	drawn := false
	for x := 0; x < width; x++ {
		h := above.bottomAt(x) || below.topAt(x)
		if h {
			drawn = true
		}
		up := above.verticalAt(x)
		down := below.verticalAt(x)
		if !up && !down {
			if h {
				sb.WriteString("─")
			} else {
				sb.WriteString(" ")
			}
			continue
		}
		right := x+1 < width && (above.bottomAt(x+1) || below.topAt(x+1))
		sb.WriteString(junction(up, down, h, right))
	}
	if !drawn {
		return "", false
	}
	return borderStyle.Render(sb.String()), true
}

func junction(up, down, left, right bool) string {
	switch {
	case up && down && left && right:
		return "┼"
	case up && down && left:
		return "┤"
	case up && down && right:
		return "├"
	case up && down:
		return "│"
	case down && left && right:
		return "┬"
	case up && left && right:
		return "┴"
	case down && left:
		return "┐"
	case down && right:
		return "┌"
	case up && left:
		return "┘"
	case up && right:
		return "└"
	case left || right:
		return "─"
	}
	return "│"
}

// applyDisabledOverlay covers the row's content lines, leaving its
// boundaries untouched, and centres the overlay text over them.
func applyDisabledOverlay(lines []string, overlay string, width int, bg lipgloss.Color, faint lipgloss.Style) []string {
	base := faint.Background(bg)
	text := lipgloss.NewStyle().Background(bg)

	content := splitLines(ansi.Strip(overlay))
	if len(content) > len(lines) {
		content = content[:len(lines)]
	}
	top := (len(lines) - len(content)) / 2

	out := make([]string, len(lines))
	for i, line := range lines {
		plain := padRight(ansi.Strip(line), width)
		ci := i - top
		if ci < 0 || ci >= len(content) {
			out[i] = base.Render(plain)
			continue
		}
		msg := ansi.Truncate(content[ci], width, "")
		mw := lipgloss.Width(msg)
		left := (width - mw) / 2
		out[i] = base.Render(ansi.Cut(plain, 0, left)) +
			text.Render(msg) +
			base.Render(ansi.Cut(plain, left+mw, width))
	}
	return out
}

func renderMenu(menu *MenuLayout, styles CellStyles, borderColor lipgloss.Color) []string {
	if len(menu.Items) == 0 {
		return nil
	}
	w := 0
	for _, it := range menu.Items {
		if tw := lipgloss.Width(it.Title); tw > w {
			w = tw
		}
	}
	items := make([]string, len(menu.Items))
	for i, it := range menu.Items {
		label := " " + padRight(it.Title, w) + " "
		if i == menu.Cursor {
			items[i] = styles.Focus.Render(label)
		} else {
			items[i] = styles.Menu.Render(label)
		}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(strings.Join(items, "\n"))
	return strings.Split(box, "\n")
}

// spliceMenu draws box over lines starting at top, right-aligned to width.
func spliceMenu(lines []string, top, width int, box []string) []string {
	if len(box) == 0 {
		return lines
	}
	boxW := 0
	for _, line := range box {
		if w := lipgloss.Width(line); w > boxW {
			boxW = w
		}
	}
	if boxW > width {
		for i := range box {
			box[i] = ansi.Truncate(box[i], width, "")
		}
		boxW = width
	}
	left := width - boxW

	for len(lines) < top+len(box) {
		lines = append(lines, "")
	}
	for i, boxLine := range box {
		idx := top + i
		base := padRight(lines[idx], width)
		boxLine = padRight(boxLine, boxW)
		lines[idx] = ansi.Cut(base, 0, left) + boxLine + ansi.Cut(base, left+boxW, width)
	}
	return lines
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
