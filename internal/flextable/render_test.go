package flextable

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func plainLines(t *testing.T, out string) []string {
	t.Helper()
	return strings.Split(ansi.Strip(out), "\n")
}

func asciiProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRender_TwoColumnGrid(t *testing.T) {
	asciiProfile(t)
	table := Table{
		Columns: []Column{{Key: "c1", Value: "A"}, {Key: "c2", Value: "B"}},
		Rows:    []Row{{Key: "r1", Cells: []Cell{{Key: "k1", Value: "1"}, {Key: "k2", Value: "2"}}}},
	}

	out := New(table).View(21, "")
	assertLines(t, plainLines(t, out), []string{
		"─────────┬───────────",
		"    A    │     B     ",
		"─────────┼───────────",
		"    1    │     2     ",
		"─────────┴───────────",
	})
}

func TestDraw_RowSpans(t *testing.T) {
	asciiProfile(t)
	table := Table{
		Columns: []Column{{Key: "c1", Value: "A"}},
		Rows: []Row{
			{Key: "r1", Cells: []Cell{{Key: "k1", Title: "t", Value: "1"}}},
			{Key: "r2", Cells: []Cell{{Key: "k1", Value: "2"}}},
		},
	}

	got := New(table).Draw(12, "")
	want := map[string]Span{
		"header": {Start: 1, End: 2},
		"r1":     {Start: 3, End: 5},
		"r2":     {Start: 6, End: 7},
	}
	for key, span := range want {
		if got.Rows[key] != span {
			t.Errorf("span of %s = %+v, want %+v", key, got.Rows[key], span)
		}
	}
	if got.String() != New(table).View(12, "") {
		t.Error("Draw and View disagree")
	}
}

func TestRender_ActionColumn(t *testing.T) {
	asciiProfile(t)
	table := Table{
		Columns: []Column{{Key: "c1", Value: "A"}, {Key: "c2", Value: "B"}},
		Rows:    []Row{{Key: "r1", Cells: []Cell{{Key: "k1", Value: "1"}, {Key: "k2", Value: "2"}}}},
		GetRowActions: func(Row) RowActions {
			return RowActions{Actions: []Action{{Key: "star", Icon: func(Row) string { return "star" }}}}
		},
	}

	out := New(table).View(25, "")
	assertLines(t, plainLines(t, out), []string{
		"─────────┬─────────┐     ",
		"    A    │    B    │     ",
		"─────────┼─────────┤     ",
		"    1    │    2    │  ★  ",
		"─────────┴─────────┴─────",
	})
}

func TestRender_NoHeaderOpenTop(t *testing.T) {
	asciiProfile(t)
	table := Table{
		Rows: []Row{
			{Key: "r1", Cells: []Cell{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}},
			{Key: "r2", Cells: []Cell{{Key: "a", Value: "3"}, {Key: "b", Value: "4"}}},
		},
	}

	lines := plainLines(t, New(table).View(21, ""))
	assertLines(t, lines, []string{
		"    1    │     2     ",
		"─────────┼───────────",
		"    3    │     4     ",
		"─────────┴───────────",
	})
}

func TestRender_TitleAndValue(t *testing.T) {
	asciiProfile(t)
	table := Table{Rows: []Row{{Key: "r1", Cells: []Cell{{Key: "a", Title: "cpu", Value: "42%"}}}}}

	lines := plainLines(t, New(table).View(11, ""))
	assertLines(t, lines, []string{
		"    cpu    ",
		"    42%    ",
		"───────────",
	})
}

func TestRender_InsertedRows(t *testing.T) {
	asciiProfile(t)
	table := Table{Rows: []Row{{
		Key:              "r1",
		Cells:            []Cell{{Key: "a", Value: "x"}},
		RenderRowsBefore: func() []InsertedRow { return []InsertedRow{{RenderRow: func() string { return "note" }}} },
	}}}

	lines := plainLines(t, New(table).View(10, ""))
	assertLines(t, lines, []string{
		"──────────",
		" note     ",
		"    x     ",
		"──────────",
	})
}

func TestRender_DisabledOverlay(t *testing.T) {
	asciiProfile(t)
	table := Table{Rows: []Row{{
		Key:                     "r1",
		IsDisabled:              true,
		RenderOnDisabledOverlay: func() string { return "off" },
		Cells:                   []Cell{{Key: "a", Title: "t", Value: "v"}},
	}}}

	lines := plainLines(t, New(table).View(9, ""))
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "   off   " {
		t.Errorf("overlay line = %q", lines[0])
	}
	if lines[1] != "    v    " {
		t.Errorf("covered line = %q", lines[1])
	}
	if lines[2] != "─────────" {
		t.Errorf("bottom border = %q, want untouched border", lines[2])
	}
}

func TestRender_OpenMenu(t *testing.T) {
	asciiProfile(t)
	table := Table{
		Rows: []Row{{Key: "r1", Cells: []Cell{{Key: "a", Value: "x"}}}},
		GetRowActions: func(Row) RowActions {
			return RowActions{Actions: []Action{
				{Key: "edit", Title: func(Row) string { return "Edit" }},
				{Key: "remove", Title: func(Row) string { return "Remove" }},
			}}
		},
	}
	ft := New(table)

	closed := ansi.Strip(ft.View(30, ""))
	if !strings.Contains(closed, menuAnchorGlyph) {
		t.Fatalf("closed menu has no anchor:\n%s", closed)
	}
	if strings.Contains(closed, "Edit") {
		t.Fatalf("closed menu shows items:\n%s", closed)
	}

	ft.Press("r1")
	open := ansi.Strip(ft.View(30, ""))
	for _, title := range []string{"Edit", "Remove"} {
		if !strings.Contains(open, title) {
			t.Errorf("open menu missing %q:\n%s", title, open)
		}
	}
	for _, line := range strings.Split(open, "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line wider than table (%d): %q", w, line)
		}
	}
}

func TestRender_HiddenActionsKeepColumn(t *testing.T) {
	asciiProfile(t)
	table := Table{
		Rows: []Row{{Key: "r1", Cells: []Cell{{Key: "a", Value: "x"}}}},
		GetRowActions: func(Row) RowActions {
			return RowActions{Hidden: true, Actions: []Action{{Key: "a"}}}
		},
	}

	lines := plainLines(t, New(table).View(12, ""))
	assertLines(t, lines, []string{
		"  x   │     ",
		"──────┴─────",
	})
}

func TestJunction(t *testing.T) {
	tests := []struct {
		up, down, left, right bool
		want                  string
	}{
		{true, true, true, true, "┼"},
		{false, true, true, true, "┬"},
		{true, false, true, true, "┴"},
		{true, true, false, true, "├"},
		{true, true, true, false, "┤"},
		{false, true, false, true, "┌"},
		{false, true, true, false, "┐"},
		{true, false, false, true, "└"},
		{true, false, true, false, "┘"},
		{true, true, false, false, "│"},
	}
	for _, tt := range tests {
		if got := junction(tt.up, tt.down, tt.left, tt.right); got != tt.want {
			t.Errorf("junction(%v, %v, %v, %v) = %s, want %s", tt.up, tt.down, tt.left, tt.right, got, tt.want)
		}
	}
}

func TestIconGlyph(t *testing.T) {
	tests := map[string]string{
		"star":    "★",
		"unknown": "U",
		"":        "•",
	}
	for name, want := range tests {
		if got := IconGlyph(name); got != want {
			t.Errorf("IconGlyph(%q) = %q, want %q", name, got, want)
		}
	}
}
