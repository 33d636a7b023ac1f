package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/flextable/internal/flextable"
)

func TestSample(t *testing.T) {
	doc := Sample()

	if doc.Title != "Fleet" {
		t.Errorf("expected title Fleet, got %q", doc.Title)
	}
	if len(doc.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(doc.Columns))
	}
	if len(doc.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(doc.Rows))
	}
	if !doc.Rows[2].Disabled || doc.Rows[2].Overlay != "draining" {
		t.Errorf("expected worker-1 disabled with overlay, got %+v", doc.Rows[2])
	}
	if !doc.Rows[3].HideActions {
		t.Error("expected canary to hide actions")
	}
	if m := doc.Rows[3].Cells[2].Meter; m == nil || *m != 0 {
		t.Errorf("expected zero meter on canary, got %v", m)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "syntax",
			content: "[[rows]\nkey=",
			want:    "parsing document",
		},
		{
			name: "duplicate row",
			content: `
[[rows]]
key = "a"
[[rows]]
key = "a"
`,
			want: `duplicate row key "a"`,
		},
		{
			name: "missing cell key",
			content: `
[[rows]]
key = "a"
  [[rows.cells]]
  value = "x"
`,
			want: "has no key",
		},
		{
			name: "unknown command",
			content: `
[[rows]]
key = "a"
  [[rows.actions]]
  key = "go"
  command = "launch"
`,
			want: `unknown command "launch"`,
		},
		{
			name: "duplicate action",
			content: `
[[rows]]
key = "a"
  [[rows.actions]]
  key = "go"
  command = "echo"
  [[rows.actions]]
  key = "go"
  command = "copy"
`,
			want: `duplicate action in row a key "go"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.toml")
	content := `
title = "Small"

[[columns]]
key = "a"
value = "A"

[[rows]]
key = "r1"
  [[rows.cells]]
  key = "a"
  value = "1"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Small" || len(doc.Rows) != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestTable_Props(t *testing.T) {
	doc := Sample()
	table := doc.Table(nil)

	if len(table.Columns) != 3 || table.Columns[0].Value != "Host" {
		t.Fatalf("unexpected columns: %+v", table.Columns)
	}
	if table.GetRowActions == nil {
		t.Fatal("expected GetRowActions")
	}

	api1 := table.Rows[0]
	if api1.RenderRowsBefore == nil {
		t.Fatal("expected rows before api-1")
	}
	before := api1.RenderRowsBefore()
	if len(before) != 1 || before[0].Key != "api-1-before-0" || before[0].RenderRow() != "Production" {
		t.Errorf("unexpected inserted rows: %+v", before)
	}
	if api1.Cells[2].RenderCell == nil {
		t.Fatal("expected meter cell to render itself")
	}
	if got := api1.Cells[2].RenderCell(api1); !strings.HasSuffix(got, "42%") {
		t.Errorf("expected meter ending in 42%%, got %q", got)
	}

	worker := table.Rows[2]
	if !worker.IsDisabled || worker.RenderOnDisabledOverlay == nil || worker.RenderOnDisabledOverlay() != "draining" {
		t.Errorf("expected disabled worker with overlay, got %+v", worker)
	}
	if worker.RenderRowsAfter == nil || worker.RenderRowsAfter()[0].RenderRow() != "Staging" {
		t.Error("expected Staging after worker-1")
	}

	canary := table.Rows[3]
	if !canary.Cells[1].Hidden {
		t.Error("expected canary region hidden")
	}
	if ra := table.GetRowActions(canary); !ra.Hidden {
		t.Error("expected canary actions hidden")
	}
	if ra := table.GetRowActions(table.Rows[1]); len(ra.Actions) != 3 {
		t.Errorf("expected 3 actions on api-2, got %d", len(ra.Actions))
	}
}

func TestTable_NoActions(t *testing.T) {
	doc, err := Parse([]byte(`
[[rows]]
key = "r1"
  [[rows.cells]]
  key = "a"
  value = "1"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Table(nil).GetRowActions != nil {
		t.Error("expected no GetRowActions without actions")
	}
}

func TestTable_Dispatch(t *testing.T) {
	doc := Sample()
	var got []Command
	table := doc.Table(DispatchFunc(func(cmd Command) { got = append(got, cmd) }))

	row := table.Rows[1]
	actions := table.GetRowActions(row).Actions
	actions[1].OnPress(row)

	if len(got) != 1 {
		t.Fatalf("expected 1 command, got %d", len(got))
	}
	if got[0].Name != CommandToggle || got[0].Action != "drain" || got[0].Row.Key != "api-2" {
		t.Errorf("unexpected command: %+v", got[0])
	}
}

func TestSetDisabled(t *testing.T) {
	doc := Sample()

	if !doc.SetDisabled("api-1", true) {
		t.Fatal("expected api-1 to exist")
	}
	if !doc.Disabled("api-1") {
		t.Error("expected api-1 disabled")
	}
	if !doc.Table(nil).Rows[0].IsDisabled {
		t.Error("expected rebuilt table to carry the flag")
	}
	if doc.SetDisabled("nope", true) {
		t.Error("expected unknown row to report false")
	}
}

func TestMeter(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{0, "░░░░ 0%"},
		{0.5, "██░░ 50%"},
		{1, "████ 100%"},
		{1.7, "████ 100%"},
		{-1, "░░░░ 0%"},
	}

	for _, tc := range tests {
		if got := Meter(tc.level, 4); got != tc.want {
			t.Errorf("Meter(%v, 4) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestRowText(t *testing.T) {
	row := flextable.Row{
		Key: "r",
		Cells: []flextable.Cell{
			{Key: "a", Value: "one"},
			{Key: "b", Value: "secret", Hidden: true},
			{Key: "c", RenderCell: func(flextable.Row) string { return "x\ny" }},
		},
	}
	if got := RowText(row); got != "one\tx y" {
		t.Errorf("RowText = %q", got)
	}
}
