package flextable

import "testing"

func TestFlexTable_SingleActionPress(t *testing.T) {
	rec := &pressRecorder{}
	calls := 0
	ft := New(withActions(sampleTable(), rec, &calls))

	for _, key := range []string{"row1", "row2"} {
		if !ft.Press(key) {
			t.Fatalf("Press(%s) = false, want true", key)
		}
		if ft.MenuState(key) != MenuClosed {
			t.Errorf("%s menu = %v after single action, want closed", key, ft.MenuState(key))
		}
	}

	want := []string{"alert@row1", "alert@row2"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, rec.calls[i], want[i])
		}
	}
}

func TestFlexTable_MenuOpenSelect(t *testing.T) {
	rec := &pressRecorder{}
	calls := 0
	ft := New(withActions(sampleTable(), rec, &calls))

	if ft.MenuState("row3") != MenuClosed {
		t.Fatal("menu not closed by default")
	}
	ft.Press("row3")
	if ft.MenuState("row3") != MenuOpen {
		t.Fatal("menu not open after anchor press")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("anchor press dispatched %v", rec.calls)
	}
	if key, ok := ft.OpenMenuRow(); !ok || key != "row3" {
		t.Errorf("OpenMenuRow() = %q, %v", key, ok)
	}
	if ft.MenuState("row1") != MenuClosed {
		t.Error("opening row3 changed row1")
	}

	ft.MoveMenuCursor("row3", 1)
	if !ft.SelectCurrent("row3") {
		t.Fatal("SelectCurrent() = false, want true")
	}
	if ft.MenuState("row3") != MenuClosed {
		t.Error("menu still open after select")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "alert-outline@row3" {
		t.Errorf("calls = %v, want [alert-outline@row3]", rec.calls)
	}
}

func TestFlexTable_HiddenActionsIgnorePress(t *testing.T) {
	rec := &pressRecorder{}
	calls := 0
	ft := New(withActions(sampleTable(), rec, &calls))

	if ft.Press("row4") {
		t.Error("Press on hidden actions = true, want false")
	}
	if ft.Press("missing") {
		t.Error("Press on unknown row = true, want false")
	}
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none", rec.calls)
	}
}

func TestFlexTable_DismissAndSetTable(t *testing.T) {
	rec := &pressRecorder{}
	calls := 0
	table := withActions(sampleTable(), rec, &calls)
	ft := New(table)

	ft.Press("row3")
	if !ft.Dismiss("row3") {
		t.Fatal("Dismiss() = false, want true")
	}
	if len(rec.calls) != 0 {
		t.Errorf("dismiss dispatched %v", rec.calls)
	}

	ft.Press("row3")
	table.Rows = table.Rows[:2]
	ft.SetTable(table)
	if _, ok := ft.OpenMenuRow(); ok {
		t.Error("menu state survived removal of its row")
	}
	if ft.Dismiss("row3") {
		t.Error("Dismiss() on removed row = true, want false")
	}
}

func TestFlexTable_DefaultStyleOption(t *testing.T) {
	table := sampleTable()
	table.Style = TableStyle{BackgroundColor: "#010101"}
	ft := New(table, WithDefaultStyle(TableStyle{BorderColor: "#abcdef"}))

	got := ft.Layout().Style
	want := TableStyle{BorderColor: "#abcdef", BackgroundColor: "#010101"}
	if got != want {
		t.Errorf("Style = %+v, want %+v", got, want)
	}
}
