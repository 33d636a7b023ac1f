package flextable

import "testing"

type pressRecorder struct {
	calls []string
}

func (p *pressRecorder) action(key string) Action {
	return Action{
		Key:     key,
		Icon:    func(Row) string { return "star" },
		Title:   func(r Row) string { return key + " " + r.Key },
		OnPress: func(r Row) { p.calls = append(p.calls, key+"@"+r.Key) },
	}
}

func TestActionsCell_SingleActionDispatchesDirectly(t *testing.T) {
	rec := &pressRecorder{}
	row := Row{Key: "r1"}
	ra := RowActions{Actions: []Action{rec.action("star")}}

	var c ActionsCell
	if !c.Press(row, ra) {
		t.Fatal("Press() = false, want true")
	}
	if c.State() != MenuClosed {
		t.Errorf("state = %v, want closed", c.State())
	}
	if len(rec.calls) != 1 || rec.calls[0] != "star@r1" {
		t.Errorf("calls = %v, want [star@r1]", rec.calls)
	}
}

func TestActionsCell_MenuFlow(t *testing.T) {
	rec := &pressRecorder{}
	row := Row{Key: "r3"}
	ra := RowActions{Actions: []Action{rec.action("first"), rec.action("second")}}

	var c ActionsCell
	if c.State() != MenuClosed {
		t.Fatalf("initial state = %v, want closed", c.State())
	}

	if !c.Press(row, ra) {
		t.Fatal("Press() = false, want true")
	}
	if c.State() != MenuOpen {
		t.Fatalf("state after press = %v, want open", c.State())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("opening the menu dispatched %v", rec.calls)
	}

	if !c.Select(row, ra, 1) {
		t.Fatal("Select() = false, want true")
	}
	if c.State() != MenuClosed {
		t.Errorf("state after select = %v, want closed", c.State())
	}
	if len(rec.calls) != 1 || rec.calls[0] != "second@r3" {
		t.Errorf("calls = %v, want [second@r3]", rec.calls)
	}
}

func TestActionsCell_SelectClosesBeforeDispatch(t *testing.T) {
	var c ActionsCell
	row := Row{Key: "r1"}
	var stateDuringPress MenuState
	ra := RowActions{Actions: []Action{
		{Key: "a", OnPress: func(Row) { stateDuringPress = c.State() }},
		{Key: "b"},
	}}

	c.Press(row, ra)
	c.Select(row, ra, 0)
	if stateDuringPress != MenuClosed {
		t.Errorf("state seen by OnPress = %v, want closed", stateDuringPress)
	}
}

func TestActionsCell_Dismiss(t *testing.T) {
	rec := &pressRecorder{}
	row := Row{Key: "r1"}
	ra := RowActions{Actions: []Action{rec.action("a"), rec.action("b")}}

	var c ActionsCell
	if c.Dismiss() {
		t.Error("Dismiss() on closed menu = true, want false")
	}
	c.Press(row, ra)
	if !c.Dismiss() {
		t.Fatal("Dismiss() = false, want true")
	}
	if c.State() != MenuClosed {
		t.Errorf("state = %v, want closed", c.State())
	}
	if len(rec.calls) != 0 {
		t.Errorf("dismiss dispatched %v", rec.calls)
	}
}

func TestActionsCell_IgnoredPresses(t *testing.T) {
	rec := &pressRecorder{}
	row := Row{Key: "r1"}

	tests := []struct {
		name string
		ra   RowActions
	}{
		{"hidden", RowActions{Hidden: true, Actions: []Action{rec.action("a")}}},
		{"no actions", RowActions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c ActionsCell
			if c.Press(row, tt.ra) {
				t.Error("Press() = true, want false")
			}
			if c.State() != MenuClosed {
				t.Errorf("state = %v, want closed", c.State())
			}
		})
	}
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none", rec.calls)
	}
}

func TestActionsCell_SelectRequiresOpenMenu(t *testing.T) {
	rec := &pressRecorder{}
	row := Row{Key: "r1"}
	ra := RowActions{Actions: []Action{rec.action("a"), rec.action("b")}}

	var c ActionsCell
	if c.Select(row, ra, 0) {
		t.Error("Select() on closed menu = true, want false")
	}
	c.Press(row, ra)
	if c.Select(row, ra, 5) {
		t.Error("Select() out of range = true, want false")
	}
	if c.State() != MenuOpen {
		t.Errorf("state = %v, want open", c.State())
	}
	if len(rec.calls) != 0 {
		t.Errorf("calls = %v, want none", rec.calls)
	}
}

func TestActionsCell_MoveCursorWraps(t *testing.T) {
	ra := RowActions{Actions: []Action{{Key: "a"}, {Key: "b"}, {Key: "c"}}}
	var c ActionsCell
	c.MoveCursor(1, 3)
	if c.Cursor() != 0 {
		t.Fatalf("cursor moved while closed: %d", c.Cursor())
	}

	c.Press(Row{}, ra)
	c.MoveCursor(-1, 3)
	if c.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", c.Cursor())
	}
	c.MoveCursor(2, 3)
	if c.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", c.Cursor())
	}
}

func TestMenuStates_Independent(t *testing.T) {
	ra := RowActions{Actions: []Action{{Key: "a"}, {Key: "b"}}}
	menus := MenuStates{}
	menus.Get("r1").Press(Row{Key: "r1"}, ra)

	if got := menus.Get("r1").State(); got != MenuOpen {
		t.Errorf("r1 state = %v, want open", got)
	}
	if got := menus.Get("r2").State(); got != MenuClosed {
		t.Errorf("r2 state = %v, want closed", got)
	}
}
