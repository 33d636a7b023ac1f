package flextable

// MenuState is the open/closed flag of one row's action menu.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// ActionsCell is the per-row action control. Single actions dispatch
// directly; several actions go through a dropdown menu.
type ActionsCell struct {
	state  MenuState
	cursor int
}

// State returns the current menu state.
func (c *ActionsCell) State() MenuState {
	return c.state
}

// Cursor returns the highlighted menu item.
func (c *ActionsCell) Cursor() int {
	return c.cursor
}

// Press handles a press on the cell's control and reports whether
// anything happened. One action is invoked directly without a state
// change. Several actions open the menu.
func (c *ActionsCell) Press(row Row, ra RowActions) bool {
	if ra.Hidden || len(ra.Actions) == 0 {
		return false
	}
	if len(ra.Actions) == 1 {
		ra.Actions[0].press(row)
		return true
	}
	if c.state == MenuOpen {
		return false
	}
	c.state = MenuOpen
	c.cursor = 0
	return true
}

// Select closes the menu and then invokes action i.
func (c *ActionsCell) Select(row Row, ra RowActions, i int) bool {
	if c.state != MenuOpen || ra.Hidden || i < 0 || i >= len(ra.Actions) {
		return false
	}
	c.state = MenuClosed
	c.cursor = 0
	ra.Actions[i].press(row)
	return true
}

// Dismiss closes the menu without invoking anything.
func (c *ActionsCell) Dismiss() bool {
	if c.state != MenuOpen {
		return false
	}
	c.state = MenuClosed
	c.cursor = 0
	return true
}

// MoveCursor moves the menu highlight by delta, wrapping over n items.
func (c *ActionsCell) MoveCursor(delta, n int) {
	if c.state != MenuOpen || n <= 0 {
		return
	}
	c.cursor = ((c.cursor+delta)%n + n) % n
}

// MenuStates holds one ActionsCell per row key.
type MenuStates map[string]*ActionsCell

// Get returns the cell for rowKey, creating it closed.
func (m MenuStates) Get(rowKey string) *ActionsCell {
	c, ok := m[rowKey]
	if !ok {
		c = &ActionsCell{}
		m[rowKey] = c
	}
	return c
}

func (m MenuStates) state(rowKey string) (MenuState, int) {
	c, ok := m[rowKey]
	if !ok {
		return MenuClosed, 0
	}
	return c.state, c.cursor
}
