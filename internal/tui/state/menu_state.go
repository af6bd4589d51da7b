package state

// MenuAction identifies what a context menu entry does
type MenuAction int

const (
	ActionViewCard MenuAction = iota
	ActionEditCard
	ActionDeleteCard
	ActionMoveCardLeft
	ActionMoveCardRight
	ActionAddCard
	ActionRenameColumn
	ActionDeleteColumn
	ActionMoveColumnLeft
	ActionMoveColumnRight
	ActionAddColumn
)

// MenuItem is one entry in the context menu
type MenuItem struct {
	Label  string
	Action MenuAction
}

// MenuState tracks the open context menu.
// The menu is anchored at a screen position and targets either a card or a
// column; CardID is empty for column menus.
type MenuState struct {
	Items    []MenuItem
	Cursor   int
	AnchorX  int
	AnchorY  int
	ColumnID string
	CardID   string
}

// NewMenuState creates a closed menu.
func NewMenuState() *MenuState {
	return &MenuState{}
}

// CardMenu lists the actions for a card
func CardMenu() []MenuItem {
	return []MenuItem{
		{Label: "View details", Action: ActionViewCard},
		{Label: "Edit card", Action: ActionEditCard},
		{Label: "Move to previous column", Action: ActionMoveCardLeft},
		{Label: "Move to next column", Action: ActionMoveCardRight},
		{Label: "Delete card", Action: ActionDeleteCard},
	}
}

// ColumnMenu lists the actions for a column
func ColumnMenu() []MenuItem {
	return []MenuItem{
		{Label: "Add card", Action: ActionAddCard},
		{Label: "Rename column", Action: ActionRenameColumn},
		{Label: "Move column left", Action: ActionMoveColumnLeft},
		{Label: "Move column right", Action: ActionMoveColumnRight},
		{Label: "Add column", Action: ActionAddColumn},
		{Label: "Delete column", Action: ActionDeleteColumn},
	}
}

// BoardMenu lists the actions available outside any column
func BoardMenu() []MenuItem {
	return []MenuItem{
		{Label: "Add column", Action: ActionAddColumn},
	}
}

// Open shows items anchored at (x, y) for the given target.
func (s *MenuState) Open(items []MenuItem, x, y int, columnID, cardID string) {
	s.Items = items
	s.Cursor = 0
	s.AnchorX = x
	s.AnchorY = y
	s.ColumnID = columnID
	s.CardID = cardID
}

// Close hides the menu.
func (s *MenuState) Close() {
	*s = MenuState{}
}

// IsOpen reports whether the menu has entries to show.
func (s *MenuState) IsOpen() bool {
	return len(s.Items) > 0
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (s *MenuState) MoveUp() {
	if len(s.Items) == 0 {
		return
	}
	s.Cursor--
	if s.Cursor < 0 {
		s.Cursor = len(s.Items) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (s *MenuState) MoveDown() {
	if len(s.Items) == 0 {
		return
	}
	s.Cursor++
	if s.Cursor >= len(s.Items) {
		s.Cursor = 0
	}
}

// Selected returns the highlighted entry.
func (s *MenuState) Selected() (MenuItem, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return MenuItem{}, false
	}
	return s.Items[s.Cursor], true
}
