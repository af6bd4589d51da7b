package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// CONTEXT MENU
// ============================================================================

// openMenu shows a context menu anchored at a screen cell
func (m Model) openMenu(items []state.MenuItem, x, y int, columnID, cardID string) {
	m.drag.Cancel()
	m.MenuState.Open(items, x, y, columnID, cardID)
	m.UiState.SetMode(state.ContextMenuMode)
}

// closeMenu hides the context menu and returns to normal mode
func (m Model) closeMenu() {
	m.MenuState.Close()
	m.UiState.SetMode(state.NormalMode)
}

// menuOrigin is the top-left corner the menu is actually drawn at
func (m Model) menuOrigin() (int, int) {
	w, h := components.MenuSize(len(m.MenuState.Items))
	return layers.ClampAnchor(m.MenuState.AnchorX, m.MenuState.AnchorY, w, h, m.UiState.Width(), m.UiState.Height())
}

// menuItemAt returns the index of the menu entry under a screen cell
func (m Model) menuItemAt(x, y int) (int, bool) {
	ox, oy := m.menuOrigin()
	w, _ := components.MenuSize(len(m.MenuState.Items))
	i := y - oy - 1
	if x <= ox || x >= ox+w-1 || i < 0 || i >= len(m.MenuState.Items) {
		return 0, false
	}
	return i, true
}

// handleMenuKey handles keyboard input while the menu is open
func (m Model) handleMenuKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case km.PrevCard, "up":
		m.MenuState.MoveUp()
	case km.NextCard, "down":
		m.MenuState.MoveDown()
	case "enter", "space":
		return m.runMenuAction()
	case "esc", km.ContextMenu, km.Quit:
		m.closeMenu()
	}
	return m, nil
}

// runMenuAction performs the highlighted entry against the menu's target.
// The target is re-selected by id first; if it is gone the menu just closes.
func (m Model) runMenuAction() (tea.Model, tea.Cmd) {
	item, ok := m.MenuState.Selected()
	columnID, cardID := m.MenuState.ColumnID, m.MenuState.CardID
	m.closeMenu()
	if !ok {
		return m, nil
	}

	if item.Action != state.ActionAddColumn && !m.selectByID(columnID, cardID) {
		return m, nil
	}

	switch item.Action {
	case state.ActionViewCard:
		m.openCardDetail()
	case state.ActionEditCard:
		return m.openEditCardForm()
	case state.ActionDeleteCard:
		m.askDeleteCard()
	case state.ActionMoveCardLeft:
		m.moveCardToAdjacent(-1)
	case state.ActionMoveCardRight:
		m.moveCardToAdjacent(1)
	case state.ActionAddCard:
		return m.openAddCardForm()
	case state.ActionRenameColumn:
		return m.openRenameColumnForm()
	case state.ActionDeleteColumn:
		m.askDeleteColumn()
	case state.ActionMoveColumnLeft:
		m.shiftColumn(-1)
	case state.ActionMoveColumnRight:
		m.shiftColumn(1)
	case state.ActionAddColumn:
		return m.openAddColumnForm()
	}
	return m, nil
}
