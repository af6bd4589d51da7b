package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layout"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// NORMAL MODE
// ============================================================================

// handleNormalMode handles keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case "esc":
		m.drag.Cancel()
		if m.SearchState.IsActive {
			m.SearchState.Clear()
			m.SearchState.Deactivate()
			m.clampSelection()
		}
		return m, nil

	// Navigation
	case km.PrevColumn, "left":
		m.moveSelection(-1, 0)
	case km.NextColumn, "right":
		m.moveSelection(1, 0)
	case km.PrevCard, "up":
		m.moveSelection(0, -1)
	case km.NextCard, "down":
		m.moveSelection(0, 1)

	// Cards
	case km.AddCard:
		return m.openAddCardForm()
	case km.EditCard:
		return m.openEditCardForm()
	case km.DeleteCard:
		m.askDeleteCard()
	case km.ViewCard, "enter":
		m.openCardDetail()
	case km.MoveCardLeft:
		m.moveCardToAdjacent(-1)
	case km.MoveCardRight:
		m.moveCardToAdjacent(1)
	case km.MoveCardUp:
		m.reorderCard(-1)
	case km.MoveCardDown:
		m.reorderCard(1)

	// Columns
	case km.CreateColumn:
		return m.openAddColumnForm()
	case km.RenameColumn:
		return m.openRenameColumnForm()
	case km.DeleteColumn:
		m.askDeleteColumn()
	case km.MoveColumnLeft:
		m.shiftColumn(-1)
	case km.MoveColumnRight:
		m.shiftColumn(1)

	// Other
	case km.Search:
		m.UiState.SetMode(state.SearchMode)
	case km.ContextMenu:
		m.openMenuForSelection()
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
	}
	return m, nil
}

// moveSelection moves the selection by whole columns (dx) or cards (dy)
func (m Model) moveSelection(dx, dy int) {
	cols := m.visibleColumns()
	if len(cols) == 0 {
		return
	}

	if dx != 0 {
		next := m.UiState.SelectedColumn() + dx
		if next < 0 || next >= len(cols) {
			return
		}
		m.UiState.SetSelectedColumn(next)
		m.UiState.SetSelectedCard(0)
	}
	if dy != 0 {
		next := m.UiState.SelectedCard() + dy
		if next < 0 || next >= len(cols[m.UiState.SelectedColumn()].Tasks) {
			return
		}
		m.UiState.SetSelectedCard(next)
	}
	m.revealSelection()
}

// askDeleteCard opens the delete confirmation for the selected card
func (m Model) askDeleteCard() {
	if _, ok := m.currentCard(); ok {
		m.UiState.SetMode(state.DeleteCardConfirmMode)
	}
}

// askDeleteColumn opens the delete confirmation for the selected column
func (m Model) askDeleteColumn() {
	if _, ok := m.currentColumn(); ok {
		m.UiState.SetMode(state.DeleteColumnConfirmMode)
	}
}

// openCardDetail shows the selected card read-only in a scrollable view
func (m Model) openCardDetail() {
	card, ok := m.currentCard()
	if !ok {
		return
	}
	col, _ := m.currentColumn()
	width := m.detailWidth()

	vp := viewport.New()
	vp.SetWidth(components.DetailWidth(width))
	vp.SetHeight(max(m.UiState.Height()-10, 3))
	vp.MouseWheelEnabled = true
	vp.SetContent(components.RenderCardDetailBody(components.DetailProps{
		Card:   card,
		Column: col.Title,
		Width:  width,
	}))
	*m.detail = vp
	m.UiState.SetMode(state.CardDetailMode)
}

func (m Model) detailWidth() int {
	return min(m.UiState.Width()-10, 72)
}

// moveCardToAdjacent moves the selected card to the end of the previous or
// next column. The selection follows the card.
func (m Model) moveCardToAdjacent(direction int) {
	card, ok := m.currentCard()
	if !ok {
		return
	}
	ids := m.Board.ColumnIDs()
	target := m.UiState.SelectedColumn() + direction
	if target < 0 || target >= len(ids) {
		return
	}
	if m.Board.MoveCard(card.ID, ids[target]) {
		slog.Debug("card moved", "card", card.ID, "to", ids[target])
		m.selectCard(card.ID)
	}
}

// reorderCard swaps the selected card with its displayed neighbour
func (m Model) reorderCard(direction int) {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	i := m.UiState.SelectedCard()
	j := i + direction
	if i < 0 || i >= len(col.Tasks) || j < 0 || j >= len(col.Tasks) {
		return
	}

	side := models.After
	if direction < 0 {
		side = models.Before
	}
	if m.Board.MoveCardWithin(col.ID, col.Tasks[i].ID, col.Tasks[j].ID, side) {
		m.selectCard(col.Tasks[i].ID)
	}
}

// shiftColumn moves the selected column one place left or right
func (m Model) shiftColumn(direction int) {
	from := m.UiState.SelectedColumn()
	if m.Board.MoveColumn(from, from+direction) {
		m.UiState.SetSelectedColumn(from + direction)
		m.clampSelection()
	}
}

// openMenuForSelection opens the context menu for the selected card, or for
// the selected column when it has no cards, next to it on screen
func (m Model) openMenuForSelection() {
	col, ok := m.currentColumn()
	if !ok {
		m.openMenu(state.BoardMenu(), boardLeft, boardTop, "", "")
		return
	}

	f := m.frame()
	x, _ := f.ColumnLeft(m.UiState.SelectedColumn())
	x += 2
	if card, ok := m.currentCard(); ok {
		y, visible := f.CardTop(m.UiState.SelectedColumn(), m.UiState.SelectedCard())
		if !visible {
			y = f.Top + layout.CardsOffset
		}
		m.openMenu(state.CardMenu(), x, y+1, col.ID, card.ID)
		return
	}
	m.openMenu(state.ColumnMenu(), x, f.Top+1, col.ID, "")
}
