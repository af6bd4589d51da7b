package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// Drag and drop
// ============================================================================

// Todo=[A,B]; drag B onto the top half of A; drag A to Done.
func TestMouse_ReorderThenTransfer(t *testing.T) {
	m := setupModel(t)

	m = drag(m, columnX(0), cardY(1), columnX(0), cardY(0))
	assert.Equal(t, []string{"B", "A"}, cardIDs(m.Board.Cards("todo")))
	assert.False(t, m.Drag().Dragging())

	// A is now the second card; drop it on Done's empty body
	m = drag(m, columnX(0), cardY(1), columnX(2), cardY(3))
	assert.Equal(t, []string{"B"}, cardIDs(m.Board.Cards("todo")))
	assert.Equal(t, []string{"C", "A"}, cardIDs(m.Board.Cards("done")))
	assert.Equal(t, 3, m.Board.CardCount())

	// selection follows the moved card
	card, ok := m.currentCard()
	require.True(t, ok)
	assert.Equal(t, "A", card.ID)
}

func TestMouse_DropOnLowerHalfInsertsAfter(t *testing.T) {
	m := setupModel(t)

	// lower half of B
	m = drag(m, columnX(0), cardY(0), columnX(0), cardY(1)+2)

	assert.Equal(t, []string{"B", "A"}, cardIDs(m.Board.Cards("todo")))
}

func TestMouse_DropOverCardInOtherColumnAppends(t *testing.T) {
	m := setupModel(t)

	m = drag(m, columnX(0), cardY(0), columnX(2), cardY(0))

	assert.Equal(t, []string{"C", "A"}, cardIDs(m.Board.Cards("done")))
}

func TestMouse_DropOutsideColumnsCancels(t *testing.T) {
	m := setupModel(t)
	before := m.Board.Columns()

	m = drag(m, columnX(0), cardY(0), columnX(0), screenHeight-1)

	assert.Equal(t, before, m.Board.Columns())
	assert.False(t, m.Drag().Dragging())
}

func TestMouse_ClickSelectsWithoutMoving(t *testing.T) {
	m := setupModel(t)
	before := m.Board.Columns()

	m = drag(m, columnX(0), cardY(1), columnX(0), cardY(1))

	assert.Equal(t, before, m.Board.Columns())
	card, ok := m.currentCard()
	require.True(t, ok)
	assert.Equal(t, "B", card.ID)
}

func TestMouse_HeaderDragReordersColumns(t *testing.T) {
	m := setupModel(t)

	m = drag(m, columnX(0), headerY, columnX(2), headerY)

	assert.Equal(t, []string{"wip", "done", "todo"}, m.Board.ColumnIDs())
	col, ok := m.currentColumn()
	require.True(t, ok)
	assert.Equal(t, "todo", col.ID)
}

func TestMouse_ColumnShiftedDuringDragStillMovesDraggedColumn(t *testing.T) {
	m := setupModel(t)

	m = UpdateModelWithMessage(m, leftClick(columnX(0), headerY))
	m = SendKeysToModel(m, ">")
	require.Equal(t, []string{"wip", "todo", "done"}, m.Board.ColumnIDs())

	m = UpdateModelWithMessage(m, motion(columnX(2), headerY))
	m = UpdateModelWithMessage(m, release(columnX(2), headerY))

	assert.Equal(t, []string{"wip", "done", "todo"}, m.Board.ColumnIDs())
}

func TestMouse_CardMovedDuringDragTransfersFromItsNewColumn(t *testing.T) {
	m := setupModel(t)

	m = UpdateModelWithMessage(m, leftClick(columnX(0), cardY(0)))
	m = SendKeysToModel(m, "L")
	require.Equal(t, []string{"A"}, cardIDs(m.Board.Cards("wip")))

	m = UpdateModelWithMessage(m, motion(columnX(2), cardY(0)))
	m = UpdateModelWithMessage(m, release(columnX(2), cardY(0)))

	assert.Empty(t, m.Board.Cards("wip"))
	assert.Equal(t, []string{"C", "A"}, cardIDs(m.Board.Cards("done")))
}

func TestMouse_ColumnDeletedDuringDragCancels(t *testing.T) {
	m := setupModel(t)

	m = UpdateModelWithMessage(m, leftClick(columnX(1), headerY))
	m = SendKeysToModel(m, "X", "y")
	require.Equal(t, []string{"todo", "done"}, m.Board.ColumnIDs())

	m = UpdateModelWithMessage(m, release(columnX(0), headerY))

	assert.Equal(t, []string{"todo", "done"}, m.Board.ColumnIDs())
	assert.False(t, m.Drag().Dragging())
}

func TestMouse_HoverHighlightsOneTargetOnly(t *testing.T) {
	m := setupModel(t)

	m = UpdateModelWithMessage(m, leftClick(columnX(0), cardY(1)))
	m = UpdateModelWithMessage(m, motion(columnX(0), cardY(0)))
	hit, side := m.Drag().IsCardTarget("A")
	assert.True(t, hit)
	assert.Equal(t, models.Before, side)

	m = UpdateModelWithMessage(m, motion(columnX(2), cardY(2)))
	hit, _ = m.Drag().IsCardTarget("A")
	assert.False(t, hit)
	assert.True(t, m.Drag().IsColumnTarget("done"))

	m = UpdateModelWithMessage(m, motion(0, 0))
	assert.False(t, m.Drag().IsColumnTarget("done"))
}

func TestMouse_WheelScrollsColumn(t *testing.T) {
	var cards []models.Card
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		cards = append(cards, models.Card{ID: id, Title: "Card " + id})
	}
	m := setupModelWithBoard(t, board.FromColumns([]models.Column{{ID: "todo", Title: "Todo", Tasks: cards}}))

	m = UpdateModelWithMessage(m, tea.MouseWheelMsg{X: columnX(0), Y: cardY(0), Button: tea.MouseWheelDown})
	assert.Equal(t, 1, m.UiState.CardScrollOffset("todo"))

	m = UpdateModelWithMessage(m, tea.MouseWheelMsg{X: columnX(0), Y: cardY(0), Button: tea.MouseWheelUp})
	assert.Equal(t, 0, m.UiState.CardScrollOffset("todo"))
}

// ============================================================================
// Context menu
// ============================================================================

func TestMouse_RightClickMenuDeletesCard(t *testing.T) {
	m := setupModel(t)

	m = UpdateModelWithMessage(m, rightClick(columnX(0), cardY(1)))
	require.Equal(t, state.ContextMenuMode, m.UiState.Mode())
	assert.Equal(t, "B", m.MenuState.CardID)

	// pick "Delete card" with the mouse
	x, y := m.menuOrigin()
	m = UpdateModelWithMessage(m, leftClick(x+2, y+1+4))
	require.Equal(t, state.DeleteCardConfirmMode, m.UiState.Mode())

	m = SendKeysToModel(m, "y")
	assert.Equal(t, []string{"A"}, cardIDs(m.Board.Cards("todo")))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestMenu_KeyboardRenameColumn(t *testing.T) {
	m := setupModel(t)
	m = SendKeysToModel(m, "l", "m")
	require.Equal(t, state.ContextMenuMode, m.UiState.Mode())
	assert.Equal(t, state.ColumnMenu(), m.MenuState.Items, "empty column gets the column menu")

	m = SendKeysToModel(m, "j", "enter")

	assert.Equal(t, state.RenameColumnMode, m.UiState.Mode())
	assert.Equal(t, "Doing", m.FormState.FormColumnTitle)
}

func TestMenu_ClickOutsideCloses(t *testing.T) {
	m := setupModel(t)
	m = UpdateModelWithMessage(m, rightClick(columnX(0), cardY(0)))

	m = UpdateModelWithMessage(m, leftClick(1, screenHeight-1))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.MenuState.IsOpen())
}

// ============================================================================
// Keyboard
// ============================================================================

func TestKeyboard_MoveCardToNextColumn(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "j", "L")

	assert.Equal(t, []string{"A"}, cardIDs(m.Board.Cards("todo")))
	assert.Equal(t, []string{"B"}, cardIDs(m.Board.Cards("wip")))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
}

func TestKeyboard_ReorderCard(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "J")
	assert.Equal(t, []string{"B", "A"}, cardIDs(m.Board.Cards("todo")))
	assert.Equal(t, 1, m.UiState.SelectedCard())

	m = SendKeysToModel(m, "K")
	assert.Equal(t, []string{"A", "B"}, cardIDs(m.Board.Cards("todo")))
}

func TestKeyboard_MoveColumn(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, ">")

	assert.Equal(t, []string{"wip", "todo", "done"}, m.Board.ColumnIDs())
	assert.Equal(t, 1, m.UiState.SelectedColumn())
}

func TestDeleteCard_RequiresConfirmation(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "d", "n")
	assert.Len(t, m.Board.Cards("todo"), 2)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	m = SendKeysToModel(m, "d", "y")
	assert.Equal(t, []string{"B"}, cardIDs(m.Board.Cards("todo")))
}

func TestDeleteColumn_RemovesCards(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "X", "esc")
	assert.Equal(t, 3, m.Board.Len())

	m = SendKeysToModel(m, "X", "Y")
	assert.Equal(t, 2, m.Board.Len())
	assert.Equal(t, 1, m.Board.CardCount())
	_, ok := m.Board.Card("A")
	assert.False(t, ok)
}

func TestCardDetail_OpenAndClose(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "space")
	require.Equal(t, state.CardDetailMode, m.UiState.Mode())
	assert.Contains(t, ansi.Strip(m.View().Content), "Card A")

	m = SendKeysToModel(m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestCardDetail_ScrollsLongDescription(t *testing.T) {
	m := setupModel(t)
	var desc strings.Builder
	for i := range 60 {
		fmt.Fprintf(&desc, "paragraph %d\n\n", i)
	}
	require.NoError(t, m.Board.UpdateCard("A", "Card A", desc.String(), nil))

	m = SendKeysToModel(m, "space")
	require.Equal(t, state.CardDetailMode, m.UiState.Mode())
	require.True(t, m.detail.AtTop())

	m = SendKeysToModel(m, "j", "j")

	assert.False(t, m.detail.AtTop())
	assert.Equal(t, state.CardDetailMode, m.UiState.Mode())
}

func TestHelp_Toggle(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "?")
	require.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, ansi.Strip(m.View().Content), "Keyboard Shortcuts")

	m = SendKeysToModel(m, "?")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m := setupModel(t)

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: 'q', Text: "q"}))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ============================================================================
// Search
// ============================================================================

func TestSearch_FiltersLiveAndKeepsColumns(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "/", "CARD B")
	cols := m.visibleColumns()
	require.Len(t, cols, 3)
	assert.Equal(t, []string{"B"}, cardIDs(cols[0].Tasks))
	assert.Empty(t, cols[2].Tasks)

	m = SendKeysToModel(m, "enter")
	assert.True(t, m.SearchState.IsActive)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	// the board itself is untouched
	assert.Equal(t, 3, m.Board.CardCount())

	m = SendKeysToModel(m, "esc")
	assert.False(t, m.SearchState.IsActive)
	assert.Len(t, m.visibleColumns()[0].Tasks, 2)
}

func TestSearch_EscWhileTypingDropsQuery(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "/", "xyz", "backspace", "esc")

	assert.Empty(t, m.SearchState.Query)
	assert.False(t, m.SearchState.IsActive)
}

// ============================================================================
// Forms
// ============================================================================

func TestAddCard_BlankTitleShowsAlert(t *testing.T) {
	m := setupModel(t)
	before := m.Board.Columns()

	m = SendKeysToModel(m, "a")
	require.Equal(t, state.AddCardMode, m.UiState.Mode())
	m.FormState.FormTitle = "   "
	updated, _ := m.submitCardForm()
	m = updated.(Model)

	assert.Equal(t, state.AlertMode, m.UiState.Mode())
	assert.Equal(t, emptyCardTitleAlert, m.UiState.Alert())
	assert.Equal(t, before, m.Board.Columns())

	m = SendKeysToModel(m, "x")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestAddCard_AppendsAndSelects(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "a")
	m.FormState.FormTitle = " New card "
	m.FormState.FormLabels = "docs, ,urgent"
	updated, _ := m.submitCardForm()
	m = updated.(Model)

	cards := m.Board.Cards("todo")
	require.Len(t, cards, 3)
	assert.Equal(t, "New card", cards[2].Title)
	assert.Equal(t, []string{"docs", "urgent"}, cards[2].Labels)
	assert.Equal(t, 2, m.UiState.SelectedCard())
}

func TestAddCard_StaleColumnNotifies(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "a")
	m.Board.DeleteColumn("todo")
	m.FormState.FormTitle = "orphan"
	updated, _ := m.submitCardForm()
	m = updated.(Model)

	assert.True(t, m.NotificationState.HasAny())
	assert.Equal(t, 1, m.Board.CardCount())
}

func TestEditCard_PrefillsAndUpdates(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "j", "e")
	require.Equal(t, state.EditCardMode, m.UiState.Mode())
	assert.Equal(t, "Card B", m.FormState.FormTitle)
	assert.Equal(t, "backend", m.FormState.FormLabels)

	m.FormState.FormTitle = "Renamed"
	updated, _ := m.submitCardForm()
	m = updated.(Model)

	card, _ := m.Board.Card("B")
	assert.Equal(t, "Renamed", card.Title)
	assert.Equal(t, []string{"backend"}, card.Labels)
}

func TestColumnForm_BlankTitleShowsAlert(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "C")
	require.Equal(t, state.AddColumnMode, m.UiState.Mode())
	updated, _ := m.submitColumnForm()
	m = updated.(Model)

	assert.Equal(t, emptyColumnTitleAlert, m.UiState.Alert())
	assert.Equal(t, 3, m.Board.Len())
}

func TestColumnForm_AddsColumn(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "C")
	m.FormState.FormColumnTitle = "Review"
	updated, _ := m.submitColumnForm()
	m = updated.(Model)

	require.Equal(t, 4, m.Board.Len())
	col, ok := m.currentColumn()
	require.True(t, ok)
	assert.Equal(t, "Review", col.Title)
}

func TestForm_EscCancels(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "a", "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.FormState.CardForm)
	assert.Equal(t, 3, m.Board.CardCount())
}

func TestForms_RenderFieldsInsideModal(t *testing.T) {
	m := setupModel(t)

	m = SendKeysToModel(m, "e")
	require.Equal(t, state.EditCardMode, m.UiState.Mode())
	view := ansi.Strip(m.View().Content)
	assert.Contains(t, view, "Edit Card")
	assert.Contains(t, view, "Card A")

	m = SendKeysToModel(m, "esc", "R")
	require.Equal(t, state.RenameColumnMode, m.UiState.Mode())
	assert.Contains(t, ansi.Strip(m.View().Content), "Rename Column")
}

// ============================================================================
// View
// ============================================================================

func TestView_RendersBoard(t *testing.T) {
	m := setupModel(t)

	v := m.View()

	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, v.MouseMode)
	assert.Contains(t, ansi.Strip(v.Content), "Todo (2)")
	assert.Contains(t, ansi.Strip(v.Content), "Done (1)")
	assert.Contains(t, ansi.Strip(v.Content), "press ? for help")
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := New(nil, board.New())

	assert.Equal(t, "Loading...", m.View().Content)
}
