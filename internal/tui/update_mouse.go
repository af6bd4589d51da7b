package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/layout"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// MOUSE HANDLERS
// ============================================================================

func slotOf(hit layout.Hit) dnd.Slot {
	return dnd.Slot{ID: hit.ColumnID, Index: hit.Column}
}

// handleMouseClick starts drags, selects and opens the context menu
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()

	switch m.UiState.Mode() {
	case state.ContextMenuMode:
		if i, ok := m.menuItemAt(mouse.X, mouse.Y); ok && mouse.Button == tea.MouseLeft {
			m.MenuState.Cursor = i
			return m.runMenuAction()
		}
		m.closeMenu()
		if mouse.Button != tea.MouseRight {
			return m, nil
		}
	case state.NormalMode:
	default:
		return m, nil
	}

	m.NotificationState.Clear()
	hit := m.frame().HitTest(mouse.X, mouse.Y)

	switch mouse.Button {
	case tea.MouseLeft:
		switch hit.Kind {
		case layout.HitCard:
			m.selectByID(hit.ColumnID, hit.CardID)
			m.drag.StartCard(hit.ColumnID, hit.CardID)
		case layout.HitHeader:
			m.selectByID(hit.ColumnID, "")
			m.drag.StartColumn(slotOf(hit))
		case layout.HitColumn:
			m.selectByID(hit.ColumnID, "")
		}

	case tea.MouseRight:
		switch hit.Kind {
		case layout.HitCard:
			m.selectByID(hit.ColumnID, hit.CardID)
			m.openMenu(state.CardMenu(), mouse.X, mouse.Y, hit.ColumnID, hit.CardID)
		case layout.HitHeader, layout.HitColumn:
			m.selectByID(hit.ColumnID, "")
			m.openMenu(state.ColumnMenu(), mouse.X, mouse.Y, hit.ColumnID, "")
		default:
			m.openMenu(state.BoardMenu(), mouse.X, mouse.Y, "", "")
		}
	}
	return m, nil
}

// handleMouseMotion tracks the drop target while dragging and the
// highlighted entry while the menu is open
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()

	if m.UiState.Mode() == state.ContextMenuMode {
		if i, ok := m.menuItemAt(mouse.X, mouse.Y); ok {
			m.MenuState.Cursor = i
		}
		return m, nil
	}
	if !m.drag.Dragging() || !m.drag.Resync(m.Board) {
		return m, nil
	}

	hit := m.frame().HitTest(mouse.X, mouse.Y)
	switch hit.Kind {
	case layout.HitCard:
		m.drag.HoverCard(slotOf(hit), hit.CardID, mouse.Y, hit.CardTop, m.frame().CardHeight)
	case layout.HitHeader, layout.HitColumn:
		m.drag.HoverColumn(slotOf(hit))
	default:
		m.drag.Leave()
	}
	return m, nil
}

// handleMouseRelease drops whatever is being dragged.
// Releasing outside every column abandons the drag.
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if !m.drag.Dragging() || !m.drag.Resync(m.Board) {
		return m, nil
	}

	mouse := msg.Mouse()
	hit := m.frame().HitTest(mouse.X, mouse.Y)
	if !hit.InColumn() {
		m.drag.Cancel()
		return m, nil
	}

	out := m.drag.Drop(slotOf(hit))
	if out.Rejected() {
		return m, nil
	}
	if out.Fallback {
		slog.Info("drop target was stale, resolved against drop location",
			"kind", out.Move.Kind, "column", hit.ColumnID)
	}
	if !m.Board.Apply(out.Move) {
		slog.Debug("drop left the board unchanged", "kind", out.Move.Kind)
		return m, nil
	}

	switch out.Move.Kind {
	case models.MoveColumnReorder:
		m.UiState.SetSelectedColumn(out.Move.ToIndex)
		m.clampSelection()
	default:
		m.selectCard(out.Move.CardID)
	}
	return m, nil
}

// handleMouseWheel scrolls the cards of the column under the cursor, or the
// open card detail
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.NormalMode:
	case state.CardDetailMode:
		vp, cmd := m.detail.Update(msg)
		*m.detail = vp
		return m, cmd
	default:
		return m, nil
	}

	mouse := msg.Mouse()
	f := m.frame()
	hit := f.HitTest(mouse.X, mouse.Y)
	if !hit.InColumn() {
		return m, nil
	}

	col := f.Columns[hit.Column]
	// start from the clamped offset so scrolling back up responds at once
	m.UiState.SetCardScrollOffset(col.ID, col.Scroll)
	switch mouse.Button {
	case tea.MouseWheelUp:
		m.UiState.ScrollCardsUp(col.ID)
	case tea.MouseWheelDown:
		m.UiState.ScrollCardsDown(col.ID, len(col.Cards), f.MaxVisibleCards())
	}
	return m, nil
}
