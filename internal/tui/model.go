// Package tui is the terminal front end of the board: a bubbletea model that
// owns the UI state and turns key and mouse input into board mutations.
package tui

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layout"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Screen rows above the column boxes: header line and a blank gap
const boardTop = 2

// Screen cells left of the first column box, room for the scroll arrow
const boardLeft = 2

// Model represents the application state for the TUI
type Model struct {
	Config *config.Config
	Board  *board.Board

	UiState           *state.UIState
	SearchState       *state.SearchState
	NotificationState *state.NotificationState
	FormState         *state.FormState
	MenuState         *state.MenuState

	drag   *dnd.Machine
	detail *viewport.Model
	mouse  bool
}

// New creates the model for a board. The board is owned by the model from
// here on and is only mutated from Update.
func New(cfg *config.Config, b *board.Board) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	return Model{
		Config:            cfg,
		Board:             b,
		UiState:           state.NewUIState(),
		SearchState:       state.NewSearchState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		MenuState:         state.NewMenuState(),
		drag:              &dnd.Machine{},
		detail:            &viewport.Model{},
		mouse:             cfg.MouseEnabled(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Drag exposes the drag machine, mainly for tests and the status bar
func (m Model) Drag() *dnd.Machine {
	return m.drag
}

// ============================================================================
// SELECTION HELPERS
// ============================================================================

// visibleColumns returns the columns as displayed, with the search filter
// applied when it is active or being typed
func (m Model) visibleColumns() []models.Column {
	if m.SearchState.Filtering(m.UiState.Mode()) {
		return m.Board.Filtered(m.SearchState.Query)
	}
	return m.Board.Columns()
}

// currentColumn returns the selected column as displayed
func (m Model) currentColumn() (models.Column, bool) {
	cols := m.visibleColumns()
	i := m.UiState.SelectedColumn()
	if i < 0 || i >= len(cols) {
		return models.Column{}, false
	}
	return cols[i], true
}

// currentCard returns the selected card among the displayed cards
func (m Model) currentCard() (models.Card, bool) {
	col, ok := m.currentColumn()
	if !ok {
		return models.Card{}, false
	}
	i := m.UiState.SelectedCard()
	if i < 0 || i >= len(col.Tasks) {
		return models.Card{}, false
	}
	return col.Tasks[i], true
}

// clampSelection keeps the selection and viewport inside the board after any
// change to it
func (m Model) clampSelection() {
	cols := m.visibleColumns()
	if len(cols) == 0 {
		m.UiState.SetSelectedColumn(0)
		m.UiState.SetSelectedCard(0)
		m.UiState.SetViewportOffset(0)
		return
	}

	colIdx := min(m.UiState.SelectedColumn(), len(cols)-1)
	m.UiState.SetSelectedColumn(colIdx)

	cards := len(cols[colIdx].Tasks)
	m.UiState.SetSelectedCard(min(m.UiState.SelectedCard(), max(cards-1, 0)))

	m.UiState.EnsureSelectionVisible(colIdx)
	m.UiState.ClampViewport(len(cols))
}

// revealSelection scrolls the selected column so the selected card is shown
func (m Model) revealSelection() {
	m.clampSelection()
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	m.UiState.EnsureCardVisible(col.ID, m.UiState.SelectedCard(), m.frame().MaxVisibleCards())
}

// selectByID moves the selection to a column and, when cardID is set, to that
// card within it. Returns false if either is no longer displayed.
func (m Model) selectByID(columnID, cardID string) bool {
	for i, col := range m.visibleColumns() {
		if col.ID != columnID {
			continue
		}
		if cardID == "" {
			m.UiState.SetSelectedColumn(i)
			m.clampSelection()
			return true
		}
		for j, card := range col.Tasks {
			if card.ID == cardID {
				m.UiState.SetSelectedColumn(i)
				m.UiState.SetSelectedCard(j)
				m.revealSelection()
				return true
			}
		}
		return false
	}
	return false
}

// selectCard moves the selection to wherever a card is now displayed
func (m Model) selectCard(cardID string) bool {
	colID, ok := m.Board.ColumnOf(cardID)
	if !ok {
		return false
	}
	return m.selectByID(colID, cardID)
}

// ============================================================================
// GEOMETRY
// ============================================================================

// frame describes where every displayed column and card is on screen.
// Scroll offsets are clamped here so rendering and hit-testing agree.
func (m Model) frame() layout.Frame {
	f := layout.Frame{
		Metrics: components.Metrics(),
		Top:     boardTop,
		Left:    boardLeft,
		Height:  m.UiState.ContentHeight(),
		Offset:  m.UiState.ViewportOffset(),
		Visible: m.UiState.ViewportSize(),
	}

	maxVisible := f.MaxVisibleCards()
	cols := m.visibleColumns()
	f.Columns = make([]layout.Column, 0, len(cols))
	for _, col := range cols {
		ids := make([]string, 0, len(col.Tasks))
		for _, card := range col.Tasks {
			ids = append(ids, card.ID)
		}
		scroll := min(m.UiState.CardScrollOffset(col.ID), max(len(ids)-maxVisible, 0))
		f.Columns = append(f.Columns, layout.Column{ID: col.ID, Cards: ids, Scroll: scroll})
	}
	return f
}
