package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// SEARCH MODE
// ============================================================================

// handleSearchMode handles typing the search query.
// The board filters live while typing; enter keeps the filter, esc drops it.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.SearchState.Clear()
		m.SearchState.Deactivate()
		m.UiState.SetMode(state.NormalMode)
	case "enter":
		m.SearchState.Activate()
		m.UiState.SetMode(state.NormalMode)
	case "backspace":
		if !m.SearchState.Backspace() {
			return m, nil
		}
	default:
		if msg.Text == "" || !m.SearchState.AppendText(msg.Text) {
			return m, nil
		}
	}

	m.UiState.SetSelectedCard(0)
	m.clampSelection()
	return m, nil
}
