package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleDeleteCardConfirm handles card deletion confirmation
func (m Model) handleDeleteCardConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteCard()
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmDeleteCard performs the actual card deletion
func (m Model) confirmDeleteCard() (tea.Model, tea.Cmd) {
	if card, ok := m.currentCard(); ok && m.Board.DeleteCard(card.ID) {
		slog.Debug("card deleted", "card", card.ID)
	}
	m.UiState.SetMode(state.NormalMode)
	m.clampSelection()
	return m, nil
}

// handleDeleteColumnConfirm handles column deletion confirmation
func (m Model) handleDeleteColumnConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteColumn()
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmDeleteColumn deletes the selected column and every card in it
func (m Model) confirmDeleteColumn() (tea.Model, tea.Cmd) {
	if col, ok := m.currentColumn(); ok {
		removed := m.Board.DeleteColumn(col.ID)
		m.UiState.ForgetColumn(col.ID)
		slog.Debug("column deleted", "column", col.ID, "cards", removed)
	}
	m.UiState.SetMode(state.NormalMode)
	m.UiState.SetSelectedCard(0)
	m.clampSelection()
	return m, nil
}

// ============================================================================
// ALERT, HELP AND DETAIL
// ============================================================================

// handleAlertMode dismisses the alert on any key
func (m Model) handleAlertMode(tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.UiState.DismissAlert()
	return m, nil
}

// handleHelpMode handles input in the help screen
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleCardDetailMode handles input while a card is shown read-only
func (m Model) handleCardDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.EditCard:
		return m.openEditCardForm()
	case m.Config.KeyMappings.ViewCard, m.Config.KeyMappings.Quit, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	vp, cmd := m.detail.Update(msg)
	*m.detail = vp
	return m, cmd
}
