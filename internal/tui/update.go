package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWidth(size.Width, components.ColumnWidth+components.ColumnGap)
		m.UiState.SetHeight(size.Height)
		m.clampSelection()
	}

	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// forms receive every message, not only keys
	if m.UiState.Mode().IsForm() {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	}
	return m, nil
}

// handleKey dispatches key presses by mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DeleteCardConfirmMode:
		return m.handleDeleteCardConfirm(msg)
	case state.DeleteColumnConfirmMode:
		return m.handleDeleteColumnConfirm(msg)
	case state.AlertMode:
		return m.handleAlertMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.CardDetailMode:
		return m.handleCardDetailMode(msg)
	case state.ContextMenuMode:
		return m.handleMenuKey(msg)
	}
	return m, nil
}
