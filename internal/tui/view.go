package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// View renders the board with any modal for the current mode layered on top
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)
	if m.mouse {
		view.MouseMode = tea.MouseModeCellMotion
	}

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.AddCardMode, state.EditCardMode:
		modal = m.renderCardFormLayer()
	case state.AddColumnMode, state.RenameColumnMode:
		modal = m.renderColumnFormLayer()
	case state.DeleteCardConfirmMode:
		modal = m.renderDeleteCardLayer()
	case state.DeleteColumnConfirmMode:
		modal = m.renderDeleteColumnLayer()
	case state.AlertMode:
		modal = m.renderAlertLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	case state.CardDetailMode:
		modal = m.renderCardDetailLayer()
	case state.ContextMenuMode:
		modal = m.renderMenuLayer()
	}
	if modal != nil {
		layers = append(layers, modal)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}
