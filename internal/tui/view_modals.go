package tui

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
)

const modalWidth = 50

// ============================================================================
// FORMS
// ============================================================================

func (m Model) renderCardFormLayer() *lipgloss.Layer {
	if m.FormState.CardForm == nil {
		return nil
	}
	box := components.CreateInputBoxStyle
	if m.FormState.EditingCardID != "" {
		box = components.EditInputBoxStyle
	}
	formBox := box.Width(m.cardFormWidth()).Render(m.FormState.CardForm.View())
	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

func (m Model) renderColumnFormLayer() *lipgloss.Layer {
	if m.FormState.ColumnForm == nil {
		return nil
	}
	box := components.CreateInputBoxStyle
	if m.FormState.EditingColumnID != "" {
		box = components.EditInputBoxStyle
	}
	formBox := box.Width(modalWidth).Render(m.FormState.ColumnForm.View())
	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// ============================================================================
// CONFIRMATIONS AND ALERTS
// ============================================================================

func (m Model) renderDeleteCardLayer() *lipgloss.Layer {
	card, ok := m.currentCard()
	if !ok {
		return nil
	}
	content := fmt.Sprintf("Are you sure you want to delete this card?\n\n%s\n\n[y]es  [n]o",
		components.TitleStyle.Render(card.Title))
	confirmBox := components.DeleteConfirmBoxStyle.Width(modalWidth).Render(content)
	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

func (m Model) renderDeleteColumnLayer() *lipgloss.Layer {
	col, ok := m.currentColumn()
	if !ok {
		return nil
	}
	cards := len(m.Board.Cards(col.ID))
	content := fmt.Sprintf("Are you sure you want to delete this column and all its cards?\n\n%s (%d cards)\n\n[y]es  [n]o",
		components.TitleStyle.Render(col.Title), cards)
	confirmBox := components.DeleteConfirmBoxStyle.Width(modalWidth).Render(content)
	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

func (m Model) renderAlertLayer() *lipgloss.Layer {
	content := m.UiState.Alert() + "\n\n" + components.IndicatorStyle.Render("press any key")
	alertBox := components.AlertBoxStyle.Render(content)
	return layers.CreateCenteredLayer(alertBox, m.UiState.Width(), m.UiState.Height())
}

// ============================================================================
// DETAIL, MENU AND HELP
// ============================================================================

func (m Model) renderCardDetailLayer() *lipgloss.Layer {
	if _, ok := m.currentCard(); !ok {
		return nil
	}
	detail := components.RenderCardDetail(m.detail.View(), m.detailWidth())
	return layers.CreateCenteredLayer(detail, m.UiState.Width(), m.UiState.Height())
}

func (m Model) renderMenuLayer() *lipgloss.Layer {
	if !m.MenuState.IsOpen() {
		return nil
	}
	return layers.CreateAnchoredLayer(
		components.RenderMenu(m.MenuState),
		m.MenuState.AnchorX, m.MenuState.AnchorY,
		m.UiState.Width(), m.UiState.Height(),
	)
}

func (m Model) renderHelpLayer() *lipgloss.Layer {
	h := help.New()
	content := components.TitleStyle.Render("TABLERO - Keyboard Shortcuts") + "\n\n" +
		h.FullHelpView(m.helpBindings()) + "\n\n" +
		components.IndicatorStyle.Render("Mouse: drag cards and column headers, right-click for actions, wheel scrolls")
	helpBox := components.HelpBoxStyle.Render(content)
	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// helpBindings lists the current key mappings grouped for the help screen
func (m Model) helpBindings() [][]key.Binding {
	km := m.Config.KeyMappings
	b := func(k, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
	}
	return [][]key.Binding{
		{
			b(km.AddCard, "add card"),
			b(km.EditCard, "edit card"),
			b(km.DeleteCard, "delete card"),
			b(km.ViewCard, "view card"),
			b(km.MoveCardLeft, "card to prev column"),
			b(km.MoveCardRight, "card to next column"),
			b(km.MoveCardUp, "card up"),
			b(km.MoveCardDown, "card down"),
		},
		{
			b(km.CreateColumn, "add column"),
			b(km.RenameColumn, "rename column"),
			b(km.DeleteColumn, "delete column"),
			b(km.MoveColumnLeft, "column left"),
			b(km.MoveColumnRight, "column right"),
		},
		{
			b(km.PrevColumn, "prev column"),
			b(km.NextColumn, "next column"),
			b(km.PrevCard, "prev card"),
			b(km.NextCard, "next card"),
			b(km.Search, "search"),
			b(km.ContextMenu, "actions menu"),
			b(km.ShowHelp, "toggle help"),
			b(km.Quit, "quit"),
		},
	}
}
