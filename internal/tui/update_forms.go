package tui

import (
	"errors"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/huhforms"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

const (
	emptyCardTitleAlert   = "Card title cannot be empty!"
	emptyColumnTitleAlert = "Column title cannot be empty!"
)

// ============================================================================
// OPENING FORMS
// ============================================================================

// cardFormWidth is the outer width of the card form box
func (m Model) cardFormWidth() int {
	return max(min(m.UiState.Width()-4, 70), 30)
}

// formInnerWidth is the room a form gets inside a box of the given width
func (m Model) formInnerWidth(box int) int {
	return max(box-components.CreateInputBoxStyle.GetHorizontalFrameSize(), 10)
}

// openAddCardForm opens the card form for a new card in the selected column
func (m Model) openAddCardForm() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "Create a column first")
		return m, nil
	}

	m.FormState.ClearCardForm()
	m.FormState.TargetColumnID = col.ID
	m.FormState.CardForm = huhforms.CreateCardForm(
		&m.FormState.FormTitle,
		&m.FormState.FormDescription,
		&m.FormState.FormLabels,
		false,
	).WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, false)).
		WithWidth(m.formInnerWidth(m.cardFormWidth()))

	m.UiState.SetMode(state.AddCardMode)
	return m, m.FormState.CardForm.Init()
}

// openEditCardForm opens the card form prefilled with the selected card
func (m Model) openEditCardForm() (tea.Model, tea.Cmd) {
	card, ok := m.currentCard()
	if !ok {
		return m, nil
	}

	m.FormState.ClearCardForm()
	m.FormState.EditingCardID = card.ID
	m.FormState.FormTitle = card.Title
	m.FormState.FormDescription = card.Description
	m.FormState.FormLabels = board.JoinLabels(card.Labels)
	m.FormState.CardForm = huhforms.CreateCardForm(
		&m.FormState.FormTitle,
		&m.FormState.FormDescription,
		&m.FormState.FormLabels,
		true,
	).WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, true)).
		WithWidth(m.formInnerWidth(m.cardFormWidth()))

	m.UiState.SetMode(state.EditCardMode)
	return m, m.FormState.CardForm.Init()
}

// openAddColumnForm opens the column form for a new column
func (m Model) openAddColumnForm() (tea.Model, tea.Cmd) {
	m.FormState.ClearColumnForm()
	m.FormState.ColumnForm = huhforms.CreateColumnForm(&m.FormState.FormColumnTitle, false).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, false)).
		WithWidth(m.formInnerWidth(modalWidth))

	m.UiState.SetMode(state.AddColumnMode)
	return m, m.FormState.ColumnForm.Init()
}

// openRenameColumnForm opens the column form prefilled with the selected column
func (m Model) openRenameColumnForm() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		return m, nil
	}

	m.FormState.ClearColumnForm()
	m.FormState.EditingColumnID = col.ID
	m.FormState.FormColumnTitle = col.Title
	m.FormState.ColumnForm = huhforms.CreateColumnForm(&m.FormState.FormColumnTitle, true).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, true)).
		WithWidth(m.formInnerWidth(modalWidth))

	m.UiState.SetMode(state.RenameColumnMode)
	return m, m.FormState.ColumnForm.Init()
}

// ============================================================================
// RUNNING FORMS
// ============================================================================

// formConfig holds configuration for generic form handling
type formConfig struct {
	form     *huh.Form
	setForm  func(*huh.Form)
	cancel   func()
	onSubmit func() (tea.Model, tea.Cmd)
}

// updateForm handles all messages in the form modes.
// Forms need every message, not just key presses.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cfg := formConfig{
		form:     m.FormState.CardForm,
		setForm:  func(f *huh.Form) { m.FormState.CardForm = f },
		cancel:   m.FormState.ClearCardForm,
		onSubmit: m.submitCardForm,
	}
	if m.UiState.Mode() == state.AddColumnMode || m.UiState.Mode() == state.RenameColumnMode {
		cfg = formConfig{
			form:     m.FormState.ColumnForm,
			setForm:  func(f *huh.Form) { m.FormState.ColumnForm = f },
			cancel:   m.FormState.ClearColumnForm,
			onSubmit: m.submitColumnForm,
		}
	}

	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		cfg.cancel()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	return m.handleFormUpdate(msg, cfg)
}

// handleFormUpdate forwards a message to the form and acts on completion
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := cfg.form.Update(msg)
	form := model.(*huh.Form)
	cfg.setForm(form)

	switch form.State {
	case huh.StateCompleted:
		return cfg.onSubmit()
	case huh.StateAborted:
		cfg.cancel()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, cmd
}

// submitCardForm applies the card form values to the board.
// A blank title raises a blocking alert and leaves the board unchanged.
func (m Model) submitCardForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.FormState.FormTitle)
	description := strings.TrimSpace(m.FormState.FormDescription)
	labels := board.ParseLabels(m.FormState.FormLabels)
	editingID := m.FormState.EditingCardID
	columnID := m.FormState.TargetColumnID
	m.FormState.ClearCardForm()
	m.UiState.SetMode(state.NormalMode)

	if title == "" {
		m.UiState.ShowAlert(emptyCardTitleAlert)
		return m, nil
	}

	if editingID != "" {
		if err := m.Board.UpdateCard(editingID, title, description, labels); err != nil {
			slog.Error("Error updating card", "card", editingID, "error", err)
		}
		return m, nil
	}

	id, err := m.Board.AddCard(columnID, title, description, labels)
	switch {
	case errors.Is(err, models.ErrColumnNotFound):
		m.NotificationState.Add(state.LevelWarning, "Column no longer exists")
	case err != nil:
		slog.Error("Error creating card", "error", err)
		m.NotificationState.Add(state.LevelError, "Error creating card")
	default:
		slog.Debug("card created", "card", id, "column", columnID)
		m.selectCard(id)
	}
	return m, nil
}

// submitColumnForm adds or renames a column
func (m Model) submitColumnForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.FormState.FormColumnTitle)
	editingID := m.FormState.EditingColumnID
	m.FormState.ClearColumnForm()
	m.UiState.SetMode(state.NormalMode)

	if title == "" {
		m.UiState.ShowAlert(emptyColumnTitleAlert)
		return m, nil
	}

	if editingID != "" {
		if err := m.Board.RenameColumn(editingID, title); err != nil {
			slog.Error("Error renaming column", "column", editingID, "error", err)
		}
		return m, nil
	}

	id, err := m.Board.AddColumn(title)
	if err != nil {
		slog.Error("Error creating column", "error", err)
		m.NotificationState.Add(state.LevelError, "Error creating column")
		return m, nil
	}
	m.selectByID(id, "")
	return m, nil
}
