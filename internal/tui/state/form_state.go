package state

import (
	"charm.land/huh/v2"
)

// FormState manages the huh forms for cards and columns and the values they
// write into. Forms update the value fields in place through pointers.
type FormState struct {
	// Card form (add or edit)
	CardForm        *huh.Form
	EditingCardID   string // empty when adding
	TargetColumnID  string // column a new card goes into
	FormTitle       string
	FormDescription string
	FormLabels      string // comma separated

	// Column form (add or rename)
	ColumnForm      *huh.Form
	EditingColumnID string // empty when adding
	FormColumnTitle string
}

// NewFormState creates a new FormState with no open forms.
func NewFormState() *FormState {
	return &FormState{}
}

// ClearCardForm closes the card form and resets its values.
func (s *FormState) ClearCardForm() {
	s.CardForm = nil
	s.EditingCardID = ""
	s.TargetColumnID = ""
	s.FormTitle = ""
	s.FormDescription = ""
	s.FormLabels = ""
}

// ClearColumnForm closes the column form and resets its values.
func (s *FormState) ClearColumnForm() {
	s.ColumnForm = nil
	s.EditingColumnID = ""
	s.FormColumnTitle = ""
}

// Active returns whichever form is open, if any.
func (s *FormState) Active() *huh.Form {
	if s.CardForm != nil {
		return s.CardForm
	}
	return s.ColumnForm
}
