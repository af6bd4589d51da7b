package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	AddCardMode                         // Creating a card with huh
	EditCardMode                        // Editing the selected card with huh
	AddColumnMode                       // Creating a new column
	RenameColumnMode                    // Renaming an existing column
	DeleteCardConfirmMode               // Confirming card deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	AlertMode                           // Blocking message, any key dismisses
	SearchMode                          // Vim-style search mode (/)
	ContextMenuMode                     // Right-click or m menu
	CardDetailMode                      // Read-only card view
	HelpMode                            // Displaying help screen
)

var modeNames = [...]string{
	NormalMode:              "normal",
	AddCardMode:             "add-card",
	EditCardMode:            "edit-card",
	AddColumnMode:           "add-column",
	RenameColumnMode:        "rename-column",
	DeleteCardConfirmMode:   "delete-card-confirm",
	DeleteColumnConfirmMode: "delete-column-confirm",
	AlertMode:               "alert",
	SearchMode:              "search",
	ContextMenuMode:         "context-menu",
	CardDetailMode:          "card-detail",
	HelpMode:                "help",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// IsForm reports whether the mode is driven by a huh form
func (m Mode) IsForm() bool {
	switch m {
	case AddCardMode, EditCardMode, AddColumnMode, RenameColumnMode:
		return true
	}
	return false
}

// UIState manages the user interface state.
// This includes navigation (column/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the selected card within the displayed
	// cards of the selected column
	selectedCard int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the vertical scroll offset for each column
	// Key: column id, Value: index of first visible card
	cardScrollOffsets map[string]int

	// alert is the message shown in AlertMode
	alert string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // recalculated when width is set
		cardScrollOffsets: make(map[string]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(index, 0)
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = max(index, 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width, columnWidth int) {
	s.width = width
	s.calculateViewportSize(columnWidth)
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height available to column boxes.
// This is terminal height minus header and status bar, with a minimum of 8.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // header + gap line
	const statusBarHeight = 1 // status bar
	return max(s.height-headerHeight-statusBarHeight, 8)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Alert returns the message of the current blocking alert.
func (s *UIState) Alert() string {
	return s.alert
}

// ShowAlert switches to AlertMode with the given message.
func (s *UIState) ShowAlert(message string) {
	s.alert = message
	s.mode = AlertMode
}

// DismissAlert clears the alert and returns to normal mode.
func (s *UIState) DismissAlert() {
	s.alert = ""
	s.mode = NormalMode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(offset, 0)
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns fit in the terminal width.
// columnWidth is the rendered column width plus the gap after it.
// 4 characters are reserved for the scroll indicators, and at least 1
// column is always visible.
func (s *UIState) calculateViewportSize(columnWidth int) {
	if s.width == 0 || columnWidth <= 0 {
		s.viewportSize = 1
		return
	}

	const reservedWidth = 4 // margins and scroll indicators

	s.viewportSize = max(1, (s.width-reservedWidth)/columnWidth)
}

// ClampViewport keeps the viewport within bounds for columnsLen columns.
func (s *UIState) ClampViewport(columnsLen int) {
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// EnsureSelectionVisible adjusts the viewport to ensure the selected column is visible.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// CardScrollOffset returns the vertical scroll offset for a given column.
func (s *UIState) CardScrollOffset(columnID string) int {
	return s.cardScrollOffsets[columnID]
}

// SetCardScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetCardScrollOffset(columnID string, offset int) {
	s.cardScrollOffsets[columnID] = max(0, offset)
}

// ScrollCardsUp moves the scroll offset up for a column.
// Returns true if scrolling occurred.
func (s *UIState) ScrollCardsUp(columnID string) bool {
	offset := s.CardScrollOffset(columnID)
	if offset > 0 {
		s.cardScrollOffsets[columnID] = offset - 1
		return true
	}
	return false
}

// ScrollCardsDown moves the scroll offset down for a column.
// Returns true if scrolling occurred.
func (s *UIState) ScrollCardsDown(columnID string, cardCount, visibleCount int) bool {
	offset := s.CardScrollOffset(columnID)
	if offset < max(0, cardCount-visibleCount) {
		s.cardScrollOffsets[columnID] = offset + 1
		return true
	}
	return false
}

// EnsureCardVisible adjusts the scroll offset so the selected card is on screen.
func (s *UIState) EnsureCardVisible(columnID string, selected, visibleCount int) {
	offset := s.CardScrollOffset(columnID)
	if selected < offset {
		s.cardScrollOffsets[columnID] = selected
	}
	if selected >= offset+visibleCount {
		s.cardScrollOffsets[columnID] = selected - visibleCount + 1
	}
}

// ForgetColumn drops per-column state for a deleted column.
func (s *UIState) ForgetColumn(columnID string) {
	delete(s.cardScrollOffsets, columnID)
}
