package state

// SearchState manages the vim-style search functionality state.
// This includes the search query text and whether the filter is currently active.
type SearchState struct {
	// Query is the current search text entered by the user
	Query string

	// IsActive indicates whether the search filter is applied
	// When true, the board shows only matching cards
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// AppendText appends typed text to the search query.
// Returns false if the query is at max length.
func (s *SearchState) AppendText(text string) bool {
	const maxQueryLength = 100

	if len([]rune(s.Query))+len([]rune(text)) > maxQueryLength {
		return false
	}

	s.Query += text
	return true
}

// Backspace removes the last character from the search query.
// Returns true if a character was removed, false if query was already empty.
func (s *SearchState) Backspace() bool {
	if s.Query == "" {
		return false
	}

	r := []rune(s.Query)
	s.Query = string(r[:len(r)-1])
	return true
}

// Clear resets the search query to empty string.
func (s *SearchState) Clear() {
	s.Query = ""
}

// Activate sets the filter as active.
// This is called when the user presses Enter in search mode.
func (s *SearchState) Activate() {
	s.IsActive = s.Query != ""
}

// Deactivate clears the filter.
func (s *SearchState) Deactivate() {
	s.IsActive = false
}

// Filtering reports whether cards should be filtered for display.
// Typing in search mode filters live, before Enter.
func (s *SearchState) Filtering(mode Mode) bool {
	return s.IsActive || (mode == SearchMode && s.Query != "")
}
