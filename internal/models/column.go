package models

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// Tasks holds the cards in display order; the order is user-controlled.
type Column struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Tasks []Card `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}
