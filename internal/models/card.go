package models

// Card represents a single task on the kanban board.
// A card is owned by exactly one column at a time.
type Card struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Labels      []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Clone returns a copy of the card that shares no slices with the original
func (c Card) Clone() Card {
	out := c
	if c.Labels != nil {
		out.Labels = append([]string(nil), c.Labels...)
	}
	return out
}
