package models

// Label is a free-text tag resolved to its display color.
// Colors are assigned by the label registry, not stored on cards.
type Label struct {
	Name  string
	Color string // Hex color code (e.g., "#7D56F4")
}
