package theme

import "github.com/thenoetrevino/tablero/internal/config"

// Colors read by components outside the shared styles, set by Init
var (
	Background     string
	Subtle         string
	SelectedBorder string
	SelectedBg     string
	CardBg         string
	DropTarget     string
	Dragging       string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Background = colors.Background
	Subtle = colors.Subtle
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	CardBg = colors.CardBackground
	DropTarget = colors.DropTarget
	Dragging = colors.Dragging
}
