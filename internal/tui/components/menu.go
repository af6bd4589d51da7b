package components

import (
	"strings"

	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// MenuSize returns the outer width and height of a rendered menu
func MenuSize(items int) (int, int) {
	return MenuWidth + 2, items + 2
}

// RenderMenu renders the context menu; the highlighted entry is marked with >
func RenderMenu(menu *state.MenuState) string {
	lines := make([]string, 0, len(menu.Items))
	for i, item := range menu.Items {
		if i == menu.Cursor {
			lines = append(lines, MenuSelectedStyle.Render("> "+item.Label))
			continue
		}
		lines = append(lines, MenuItemStyle.Render("  "+item.Label))
	}
	return MenuStyle.Render(strings.Join(lines, "\n"))
}
