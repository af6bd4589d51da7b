package components

import "github.com/thenoetrevino/tablero/internal/tui/layout"

const (
	ColumnContentWidth = 38                     // inside the column border and padding
	ColumnWidth        = ColumnContentWidth + 4 // border + padding on each side
	ColumnGap          = 1
	CardContentWidth   = ColumnContentWidth - 2 // card border on each side
	CardContentLines   = 3                      // title, description, labels
	CardHeight         = CardContentLines + 2
	MenuWidth          = 28
)

// Metrics returns the rendered sizes used for mouse hit-testing
func Metrics() layout.Metrics {
	return layout.Metrics{
		ColumnWidth: ColumnWidth,
		ColumnGap:   ColumnGap,
		CardHeight:  CardHeight,
	}
}
