package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layout"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// viewBoard renders the header, the visible columns and the status bar.
// Column boxes start at row boardTop and cell boardLeft, matching frame().
func (m Model) viewBoard() string {
	f := m.frame()
	cols := m.visibleColumns()

	var notification *state.Notification
	if n, ok := m.NotificationState.Latest(); ok {
		notification = &n
	}
	header := components.RenderHeader(components.HeaderProps{
		Width:        m.UiState.Width(),
		Columns:      m.Board.Len(),
		Cards:        m.Board.CardCount(),
		Notification: notification,
	})

	var body string
	if len(cols) == 0 {
		body = strings.Repeat(" ", boardLeft) +
			components.SubtleStyle.Render("No columns yet. Press "+m.Config.KeyMappings.CreateColumn+" to add one.")
	} else {
		body = m.viewColumns(f, cols)
	}

	// keep the status bar on the last row whatever the board height
	lines := strings.Split(lipgloss.JoinVertical(lipgloss.Left, header, "", body), "\n")
	contentRows := max(m.UiState.Height()-1, 1)
	for len(lines) < contentRows {
		lines = append(lines, "")
	}
	lines = lines[:contentRows]

	return strings.Join(lines, "\n") + "\n" + m.viewStatusBar()
}

// viewColumns renders the columns inside the viewport with scroll arrows
func (m Model) viewColumns(f layout.Frame, cols []models.Column) string {
	target := m.drag.Target()
	draggedCard, _ := m.drag.DraggedCard()
	draggedColumn, _ := m.drag.DraggedColumn()

	end := min(f.Offset+f.Visible, len(cols))
	rendered := make([]string, 0, end-f.Offset)
	gap := strings.Repeat(" ", f.ColumnGap)

	for i := f.Offset; i < end; i++ {
		col := cols[i]
		selected := i == m.UiState.SelectedColumn()
		selectedCard := -1
		if selected {
			selectedCard = m.UiState.SelectedCard()
		}
		if i > f.Offset {
			rendered = append(rendered, gap)
		}

		props := components.ColumnProps{
			Column:       col,
			Selected:     selected,
			SelectedCard: selectedCard,
			Height:       f.Height,
			Scroll:       f.Columns[i].Scroll,
			MaxVisible:   f.MaxVisibleCards(),
			Dragged:      col.ID == draggedColumn,
			DropTarget:   m.drag.IsColumnTarget(col.ID),
			DraggedCard:  draggedCard,
		}
		if target.Kind == dnd.TargetCard && target.Column == col.ID {
			props.CardTarget = target.Card
			props.CardSide = target.Side
		}
		rendered = append(rendered, components.RenderColumn(props))
	}

	left, right := " ", " "
	if f.Offset > 0 {
		left = "◀"
	}
	if end < len(cols) {
		right = "▶"
	}
	left = components.IndicatorStyle.Render(left)
	right = components.IndicatorStyle.Render(right)

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", row, " ", right)
}

// viewStatusBar renders the bottom status line
func (m Model) viewStatusBar() string {
	dragging := ""
	if id, ok := m.drag.DraggedCard(); ok {
		if card, found := m.Board.Card(id); found {
			dragging = card.Title
		}
	}
	if id, ok := m.drag.DraggedColumn(); ok {
		if col, err := m.Board.Column(id); err == nil {
			dragging = col.Title
		}
	}

	mode := m.UiState.Mode()
	return components.RenderStatusBar(components.StatusBarProps{
		Width:       m.UiState.Width(),
		Mode:        mode.String(),
		SearchMode:  mode == state.SearchMode || m.SearchState.IsActive,
		SearchQuery: m.SearchState.Query,
		Dragging:    dragging,
	})
}
