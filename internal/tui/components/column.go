package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// ColumnProps describes how a column is drawn.
// Column.Tasks holds the cards actually displayed, after any search filter.
type ColumnProps struct {
	Column       models.Column
	Selected     bool
	SelectedCard int // index into Column.Tasks, -1 for none
	Height       int // outer height of the box
	Scroll       int // index of first visible card
	MaxVisible   int // cards that fit

	// Drag state
	Dragged     bool   // the column itself is being dragged
	DropTarget  bool   // the column is highlighted as the drop destination
	DraggedCard string // id of a dragged card, if it is in this column
	CardTarget  string // id of the card highlighted as drop target
	CardSide    models.Side
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Title} ({count})
//	▲ more above (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ more below (if more cards below)
//
// The box is exactly ColumnWidth wide and Height tall so mouse hit-testing
// can rely on fixed offsets.
func RenderColumn(p ColumnProps) string {
	inner := max(p.Height-2, 3)
	lines := make([]string, 0, inner)

	header := fmt.Sprintf("%s (%d)", p.Column.Title, len(p.Column.Tasks))
	lines = append(lines, TitleStyle.Render(ansi.Truncate(header, ColumnContentWidth, "…")))

	cards := p.Column.Tasks
	scroll := min(max(p.Scroll, 0), len(cards))
	end := min(scroll+max(p.MaxVisible, 1), len(cards))

	switch {
	case len(cards) == 0:
		lines = append(lines, SubtleStyle.Render("No cards"))
	case scroll > 0:
		lines = append(lines, IndicatorStyle.Render("▲ more above"))
	default:
		lines = append(lines, "")
	}

	for i := scroll; i < end; i++ {
		card := cards[i]
		isTarget := card.ID == p.CardTarget
		rendered := RenderCard(CardProps{
			Card:       card,
			Selected:   p.Selected && i == p.SelectedCard,
			Dragged:    card.ID == p.DraggedCard,
			DropTarget: isTarget,
			DropSide:   p.CardSide,
		})
		lines = append(lines, strings.Split(rendered, "\n")...)
	}

	bottom := ""
	if end < len(cards) {
		bottom = IndicatorStyle.Render("▼ more below")
	}
	for len(lines) < inner-1 {
		lines = append(lines, "")
	}
	lines = append(lines[:inner-1], bottom)

	lineStyle := lipgloss.NewStyle().Width(ColumnContentWidth).MaxWidth(ColumnContentWidth)
	for i, line := range lines {
		lines[i] = lineStyle.Render(line)
	}

	border := theme.Subtle
	switch {
	case p.DropTarget:
		border = theme.DropTarget
	case p.Dragged:
		border = theme.Dragging
	case p.Selected:
		border = theme.SelectedBorder
	}

	return ColumnStyle.
		BorderForeground(lipgloss.Color(border)).
		Render(strings.Join(lines, "\n"))
}
