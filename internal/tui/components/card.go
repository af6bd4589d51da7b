package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// CardProps describes how a card is drawn
type CardProps struct {
	Card     models.Card
	Selected bool
	// Dragged marks the card currently being dragged
	Dragged bool
	// DropTarget highlights the border edge the dragged card would land on
	DropTarget bool
	DropSide   models.Side
}

// RenderCard renders a single card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}             ┃
//	┃ {description}       ┃
//	┃ label1 label2       ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// The card always has CardHeight rows and ColumnContentWidth cells.
func RenderCard(p CardProps) string {
	bg := theme.CardBg
	if p.Selected {
		bg = theme.SelectedBg
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(bg)).Render(fitLine(p.Card.Title)),
		renderDescriptionLine(p.Card.Description, bg),
		renderLabelsLine(p.Card.Labels, bg),
	}

	lineStyle := lipgloss.NewStyle().
		Width(CardContentWidth).
		Background(lipgloss.Color(bg))
	for i, line := range lines {
		lines[i] = lineStyle.Render(" " + line)
	}

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	switch {
	case p.Dragged:
		style = style.BorderForeground(lipgloss.Color(theme.Dragging))
	case p.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	if p.DropTarget {
		target := lipgloss.Color(theme.DropTarget)
		if p.DropSide == models.Before {
			style = style.BorderTopForeground(target)
		} else {
			style = style.BorderBottomForeground(target)
		}
	}

	return style.Render(strings.Join(lines, "\n"))
}

// fitLine truncates text to one card row
func fitLine(s string) string {
	s, _, _ = strings.Cut(s, "\n")
	return ansi.Truncate(s, CardContentWidth-2, "…")
}

func renderDescriptionLine(description string, bg string) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))
	if strings.TrimSpace(description) == "" {
		return style.Italic(true).Render("no description")
	}
	return style.Render(fitLine(description))
}

func renderLabelsLine(names []string, bg string) string {
	if len(names) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true).
			Render("no labels")
	}
	return ansi.Truncate(RenderLabelChips(names, bg), CardContentWidth-2, "…")
}
