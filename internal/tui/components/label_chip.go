package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/labels"
	"github.com/thenoetrevino/tablero/internal/models"
)

// RenderLabelChip renders a single label as a small colored chip
func RenderLabelChip(label models.Label, backgroundColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(label.Color)).
		Background(lipgloss.Color(backgroundColor)).
		Render(label.Name)
}

// RenderLabelChips renders a card's labels in order, colored from the shared registry
func RenderLabelChips(names []string, backgroundColor string) string {
	spacer := lipgloss.NewStyle().Background(lipgloss.Color(backgroundColor)).Render(" ")
	chips := make([]string, 0, len(names))
	for _, label := range labels.Resolve(names) {
		chips = append(chips, RenderLabelChip(label, backgroundColor))
	}
	return strings.Join(chips, spacer)
}
