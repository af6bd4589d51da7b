package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	// a fixed style; auto-detection would query the terminal the TUI is reading from
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a card description as Markdown.
// Falls back to the raw text if rendering fails.
func RenderDescription(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return SubtleStyle.Render("No description")
	}

	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(description)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return description
}

type DetailProps struct {
	Card   models.Card
	Column string
	Width  int
}

const (
	minDetailWidth = 30
	detailHint     = "j/k scroll  e edit  esc close"
)

// DetailWidth is the content width of a detail view given the space
// available. It never drops below 30 cells.
func DetailWidth(width int) int {
	return max(width, minDetailWidth)
}

// RenderCardDetailBody renders the scrollable part of the read-only card view
func RenderCardDetailBody(props DetailProps) string {
	width := DetailWidth(props.Width)

	labelLine := SubtleStyle.Render("no labels")
	if len(props.Card.Labels) > 0 {
		labelLine = RenderLabelChips(props.Card.Labels, "")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render(wordwrap.String(props.Card.Title, width)),
		IndicatorStyle.Render("in "+props.Column+" · "+props.Card.ID),
		"",
		labelLine,
		"",
		RenderDescription(props.Card.Description, width),
	)
}

// RenderCardDetail frames an already laid out detail body with the key hints
func RenderCardDetail(body string, width int) string {
	w := DetailWidth(width)
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		"",
		IndicatorStyle.Render(ansi.Truncate(detailHint, w, "")),
	)
	return DetailBoxStyle.Width(w + DetailBoxStyle.GetHorizontalFrameSize()).Render(content)
}
