package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width       int
	Mode        string
	SearchMode  bool
	SearchQuery string
	Dragging    string // what is being dragged, empty when idle
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode, search query or drag hint
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	left := StatusBarStyle.Render(" " + strings.ToUpper(props.Mode) + " ")
	if props.SearchMode {
		left += StatusBarSearchStyle.Render(" /" + props.SearchQuery + " ")
	}
	if props.Dragging != "" {
		left += StatusBarSearchStyle.Render(" dragging " + props.Dragging + " ")
	}

	right := IndicatorStyle.Render("press ? for help ")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
