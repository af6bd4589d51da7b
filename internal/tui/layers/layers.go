// Package layers provides utility functions for creating and positioning UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateAnchoredLayer places content with its top-left corner at (x, y),
// shifted left or up as needed so it stays on screen.
// Returns nil if content is empty.
func CreateAnchoredLayer(content string, x, y, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x, y = ClampAnchor(x, y, lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ClampAnchor returns the top-left corner actually used for a box of the
// given size anchored at (x, y)
func ClampAnchor(x, y, width, height, screenWidth, screenHeight int) (int, int) {
	x = max(min(x, screenWidth-width), 0)
	y = max(min(y, screenHeight-height), 0)
	return x, y
}
