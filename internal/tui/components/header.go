package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

type HeaderProps struct {
	Width        int
	Columns      int
	Cards        int
	Notification *state.Notification
}

// RenderHeader renders the top line: app name, board counts and the most
// recent notification aligned right
func RenderHeader(props HeaderProps) string {
	left := TitleStyle.Render("Tablero") +
		IndicatorStyle.Render(fmt.Sprintf("  %d columns · %d cards", props.Columns, props.Cards))

	right := ""
	if props.Notification != nil {
		right = RenderNotification(*props.Notification)
	}

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gapWidth) + right
}

// RenderNotification renders a compact inline notification
func RenderNotification(n state.Notification) string {
	switch n.Level {
	case state.LevelWarning:
		return WarningBannerStyle.Render("⚠ " + n.Message)
	case state.LevelError:
		return ErrorBannerStyle.Render("✕ " + n.Message)
	default:
		return InfoBannerStyle.Render("● " + n.Message)
	}
}
