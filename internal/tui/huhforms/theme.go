package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config"
)

// CreateTheme builds a huh theme from the color scheme. Focused fields use
// the create color, or the edit color when isEdit is set, matching the
// border of the box the form is drawn in.
func CreateTheme(cs config.ColorScheme, isEdit bool) huh.Theme {
	focus := lipgloss.Color(cs.Create)
	if isEdit {
		focus = lipgloss.Color(cs.Edit)
	}
	subtle := lipgloss.Color(cs.Subtle)
	text := lipgloss.Color(cs.Normal)
	bad := lipgloss.Color(cs.Delete)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)

		f := &s.Focused
		f.Base = f.Base.BorderForeground(focus)
		f.Title = f.Title.Foreground(lipgloss.Color(cs.Title)).Bold(true)
		f.Description = f.Description.Foreground(subtle)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(bad)
		f.ErrorMessage = f.ErrorMessage.Foreground(bad)
		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(focus)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(focus)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(subtle)
		f.TextInput.Text = f.TextInput.Text.Foreground(text)

		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = s.Blurred.Title.Foreground(subtle).Bold(false)
		return s
	})
}
