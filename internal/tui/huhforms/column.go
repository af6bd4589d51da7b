package huhforms

import (
	"strings"

	"charm.land/huh/v2"
)

// CreateColumnForm asks for a column title. Blank titles are still submitted
// so the caller can show its own alert.
func CreateColumnForm(name *string, isEdit bool) *huh.Form {
	heading, hint := "New Column Name", "e.g. Review"
	if isEdit {
		heading, hint = "Rename Column", strings.TrimSpace(*name)
	}

	input := huh.NewInput().
		Key("name").
		Title(heading).
		Placeholder(hint).
		CharLimit(60).
		Value(name)

	return huh.NewForm(huh.NewGroup(input)).WithShowHelp(false)
}
