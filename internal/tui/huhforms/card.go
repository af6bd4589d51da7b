package huhforms

import "charm.land/huh/v2"

// CreateCardForm creates a huh form for adding or editing a card.
// Values are written in place through the pointers; labels are a single
// comma-separated line.
func CreateCardForm(
	title *string,
	description *string,
	labels *string,
	isEdit bool,
) *huh.Form {
	heading := "New Card"
	if isEdit {
		heading = "Edit Card"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title(heading).
			Placeholder("Enter card title...").
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported").
			CharLimit(2000).
			Lines(4).
			Value(description),

		huh.NewInput().
			Key("labels").
			Title("Labels").
			Placeholder("comma separated, e.g. backend, urgent").
			Value(labels),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CardFormKeyMap()).WithShowHelp(false)
}
