package colors

// Default returns the default scheme: teal accents on a dark slate board
func Default() *ColorScheme {
	const (
		teal  = "#2AA198"
		slate = "#1B2329"
		panel = "#232E35"
		lift  = "#2F3D46"
		mist  = "#6C7A84"
		ink   = "#DCE3E8"
		amber = "#E5A93B"
		coral = "#E06C5B"
		sky   = "#5AA9E6"
		lime  = "#8CC265"
	)
	return &ColorScheme{
		Preset: "default",
		Accent: teal,

		Background:       slate,
		ColumnBackground: panel,

		Create: lime,
		Edit:   sky,
		Delete: coral,

		ColumnBorder:   mist,
		CardBorder:     lift,
		CardBackground: panel,
		SelectedBorder: teal,
		SelectedBg:     lift,
		DropTarget:     amber,
		Dragging:       mist,

		Title:  teal,
		Subtle: mist,
		Normal: ink,

		InfoFg:    sky,
		InfoBg:    slate,
		WarningFg: amber,
		WarningBg: slate,
		ErrorFg:   coral,
		ErrorBg:   slate,

		StatusBarBg:   lift,
		StatusBarText: ink,
	}
}
