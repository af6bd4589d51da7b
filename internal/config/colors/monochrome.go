package colors

// Monochrome returns a grayscale scheme. Create, edit and delete differ only
// in brightness.
func Monochrome() *ColorScheme {
	const (
		white = "#FFFFFF"
		light = "#C6C6C6"
		mid   = "#808080"
		dark  = "#3A3A3A"
		deep  = "#1C1C1C"
		black = "#101010"
	)
	return &ColorScheme{
		Preset: "monochrome",
		Accent: white,

		Background:       black,
		ColumnBackground: deep,

		Create: white,
		Edit:   light,
		Delete: mid,

		ColumnBorder:   light,
		CardBorder:     dark,
		CardBackground: deep,
		SelectedBorder: white,
		SelectedBg:     dark,
		DropTarget:     light,
		Dragging:       mid,

		Title:  white,
		Subtle: mid,
		Normal: light,

		InfoFg:    white,
		InfoBg:    deep,
		WarningFg: white,
		WarningBg: dark,
		ErrorFg:   black,
		ErrorBg:   light,

		StatusBarBg:   dark,
		StatusBarText: white,
	}
}
