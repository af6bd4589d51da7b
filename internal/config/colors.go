package config

import "github.com/thenoetrevino/tablero/internal/config/colors"

// ColorScheme is the configurable palette
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default teal-on-slate scheme
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}
