package config

import "github.com/thenoetrevino/tablero/internal/config/colors"

// ColorScheme is the theme section of the config.
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}
