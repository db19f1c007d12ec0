package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// Card geometry. A card is a bordered box with CardLines lines of content.
const (
	CardLines  = 4
	CardHeight = CardLines + 2

	// ColumnChrome is the number of lines a column adds around its cards:
	// two border lines, the header, the scroll indicator above and the
	// one below.
	ColumnChrome = 5

	// columnPadding is the horizontal border plus padding of a column.
	columnPadding = 4
	// cardBorder is the horizontal border of a card.
	cardBorder = 2
)

func columnStyle(borderColor string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1)
}

func cardStyle(borderColor, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true)
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

// DialogStyle frames a modal dialog in the given accent color.
func DialogStyle(accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 2)
}

// DialogTitle renders the heading of a dialog.
func DialogTitle(text, accent string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Bold(true).
		Render(text)
}

// Hint renders a dim line of key hints.
func Hint(text string) string {
	return subtleStyle().Italic(true).Render(text)
}

// ErrorText renders a validation or failure message.
func ErrorText(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Render(text)
}
