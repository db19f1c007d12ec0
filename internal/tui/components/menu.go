package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderMoveMenu renders the action menu of a card with the cursor row
// highlighted.
func RenderMoveMenu(title string, items []board.MenuItem, cursor int) string {
	var b strings.Builder
	b.WriteString(DialogTitle(title, theme.Highlight))
	b.WriteString("\n\n")

	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true)
	normal := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	danger := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete))

	for i, item := range items {
		style := normal
		if item.Action == board.ActionDelete {
			style = danger
		}
		prefix := "  "
		if i == cursor {
			style = selected
			prefix = "> "
		}
		b.WriteString(style.Render(prefix + item.Label))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Hint("j/k select · enter apply · esc close"))

	return DialogStyle(theme.Highlight).Render(b.String())
}
