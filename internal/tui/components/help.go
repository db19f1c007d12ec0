package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// RenderHelp renders the key binding reference.
func RenderHelp(km config.KeyMappings) string {
	rows := [][2]string{
		{km.PrevColumn + " / " + km.NextColumn, "previous / next column"},
		{km.PrevTask + " / " + km.NextTask, "previous / next card"},
		{km.MoveMenu, "move menu"},
		{km.GrabTask, "grab card, then drop it on a column"},
		{km.AddTask, "new task"},
		{km.ViewTask, "task details"},
		{km.DeleteTask, "delete task"},
		{km.SaveForm, "save dialog"},
		{km.DetailsDelete, "delete from the details dialog"},
		{km.Reload, "reload board"},
		{km.ShowHelp, "toggle help"},
		{km.Quit, "quit"},
		{"mouse", "press on a card, release over a column to move it"},
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Width(14)

	var b strings.Builder
	b.WriteString(DialogTitle("Keys", theme.Highlight))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(keyStyle.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Hint("press any key to close"))

	return DialogStyle(theme.Highlight).Render(b.String())
}

// RenderStatusBar renders the one-line footer with the mode and key hints.
func RenderStatusBar(mode, hints string, width int) string {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Padding(0, 1).
		Render(mode)
	rest := subtleStyle().
		Width(max(width-lipgloss.Width(badge), 0)).
		Padding(0, 1).
		Render(hints)
	return badge + rest
}
