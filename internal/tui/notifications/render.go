package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// MaxWidth caps the message width of a toast.
const MaxWidth = 48

// Render draws a toast banner for a level.
func Render(level state.NotificationLevel, message string) string {
	style := levelStyle(level)

	message = wordwrap.String(message, MaxWidth)

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// Toast renders a queued notification.
func Toast(n state.Notification) string {
	return Render(n.Level, n.Message)
}
