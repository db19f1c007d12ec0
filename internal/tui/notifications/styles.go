package notifications

import (
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

// levelStyle picks the banner look of a toast level.
func levelStyle(level state.NotificationLevel) style {
	switch level {
	case state.LevelSuccess:
		return style{icon: "✓", title: "Success", foreground: theme.SuccessFg, background: theme.SuccessBg}
	case state.LevelWarning:
		return style{icon: "⚠", title: "Warning", foreground: theme.WarningFg, background: theme.WarningBg}
	case state.LevelError:
		return style{icon: "✕", title: "Error", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return style{icon: "🔔", title: "Info", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}
