package notifications

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

func TestToast_TitlePerLevel(t *testing.T) {
	tests := []struct {
		level state.NotificationLevel
		title string
	}{
		{state.LevelInfo, "Info"},
		{state.LevelSuccess, "Success"},
		{state.LevelWarning, "Warning"},
		{state.LevelError, "Error"},
	}
	for _, tt := range tests {
		out := Toast(state.Notification{Level: tt.level, Message: "Task created successfully."})
		assert.Contains(t, out, tt.title)
		assert.Contains(t, out, "Task created successfully.")
	}
}

func TestRender_WrapsLongMessages(t *testing.T) {
	out := Render(state.LevelError, strings.Repeat("could not update ", 10))
	// border and padding add four columns
	assert.LessOrEqual(t, lipgloss.Width(out), MaxWidth+4)
	assert.Greater(t, lipgloss.Height(out), 3)
}
