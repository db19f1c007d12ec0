package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// RenderMetadata renders the read-only fields of a task: created date,
// owner and the priority badge.
func RenderMetadata(createdAt *models.Date, ownerID *int, priority models.Priority) string {
	owner := "-"
	if ownerID != nil {
		owner = fmt.Sprintf("#%d", *ownerID)
	}
	label := subtleStyle()
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(priority.Color())).
		Bold(true).
		Render(priority.Label())

	return lipgloss.JoinHorizontal(lipgloss.Top,
		label.Render("Created: "), models.DisplayDate(createdAt),
		label.Render("   Owner: "), owner,
		label.Render("   Priority: "), badge,
	)
}
