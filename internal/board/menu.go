package board

import "github.com/thenoetrevino/tablero/internal/models"

// Action names a user intent the router can dispatch.
type Action string

const (
	ActionMoveTo    Action = "move-to"
	ActionDetails   Action = "details"
	ActionDelete    Action = "delete"
	ActionDragStart Action = "drag-start"
	ActionDrop      Action = "drop"
)

// MenuItem is one entry of a card's action menu.
type MenuItem struct {
	Action Action
	Label  string
	TaskID int
	Status models.Status
}

// Event converts the menu entry into a router event.
func (m MenuItem) Event() Event {
	return Event{Action: m.Action, TaskID: m.TaskID, Status: m.Status}
}

// BuildMenu generates the menu of a card filed under current. The current
// status is never offered as a destination.
func BuildMenu(layout *Layout, current models.Status, taskID int) []MenuItem {
	items := make([]MenuItem, 0, layout.Len()+2)
	for _, col := range layout.Columns() {
		if col.Status == current {
			continue
		}
		items = append(items, MenuItem{
			Action: ActionMoveTo,
			Label:  "Move to " + col.Status.Label(),
			TaskID: taskID,
			Status: col.Status,
		})
	}
	items = append(items,
		MenuItem{Action: ActionDetails, Label: "Details", TaskID: taskID},
		MenuItem{Action: ActionDelete, Label: "Delete", TaskID: taskID},
	)
	return items
}
