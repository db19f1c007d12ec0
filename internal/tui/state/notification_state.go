package state

import (
	"time"

	"charm.land/lipgloss/v2"
)

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelSuccess represents a completed operation
	LevelSuccess
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single toast with a severity level and how
// long it stays on screen.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Message string
	TTL     time.Duration
}

// NotificationState manages the toast stack.
type NotificationState struct {
	notifications []Notification
	nextID        int
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
	}
}

// Add pushes a notification and returns its id, which Dismiss accepts
// once the TTL runs out.
func (s *NotificationState) Add(level NotificationLevel, message string, ttl time.Duration) int {
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:      s.nextID,
		Level:   level,
		Message: message,
		TTL:     ttl,
	})
	return s.nextID
}

// Dismiss removes the notification with id. Unknown ids are ignored.
func (s *NotificationState) Dismiss(id int) {
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications, oldest first.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Last returns the newest notification.
func (s *NotificationState) Last() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	if s.windowWidth == 0 {
		return layers
	}

	row := 1
	for _, notification := range s.notifications {
		view := renderFunc(notification)
		height := lipgloss.Height(view)

		col := max(s.windowWidth-lipgloss.Width(view)-1, 0)
		if row+height >= s.windowHeight {
			break
		}

		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row))
		row += height
	}

	return layers
}
