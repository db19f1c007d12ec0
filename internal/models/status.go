package models

import "fmt"

// Status is the workflow state of a task. The API accepts exactly four tokens.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusCompleted  Status = "completed"
)

// AllStatuses returns every status in board display order.
func AllStatuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusBlocked, StatusCompleted}
}

// Valid reports whether s is one of the four known tokens.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human readable name of the status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusBlocked:
		return "Blocked"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseStatus converts a raw token into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}
