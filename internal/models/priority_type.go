package models

// Priority is the small positive ordinal the API uses for task priority.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// AllPriorities returns the priorities a form may offer.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Valid reports whether p is one of the known levels.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Label returns the badge text for the priority; unknown values read "Unknown".
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Color returns the badge color for the priority.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return "#0D6EFD"
	case PriorityMedium:
		return "#FFC107"
	case PriorityHigh:
		return "#DC3545"
	default:
		return "#6C757D"
	}
}
