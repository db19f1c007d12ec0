package models

import "errors"

// Local validation errors. These are raised before any request is sent.
var (
	ErrInvalidTaskID   = errors.New("invalid task id")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date")
	ErrTitleRequired   = errors.New("title is required")
	ErrDueDateRequired = errors.New("due date is required")
)
