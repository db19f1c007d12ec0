package board

import "errors"

var (
	// ErrCardNotFound is returned when no card with the id is on the board.
	ErrCardNotFound = errors.New("card not found on board")
	// ErrSameStatus is returned for a move into the column the card is already in.
	ErrSameStatus = errors.New("card is already in that column")
	// ErrUnknownAction is returned by the router for an unregistered action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidLayout is returned when a status to column mapping is not one-to-one.
	ErrInvalidLayout = errors.New("invalid board layout")
	// ErrTaskMissing is returned when the API answers without the task.
	ErrTaskMissing = errors.New("task missing from response")
	// ErrInvalidTransfer is returned for a drag payload that cannot be decoded.
	ErrInvalidTransfer = errors.New("invalid drag payload")
)
