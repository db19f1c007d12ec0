package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Exit codes for CLI commands. They follow Unix conventions.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: network errors, server errors, journal errors.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing task id, nothing to update.
	ExitUsage = 2

	// ExitNotFound indicates the API has no task with that id.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable description input.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: invalid status, priority or date, missing title.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command. The message
// has already been written by the formatter.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: the code of an ExitError, 0 for
// nil and ExitGeneral for anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}

// Classify maps a domain error to its error code and exit code.
func Classify(err error) (code string, exit int) {
	switch {
	case errors.Is(err, models.ErrInvalidTaskID):
		return "INVALID_TASK_ID", ExitUsage
	case errors.Is(err, models.ErrTitleRequired),
		errors.Is(err, models.ErrDueDateRequired),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidPriority),
		errors.Is(err, models.ErrInvalidStatus):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, board.ErrSameStatus):
		return "SAME_STATUS", ExitValidation
	case errors.Is(err, board.ErrCardNotFound), api.IsNotFound(err):
		return "TASK_NOT_FOUND", ExitNotFound
	case api.IsUnauthorized(err):
		return "UNAUTHORIZED", ExitGeneral
	case api.IsTransport(err):
		return "NETWORK_ERROR", ExitGeneral
	default:
		return "API_ERROR", ExitGeneral
	}
}
