package models

import (
	"errors"
	"strings"
)

// TaskPayload is the body of a create or full update request.
// ID is only set for updates.
type TaskPayload struct {
	ID          int      `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	DueDate     *Date    `json:"due_date"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Completed   bool     `json:"completed"`
	CreatedAt   *Date    `json:"created_at,omitempty"`
}

// StatusPayload is the body of a partial status update.
type StatusPayload struct {
	Status Status `json:"status"`
}

// FieldError pairs a form field with the validation error it failed.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// Normalize trims text fields and derives the legacy completed flag.
func (p *TaskPayload) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Subject = strings.TrimSpace(p.Subject)
	p.Completed = p.Status == StatusCompleted
}

// Validate checks the required and format constraints of the form.
// All failures are joined so a form can highlight every invalid field.
func (p *TaskPayload) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Err: ErrTitleRequired})
	}
	if p.DueDate == nil || p.DueDate.IsZero() {
		errs = append(errs, FieldError{Field: "due_date", Err: ErrDueDateRequired})
	}
	if !p.Priority.Valid() {
		errs = append(errs, FieldError{Field: "priority", Err: ErrInvalidPriority})
	}
	if !p.Status.Valid() {
		errs = append(errs, FieldError{Field: "status", Err: ErrInvalidStatus})
	}
	return errors.Join(errs...)
}

// ValidateUpdate is Validate plus a usable task id.
func (p *TaskPayload) ValidateUpdate() error {
	if p.ID <= 0 {
		return errors.Join(FieldError{Field: "id", Err: ErrInvalidTaskID}, p.Validate())
	}
	return p.Validate()
}

// NewCreatePayload builds a create body stamped with today's date.
func NewCreatePayload(title, description, subject string, due *Date, priority Priority, status Status) TaskPayload {
	today := Today()
	p := TaskPayload{
		Title:       title,
		Description: description,
		Subject:     subject,
		DueDate:     due,
		Priority:    priority,
		Status:      status,
		CreatedAt:   &today,
	}
	p.Normalize()
	return p
}

// PayloadFromTask builds a full update body from a task.
func PayloadFromTask(t *Task) TaskPayload {
	p := TaskPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Subject:     t.Subject,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.EffectiveStatus(),
	}
	p.Normalize()
	return p
}

// FieldErrors flattens a Validate result into per-field errors.
func FieldErrors(err error) map[string]error {
	out := map[string]error{}
	if err == nil {
		return out
	}
	var walk func(error)
	walk = func(e error) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		var fe FieldError
		if errors.As(e, &fe) {
			out[fe.Field] = fe.Err
		}
	}
	walk(err)
	return out
}
