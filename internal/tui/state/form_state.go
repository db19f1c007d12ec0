package state

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// TaskFormState holds the values bound to the create and details forms.
// The huh form writes straight into the string fields.
type TaskFormState struct {
	TaskID      int
	Title       string
	Description string
	Subject     string
	DueDate     string
	Priority    models.Priority
	Status      models.Status

	// Read-only fields shown by the details dialog.
	CreatedAt *models.Date
	OwnerID   *int

	// Validated is set once a submit has been checked; Errors then holds
	// the per-field failures.
	Validated bool
	Errors    map[string]error

	// Submitting is true while a request for this form is in flight.
	Submitting bool

	Form *huh.Form
}

// NewTaskFormState creates an empty form with the default selections.
func NewTaskFormState() *TaskFormState {
	s := &TaskFormState{}
	s.Reset()
	return s
}

// Reset clears every value, the validation marks and the huh form.
func (s *TaskFormState) Reset() {
	*s = TaskFormState{
		Priority: models.PriorityLow,
		Status:   models.StatusNotStarted,
		Errors:   map[string]error{},
	}
}

// Fill loads a task into the form.
func (s *TaskFormState) Fill(task *models.Task) {
	s.Reset()
	s.TaskID = task.ID
	s.Title = task.Title
	s.Description = task.Description
	s.Subject = task.Subject
	if task.DueDate != nil && !task.DueDate.IsZero() {
		s.DueDate = task.DueDate.String()
	}
	// an unknown priority is kept; Payload flags it until one is chosen
	s.Priority = task.Priority
	s.Status = task.EffectiveStatus()
	s.CreatedAt = task.CreatedAt
	s.OwnerID = task.OwnerID
}

// Payload builds the request body and validates it. Updates (TaskID > 0)
// also require the id; creates are stamped with today's date. The
// validation result is kept on the form.
func (s *TaskFormState) Payload() (models.TaskPayload, error) {
	var due *models.Date
	var dateErr error
	if raw := strings.TrimSpace(s.DueDate); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			dateErr = models.FieldError{Field: "due_date", Err: models.ErrInvalidDate}
		} else {
			due = &d
		}
	}

	var p models.TaskPayload
	var err error
	if s.TaskID > 0 {
		p = models.TaskPayload{
			ID:          s.TaskID,
			Title:       s.Title,
			Description: s.Description,
			Subject:     s.Subject,
			DueDate:     due,
			Priority:    s.Priority,
			Status:      s.Status,
		}
		p.Normalize()
		err = p.ValidateUpdate()
	} else {
		p = models.NewCreatePayload(s.Title, s.Description, s.Subject, due, s.Priority, s.Status)
		err = p.Validate()
	}

	// the format error replaces "required" for a date that was typed but unreadable
	err = errors.Join(err, dateErr)

	s.Validated = true
	s.Errors = models.FieldErrors(err)
	return p, err
}

// FieldError returns the validation failure of a field, if any.
func (s *TaskFormState) FieldError(field string) error {
	return s.Errors[field]
}

// Valid reports whether the last validation passed.
func (s *TaskFormState) Valid() bool {
	return s.Validated && len(s.Errors) == 0
}

// DetailsState tracks the details dialog of one task.
type DetailsState struct {
	taskID int
	task   *models.Task

	// ready is set only once the task has loaded; delete is gated on it.
	ready   bool
	loading bool

	// deleteOnLoad opens the delete confirmation as soon as the task loads.
	deleteOnLoad bool

	Form *TaskFormState
}

// NewDetailsState creates a closed details dialog.
func NewDetailsState() *DetailsState {
	return &DetailsState{Form: NewTaskFormState()}
}

// Open starts loading a task; the form stays disabled until Loaded.
func (s *DetailsState) Open(taskID int, deleteOnLoad bool) {
	s.Form.Reset()
	s.taskID = taskID
	s.task = nil
	s.ready = false
	s.loading = true
	s.deleteOnLoad = deleteOnLoad
}

// Loaded fills the form with the fetched task and enables it.
func (s *DetailsState) Loaded(task *models.Task) {
	s.task = task
	s.Form.Fill(task)
	s.ready = true
	s.loading = false
}

// TaskID returns the task the dialog is for.
func (s *DetailsState) TaskID() int {
	return s.taskID
}

// Task returns the loaded task, nil while loading.
func (s *DetailsState) Task() *models.Task {
	return s.task
}

// Ready reports whether the task has loaded.
func (s *DetailsState) Ready() bool {
	return s.ready
}

// Loading reports whether the task is being fetched.
func (s *DetailsState) Loading() bool {
	return s.loading
}

// DeleteOnLoad reports whether the dialog was opened to delete the task.
func (s *DetailsState) DeleteOnLoad() bool {
	return s.deleteOnLoad
}

// Reset closes the dialog.
func (s *DetailsState) Reset() {
	s.taskID = 0
	s.task = nil
	s.ready = false
	s.loading = false
	s.deleteOnLoad = false
	s.Form.Reset()
}
