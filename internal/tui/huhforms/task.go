package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// TaskFields points at the values a task form edits in place.
type TaskFields struct {
	Title       *string
	Description *string
	Subject     *string
	DueDate     *string
	Priority    *models.Priority
	Status      *models.Status
}

// Field keys, matching the payload field names so validation errors can
// be attached to them.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeySubject     = "subject"
	KeyDueDate     = "due_date"
	KeyPriority    = "priority"
	KeyStatus      = "status"
)

// priorityOptions lists the known priorities. A current value outside
// them is offered first as "Unknown" so loading a task never rewrites it.
func priorityOptions(current models.Priority) []huh.Option[models.Priority] {
	opts := make([]huh.Option[models.Priority], 0, len(models.AllPriorities())+1)
	if !current.Valid() {
		opts = append(opts, huh.NewOption(current.Label(), current))
	}
	for _, p := range models.AllPriorities() {
		opts = append(opts, huh.NewOption(p.Label(), p))
	}
	return opts
}

func statusOptions() []huh.Option[models.Status] {
	opts := make([]huh.Option[models.Status], 0, len(models.AllStatuses()))
	for _, s := range models.AllStatuses() {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}

// validateDueDate accepts an empty value; the submit check reports it as
// missing so the user can still move between fields.
func validateDueDate(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	_, err := models.ParseDate(raw)
	return err
}

func validatePriority(p models.Priority) error {
	if !p.Valid() {
		return models.ErrInvalidPriority
	}
	return nil
}

// CreateTaskForm creates the huh form used by both the create and the
// details dialogs. The form writes into the pointed-to values.
func CreateTaskForm(f TaskFields, descriptionLines int) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key(KeyTitle).
			Title("Title").
			Placeholder("Enter task title...").
			Value(f.Title),
		huh.NewText().
			Key(KeyDescription).
			Title("Description").
			Placeholder("Markdown is supported").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(f.Description),
		huh.NewInput().
			Key(KeySubject).
			Title("Subject").
			Value(f.Subject),
		huh.NewInput().
			Key(KeyDueDate).
			Title("Due date").
			Placeholder("YYYY-MM-DD").
			Validate(validateDueDate).
			Value(f.DueDate),
		huh.NewSelect[models.Priority]().
			Key(KeyPriority).
			Title("Priority").
			Options(priorityOptions(*f.Priority)...).
			Validate(validatePriority).
			Value(f.Priority),
		huh.NewSelect[models.Status]().
			Key(KeyStatus).
			Title("Status").
			Options(statusOptions()...).
			Value(f.Status),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(dialogKeyMap()).WithShowHelp(false)
}
