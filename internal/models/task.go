package models

// Task is a single board item as returned by the tasks API.
// Status is the source of truth when present; Completed is a legacy alias.
type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	DueDate     *Date    `json:"due_date"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Completed   bool     `json:"completed"`
	CreatedAt   *Date    `json:"created_at"`
	OwnerID     *int     `json:"owner_id"`
}

// EffectiveStatus returns the status the board files the task under:
// the status field if set, else completed when the legacy flag is true,
// else not_started.
func (t *Task) EffectiveStatus() Status {
	if t.Status != "" {
		return t.Status
	}
	if t.Completed {
		return StatusCompleted
	}
	return StatusNotStarted
}

// DisplayTitle returns the title, or "Untitled" for a blank one.
func (t *Task) DisplayTitle() string {
	if t.Title == "" {
		return "Untitled"
	}
	return t.Title
}

// DisplaySubject returns the subject, or "-" for a blank one.
func (t *Task) DisplaySubject() string {
	if t.Subject == "" {
		return "-"
	}
	return t.Subject
}

// GetID satisfies the CLI quiet-output contract.
func (t *Task) GetID() int {
	return t.ID
}

// Clone returns a copy that shares no pointers with t.
func (t *Task) Clone() *Task {
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.CreatedAt != nil {
		d := *t.CreatedAt
		c.CreatedAt = &d
	}
	if t.OwnerID != nil {
		o := *t.OwnerID
		c.OwnerID = &o
	}
	return &c
}
