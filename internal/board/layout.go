package board

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Column is a rendering target bound to exactly one status.
type Column struct {
	Status  models.Status
	PanelID string
	Title   string
}

// Layout is the immutable status <-> column mapping injected into a Board.
type Layout struct {
	columns  []Column
	byStatus map[models.Status]int
	byPanel  map[string]int
}

// NewLayout validates that every status maps to exactly one column and
// every column to exactly one status.
func NewLayout(columns []Column) (*Layout, error) {
	l := &Layout{
		columns:  make([]Column, len(columns)),
		byStatus: make(map[models.Status]int, len(columns)),
		byPanel:  make(map[string]int, len(columns)),
	}
	copy(l.columns, columns)

	for i, col := range columns {
		if !col.Status.Valid() {
			return nil, fmt.Errorf("%w: column %q has status %q", ErrInvalidLayout, col.PanelID, col.Status)
		}
		if col.PanelID == "" {
			return nil, fmt.Errorf("%w: column for %q has no panel id", ErrInvalidLayout, col.Status)
		}
		if _, dup := l.byStatus[col.Status]; dup {
			return nil, fmt.Errorf("%w: status %q mapped twice", ErrInvalidLayout, col.Status)
		}
		if _, dup := l.byPanel[col.PanelID]; dup {
			return nil, fmt.Errorf("%w: panel %q mapped twice", ErrInvalidLayout, col.PanelID)
		}
		l.byStatus[col.Status] = i
		l.byPanel[col.PanelID] = i
	}

	for _, s := range models.AllStatuses() {
		if _, ok := l.byStatus[s]; !ok {
			return nil, fmt.Errorf("%w: status %q has no column", ErrInvalidLayout, s)
		}
	}
	return l, nil
}

// DefaultLayout returns the four standard columns in board order.
func DefaultLayout() *Layout {
	l, err := NewLayout([]Column{
		{Status: models.StatusNotStarted, PanelID: "queue-panel", Title: models.StatusNotStarted.Label()},
		{Status: models.StatusInProgress, PanelID: "serving-panel", Title: models.StatusInProgress.Label()},
		{Status: models.StatusBlocked, PanelID: "completed-panel", Title: models.StatusBlocked.Label()},
		{Status: models.StatusCompleted, PanelID: "cancelled-panel", Title: models.StatusCompleted.Label()},
	})
	if err != nil {
		panic(err)
	}
	return l
}

// Columns returns the columns in display order.
func (l *Layout) Columns() []Column {
	out := make([]Column, len(l.columns))
	copy(out, l.columns)
	return out
}

// Len returns the number of columns.
func (l *Layout) Len() int {
	return len(l.columns)
}

// At returns the column at display index i.
func (l *Layout) At(i int) Column {
	return l.columns[i]
}

// IndexOf returns the display index of the column for status.
// Unknown statuses fall back to the not_started column.
func (l *Layout) IndexOf(status models.Status) int {
	if i, ok := l.byStatus[status]; ok {
		return i
	}
	return l.byStatus[models.StatusNotStarted]
}

// ColumnFor returns the column a status renders into.
func (l *Layout) ColumnFor(status models.Status) Column {
	return l.columns[l.IndexOf(status)]
}

// StatusForPanel derives a status from the panel a card was dropped into.
// Unknown panels read as not_started.
func (l *Layout) StatusForPanel(panelID string) models.Status {
	if i, ok := l.byPanel[panelID]; ok {
		return l.columns[i].Status
	}
	return models.StatusNotStarted
}
