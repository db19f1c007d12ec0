package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	MoveMenuMode                  // "Move to" menu of the selected card
	DragMode                      // A card is grabbed and follows the drop target
	CreateFormMode                // New task dialog
	DetailsMode                   // Task details dialog
	DeleteConfirmMode             // Confirming task deletion
	HelpMode                      // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case MoveMenuMode:
		return "MOVE"
	case DragMode:
		return "DRAG"
	case CreateFormMode:
		return "NEW"
	case DetailsMode:
		return "DETAILS"
	case DeleteConfirmMode:
		return "DELETE"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages navigation, terminal dimensions and the current mode.
type UIState struct {
	selectedColumn int
	selectedTask   int
	width          int
	height         int
	mode           Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn selects a column and resets the task cursor.
func (s *UIState) SetSelectedColumn(idx int) {
	if idx != s.selectedColumn {
		s.selectedTask = 0
	}
	s.selectedColumn = idx
}

// SelectedTask returns the row of the selected card within its column.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected row.
func (s *UIState) SetSelectedTask(idx int) {
	s.selectedTask = idx
}

// Select moves the cursor to a column and row at once.
func (s *UIState) Select(col, row int) {
	s.selectedColumn = col
	s.selectedTask = row
}

// Clamp keeps the cursor inside a board of columns whose sizes are given
// by count.
func (s *UIState) Clamp(columns int, count func(col int) int) {
	if columns == 0 {
		s.selectedColumn, s.selectedTask = 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), columns-1)
	n := count(s.selectedColumn)
	s.selectedTask = min(max(s.selectedTask, 0), max(n-1, 0))
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetWindowSize records the terminal size.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ColumnWidth splits the terminal width evenly between n columns.
func (s *UIState) ColumnWidth(n int) int {
	if n <= 0 {
		return s.width
	}
	return max(s.width/n, 16)
}
