package state

// DragState tracks a grabbed card between drag start and drop.
type DragState struct {
	active  bool
	taskID  int
	payload string
	target  int
	mouse   bool
}

// NewDragState creates an idle drag state.
func NewDragState() *DragState {
	return &DragState{}
}

// Start records the encoded transfer of the grabbed card and the column
// it was picked up from.
func (s *DragState) Start(taskID int, payload string, column int, mouse bool) {
	s.active = true
	s.taskID = taskID
	s.payload = payload
	s.target = column
	s.mouse = mouse
}

// Active reports whether a card is being dragged.
func (s *DragState) Active() bool {
	return s.active
}

// TaskID returns the grabbed card.
func (s *DragState) TaskID() int {
	return s.taskID
}

// Payload returns the encoded transfer record.
func (s *DragState) Payload() string {
	return s.payload
}

// Target returns the column the card would be dropped on.
func (s *DragState) Target() int {
	return s.target
}

// SetTarget moves the drop target.
func (s *DragState) SetTarget(column int) {
	s.target = column
}

// Mouse reports whether the drag was started with the mouse.
func (s *DragState) Mouse() bool {
	return s.mouse
}

// Reset ends the drag.
func (s *DragState) Reset() {
	*s = DragState{}
}
