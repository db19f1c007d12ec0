package state

import "github.com/thenoetrevino/tablero/internal/board"

// MoveMenuState manages the "move to" menu of a single card.
type MoveMenuState struct {
	taskID int
	items  []board.MenuItem
	cursor int
}

// NewMoveMenuState creates a closed menu.
func NewMoveMenuState() *MoveMenuState {
	return &MoveMenuState{}
}

// Open fills the menu for a card and puts the cursor on the first item.
func (s *MoveMenuState) Open(taskID int, items []board.MenuItem) {
	s.taskID = taskID
	s.items = items
	s.cursor = 0
}

// TaskID returns the card the menu belongs to.
func (s *MoveMenuState) TaskID() int {
	return s.taskID
}

// Items returns the menu entries in display order.
func (s *MoveMenuState) Items() []board.MenuItem {
	return s.items
}

// Cursor returns the current cursor position.
func (s *MoveMenuState) Cursor() int {
	return s.cursor
}

// MoveUp moves the cursor up one position if possible.
func (s *MoveMenuState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down one position if possible.
func (s *MoveMenuState) MoveDown() {
	if s.cursor < len(s.items)-1 {
		s.cursor++
	}
}

// Selected returns the item under the cursor.
func (s *MoveMenuState) Selected() (board.MenuItem, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return board.MenuItem{}, false
	}
	return s.items[s.cursor], true
}

// Reset closes the menu.
func (s *MoveMenuState) Reset() {
	s.taskID = 0
	s.items = nil
	s.cursor = 0
}
