package board

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Transfer is the record carried by a drag operation.
type Transfer struct {
	TaskID     int           `json:"task_id"`
	FromStatus models.Status `json:"from_status"`
}

// DragStart captures the transfer record of the card with id.
func (b *Board) DragStart(id int) (Transfer, error) {
	card := b.Card(id)
	if card == nil {
		return Transfer{}, fmt.Errorf("%w: task #%d", ErrCardNotFound, id)
	}
	return Transfer{TaskID: card.ID, FromStatus: card.Status}, nil
}

// Encode serializes the transfer for a drag data channel.
func (t Transfer) Encode() (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to encode drag payload: %w", err)
	}
	return string(data), nil
}

// DecodeTransfer parses a drag payload in one step. A missing from status
// reads as not_started.
func DecodeTransfer(payload string) (Transfer, error) {
	var t Transfer
	if err := json.Unmarshal([]byte(payload), &t); err != nil {
		return Transfer{}, fmt.Errorf("%w: %v", ErrInvalidTransfer, err)
	}
	if t.TaskID <= 0 {
		return Transfer{}, fmt.Errorf("%w: %v", ErrInvalidTransfer, models.ErrInvalidTaskID)
	}
	if t.FromStatus == "" {
		t.FromStatus = models.StatusNotStarted
	}
	if !t.FromStatus.Valid() {
		return Transfer{}, fmt.Errorf("%w: %v", ErrInvalidTransfer, models.ErrInvalidStatus)
	}
	return t, nil
}

// Drop lands a dragged card in the column of panelID. Any card already
// carrying the id is removed first so the drop never duplicates it. The
// status change then follows the same protocol as a menu move, with the
// carried from status as the old status. Dropping back into the origin
// column only re-files the card and returns ErrSameStatus.
func (b *Board) Drop(t Transfer, panelID string) (Move, error) {
	card := b.Card(t.TaskID)
	if card == nil {
		return Move{}, fmt.Errorf("%w: task #%d", ErrCardNotFound, t.TaskID)
	}
	newStatus := b.layout.StatusForPanel(panelID)
	if newStatus == card.Status {
		b.place(card, newStatus)
		return Move{}, ErrSameStatus
	}
	return b.begin(card, t.FromStatus, newStatus), nil
}
