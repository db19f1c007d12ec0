package board

import "github.com/thenoetrevino/tablero/internal/models"

// Card is the board projection of a task. Status is the recorded status the
// card is filed under, which may be provisional while a move is in flight.
// Task holds the last-known-good server state.
type Card struct {
	ID     int
	Status models.Status
	Task   *models.Task
	Busy   bool

	// seq numbers every move issued for this card; confirmedSeq is the
	// newest move the server has answered for, or the baseline after a
	// rollback left nothing in flight.
	seq          uint64
	confirmedSeq uint64
	confirmed    models.Status
	pending      int
}

func newCard(task *models.Task) *Card {
	status := task.EffectiveStatus()
	snapshot := task.Clone()
	snapshot.Status = status
	return &Card{
		ID:        task.ID,
		Status:    status,
		Task:      snapshot,
		confirmed: status,
	}
}

// Confirmed returns the last status the server acknowledged for the card.
func (c *Card) Confirmed() models.Status {
	return c.confirmed
}

// Seq returns the sequence number of the newest move issued for the card.
func (c *Card) Seq() uint64 {
	return c.seq
}

// Pending returns how many status requests for the card are unresolved.
func (c *Card) Pending() int {
	return c.pending
}
