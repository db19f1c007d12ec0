package board

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Move is one provisional status change waiting for the server.
type Move struct {
	TaskID    int
	OldStatus models.Status
	NewStatus models.Status
	Seq       uint64
	Gen       uint64
}

// OutcomeKind says how a resolved move affected the board.
type OutcomeKind int

const (
	// Committed: the server accepted the move and the optimistic state is final.
	Committed OutcomeKind = iota
	// RolledBack: the server rejected the move and the card went back.
	RolledBack
	// Stale: a newer move of the same card was issued; this result only
	// updates what is known about the server state.
	Stale
	// Discarded: the card left the board, or the board was reloaded,
	// before the result arrived.
	Discarded
)

func (k OutcomeKind) String() string {
	switch k {
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled_back"
	case Stale:
		return "stale"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving a Move.
type Outcome struct {
	Kind   OutcomeKind
	Move   Move
	Status models.Status // status the card ends up filed under
	Err    error
}

// Failure wraps the request error with the task id, or returns nil.
func (o Outcome) Failure() error {
	if o.Err == nil {
		return nil
	}
	return fmt.Errorf("could not update status of task #%d: %w", o.Move.TaskID, o.Err)
}

// Message returns the user facing text for a failed move, or "".
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Failure().Error()
}

// BeginMove applies a status change optimistically: the card is moved to
// the column of newStatus, its recorded status updated and it is marked busy.
func (b *Board) BeginMove(id int, newStatus models.Status) (Move, error) {
	if !newStatus.Valid() {
		return Move{}, fmt.Errorf("%w: %q", models.ErrInvalidStatus, newStatus)
	}
	card := b.Card(id)
	if card == nil {
		return Move{}, fmt.Errorf("%w: task #%d", ErrCardNotFound, id)
	}
	if card.Status == newStatus {
		return Move{}, ErrSameStatus
	}
	return b.begin(card, card.Status, newStatus), nil
}

func (b *Board) begin(card *Card, oldStatus, newStatus models.Status) Move {
	b.place(card, newStatus)
	card.seq++
	card.pending++
	card.Busy = true
	return Move{
		TaskID:    card.ID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Seq:       card.seq,
		Gen:       b.gen,
	}
}

// Resolve applies the server's answer to a move. A nil err commits it;
// anything else rolls the card back. Only the newest move of a card may
// commit or roll back; older answers are Stale and only refresh the
// confirmed status, reconciling the card once nothing is in flight.
func (b *Board) Resolve(m Move, err error) Outcome {
	card := b.Card(m.TaskID)
	if card == nil || m.Gen != b.gen {
		return Outcome{Kind: Discarded, Move: m, Err: err}
	}

	if card.pending > 0 {
		card.pending--
	}
	card.Busy = card.pending > 0

	if err == nil && m.Seq > card.confirmedSeq {
		card.confirmed = m.NewStatus
		card.confirmedSeq = m.Seq
		card.Task.Status = m.NewStatus
		card.Task.Completed = m.NewStatus == models.StatusCompleted
	}

	if m.Seq != card.seq {
		if card.pending == 0 {
			if card.Status != card.confirmed {
				b.place(card, card.confirmed)
			}
			card.confirmedSeq = card.seq
		}
		return Outcome{Kind: Stale, Move: m, Status: card.Status, Err: err}
	}

	if err == nil {
		return Outcome{Kind: Committed, Move: m, Status: card.Status}
	}

	// With no unresolved predecessor the move started from server state,
	// so the carried old status is the rollback target.
	target := card.confirmed
	if m.Seq == card.confirmedSeq+1 {
		target = m.OldStatus
		card.confirmed = m.OldStatus
		card.Task.Status = m.OldStatus
		card.Task.Completed = m.OldStatus == models.StatusCompleted
	}
	b.place(card, target)
	if card.pending == 0 {
		card.confirmedSeq = card.seq
	}
	return Outcome{Kind: RolledBack, Move: m, Status: target, Err: err}
}
