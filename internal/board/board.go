package board

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Board holds the cards of every column. It is owned by a single event
// loop and is not safe for concurrent use.
type Board struct {
	layout  *Layout
	columns [][]*Card
	gen     uint64 // bumped by Clear; moves from an older generation are discarded
}

// New creates an empty board for layout.
func New(layout *Layout) *Board {
	return &Board{
		layout:  layout,
		columns: make([][]*Card, layout.Len()),
	}
}

// Layout returns the status <-> column mapping of the board.
func (b *Board) Layout() *Layout {
	return b.layout
}

// Clear empties every column.
func (b *Board) Clear() {
	b.gen++
	for i := range b.columns {
		b.columns[i] = nil
	}
}

// Render clears the board and files each task under its effective status.
func (b *Board) Render(tasks []*models.Task) {
	b.Clear()
	for _, task := range tasks {
		if task == nil {
			continue
		}
		b.insert(newCard(task))
	}
}

// Cards returns the cards of the column for status, top to bottom.
func (b *Board) Cards(status models.Status) []*Card {
	return b.columns[b.layout.IndexOf(status)]
}

// CardsAt returns the cards of the column at display index i.
func (b *Board) CardsAt(i int) []*Card {
	if i < 0 || i >= len(b.columns) {
		return nil
	}
	return b.columns[i]
}

// Card returns the card with id, or nil.
func (b *Board) Card(id int) *Card {
	for _, col := range b.columns {
		for _, card := range col {
			if card.ID == id {
				return card
			}
		}
	}
	return nil
}

// Count returns how many cards carry id. A consistent board never has more than one.
func (b *Board) Count(id int) int {
	n := 0
	for _, col := range b.columns {
		for _, card := range col {
			if card.ID == id {
				n++
			}
		}
	}
	return n
}

// Len returns the number of cards on the board.
func (b *Board) Len() int {
	n := 0
	for _, col := range b.columns {
		n += len(col)
	}
	return n
}

// Position returns the column index and row of the card with id.
func (b *Board) Position(id int) (col, row int, ok bool) {
	for c, cards := range b.columns {
		for r, card := range cards {
			if card.ID == id {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

// Remove deletes every card with id and reports whether any existed.
func (b *Board) Remove(id int) bool {
	removed := false
	for i, col := range b.columns {
		kept := col[:0]
		for _, card := range col {
			if card.ID == id {
				removed = true
				continue
			}
			kept = append(kept, card)
		}
		for j := len(kept); j < len(col); j++ {
			col[j] = nil
		}
		b.columns[i] = kept
	}
	return removed
}

// Upsert redraws the card for task: any existing card with the id is
// removed and a fresh one is appended to the column of the task's status.
func (b *Board) Upsert(task *models.Task) *Card {
	b.Remove(task.ID)
	card := newCard(task)
	b.insert(card)
	return card
}

func (b *Board) insert(card *Card) {
	i := b.layout.IndexOf(card.Status)
	b.columns[i] = append(b.columns[i], card)
}

// place files an existing card under status, removing it from wherever it was.
func (b *Board) place(card *Card, status models.Status) {
	b.Remove(card.ID)
	card.Status = status
	b.insert(card)
}

// MoveMenu returns the action menu of the card with id: a move entry for
// every status except the current one, then details and delete.
func (b *Board) MoveMenu(id int) ([]MenuItem, error) {
	card := b.Card(id)
	if card == nil {
		return nil, fmt.Errorf("%w: task #%d", ErrCardNotFound, id)
	}
	return BuildMenu(b.layout, card.Status, id), nil
}
