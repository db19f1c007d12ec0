package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// boardTop is the screen row of the column borders (below the title bar).
const boardTop = 1

// cardsTop is the screen row of the first visible card.
const cardsTop = boardTop + 3

// boardHeight is the outer height of every column.
func (m *Model) boardHeight() int {
	return max(m.uiState.Height()-2, components.ColumnChrome+components.CardHeight)
}

// columnAt maps a screen column to a board column.
func (m *Model) columnAt(x int) int {
	n := m.Board().Layout().Len()
	w := m.uiState.ColumnWidth(n)
	return min(max(x/w, 0), n-1)
}

// scrollOffset is the first visible row of a column, matching the view.
func (m *Model) scrollOffset(col int) int {
	if col != m.uiState.SelectedColumn() {
		return 0
	}
	visible := components.VisibleCards(m.boardHeight())
	return components.ScrollOffset(m.uiState.SelectedTask(), len(m.Board().CardsAt(col)), visible)
}

// cardAt returns the card drawn at a screen cell.
func (m *Model) cardAt(x, y int) (col, row int, card *board.Card) {
	col = m.columnAt(x)
	if y < cardsTop {
		return col, -1, nil
	}
	visible := components.VisibleCards(m.boardHeight())
	slot := (y - cardsTop) / components.CardHeight
	if slot >= visible {
		return col, -1, nil
	}
	row = m.scrollOffset(col) + slot
	cards := m.Board().CardsAt(col)
	if row >= len(cards) {
		return col, -1, nil
	}
	return col, row, cards[row]
}

func (m *Model) handleMouseClick(mouse tea.Mouse) tea.Cmd {
	if m.uiState.Mode() != state.NormalMode || mouse.Button != tea.MouseLeft {
		return nil
	}
	col, row, card := m.cardAt(mouse.X, mouse.Y)
	if card == nil {
		m.uiState.SetSelectedColumn(col)
		return nil
	}
	m.uiState.Select(col, row)
	m.mouseDrag = true
	return m.dispatch(board.Event{Action: board.ActionDragStart, TaskID: card.ID})
}

func (m *Model) handleMouseMotion(mouse tea.Mouse) tea.Cmd {
	if m.uiState.Mode() == state.DragMode && m.dragState.Mouse() {
		m.dragState.SetTarget(m.columnAt(mouse.X))
	}
	return nil
}

func (m *Model) handleMouseRelease(mouse tea.Mouse) tea.Cmd {
	if m.uiState.Mode() != state.DragMode || !m.dragState.Mouse() {
		return nil
	}
	return m.drop(m.columnAt(mouse.X))
}
