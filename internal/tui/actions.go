package tui

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// dispatch routes a card action and returns the commands its handler queued.
func (m *Model) dispatch(ev board.Event) tea.Cmd {
	m.queued = nil
	err := m.router.Dispatch(m.ctx, ev)
	cmds := m.queued
	m.queued = nil
	if err != nil {
		cmds = append(cmds, m.notifyError(err.Error()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) enqueue(cmds ...tea.Cmd) {
	m.queued = append(m.queued, cmds...)
}

func (m *Model) handleMoveTo(_ context.Context, ev board.Event) error {
	move, err := m.Board().BeginMove(ev.TaskID, ev.Status)
	if errors.Is(err, board.ErrSameStatus) {
		return nil
	}
	if err != nil {
		return err
	}
	m.follow(move.TaskID)
	m.enqueue(m.sendMoveCmd(move), m.startSpinner())
	return nil
}

func (m *Model) handleDrop(_ context.Context, ev board.Event) error {
	move, err := m.ctrl.BeginDrop(ev.Payload, ev.PanelID)
	if errors.Is(err, board.ErrSameStatus) {
		return nil
	}
	if err != nil {
		return err
	}
	m.follow(move.TaskID)
	m.enqueue(m.sendMoveCmd(move), m.startSpinner())
	return nil
}

func (m *Model) handleDragStart(_ context.Context, ev board.Event) error {
	t, err := m.Board().DragStart(ev.TaskID)
	if err != nil {
		return err
	}
	payload, err := t.Encode()
	if err != nil {
		return err
	}
	col, _, _ := m.Board().Position(ev.TaskID)
	m.dragState.Start(ev.TaskID, payload, col, m.mouseDrag)
	m.uiState.SetMode(state.DragMode)
	return nil
}

func (m *Model) handleDetails(_ context.Context, ev board.Event) error {
	m.openDetails(ev.TaskID, false)
	return nil
}

func (m *Model) handleDelete(_ context.Context, ev board.Event) error {
	m.openDetails(ev.TaskID, true)
	return nil
}

// drop releases the dragged card over column col.
func (m *Model) drop(col int) tea.Cmd {
	payload := m.dragState.Payload()
	m.dragState.Reset()
	m.uiState.SetMode(state.NormalMode)
	return m.dispatch(board.Event{
		Action:  board.ActionDrop,
		Payload: payload,
		PanelID: m.Board().Layout().At(col).PanelID,
	})
}
