package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// The commands below only talk to the API. Board changes happen when
// their result message reaches Update.

// loadCmd empties the board before fetching, so nothing can be moved
// against cards the reply is about to replace.
func (m *Model) loadCmd() tea.Cmd {
	m.loading = true
	m.Board().Clear()
	m.clampSelection()
	switch m.uiState.Mode() {
	case state.MoveMenuMode, state.DragMode:
		m.dragState.Reset()
		m.uiState.SetMode(state.NormalMode)
	}
	ctx, api := m.ctx, m.ctrl.API()
	load := func() tea.Msg {
		tasks, err := api.ListTasks(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
	return tea.Batch(load, m.startSpinner())
}

func (m *Model) sendMoveCmd(move board.Move) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return moveSentMsg{move: move, err: ctrl.Send(ctx, move)}
	}
}

func (m *Model) recordCmd(outcome board.Outcome) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		ctrl.Record(ctx, outcome)
		return nil
	}
}

func (m *Model) createCmd(payload models.TaskPayload) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		task, err := ctrl.CreateTask(ctx, payload)
		return taskCreatedMsg{task: task, err: err}
	}
}

func (m *Model) fetchCmd(id int) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		task, err := ctrl.FetchTask(ctx, id)
		return taskFetchedMsg{id: id, task: task, err: err}
	}
}

func (m *Model) saveCmd(payload models.TaskPayload) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		task, err := ctrl.SaveTask(ctx, payload)
		return taskSavedMsg{task: task, err: err}
	}
}

func (m *Model) deleteCmd(id int) tea.Cmd {
	ctx, api := m.ctx, m.ctrl.API()
	return func() tea.Msg {
		return taskDeletedMsg{id: id, err: api.DeleteTask(ctx, id)}
	}
}
