package tui

import (
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all incoming messages and returns the updated model
// Required by tea.Model interface
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWindowSize(msg.Width, msg.Height)
		m.notificationState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case tasksLoadedMsg:
		return m, m.handleLoaded(msg)

	case moveSentMsg:
		return m, m.handleMoveSent(msg)

	case taskCreatedMsg:
		return m, m.handleCreated(msg)

	case taskFetchedMsg:
		return m, m.handleFetched(msg)

	case taskSavedMsg:
		return m, m.handleSaved(msg)

	case taskDeletedMsg:
		return m, m.handleDeleted(msg)

	case reloadMsg:
		return m, m.loadCmd()

	case notificationExpiredMsg:
		m.notificationState.Dismiss(msg.id)
		return m, nil

	case spinner.TickMsg:
		return m, m.handleSpinner(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg.Mouse())

	case tea.MouseMotionMsg:
		return m, m.handleMouseMotion(msg.Mouse())

	case tea.MouseReleaseMsg:
		return m, m.handleMouseRelease(msg.Mouse())

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	// Forms need every message, not just keys.
	return m, m.updateForm(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.uiState.Mode() {
	case state.NormalMode:
		return m.updateNormal(msg)
	case state.HelpMode:
		m.uiState.SetMode(state.NormalMode)
		return nil
	case state.MoveMenuMode:
		return m.updateMoveMenu(msg)
	case state.DragMode:
		return m.updateDrag(msg)
	case state.CreateFormMode:
		return m.updateCreateForm(msg)
	case state.DetailsMode:
		return m.updateDetails(msg)
	case state.DeleteConfirmMode:
		return m.updateDeleteConfirm(msg)
	}
	return nil
}

func (m *Model) handleLoaded(msg tasksLoadedMsg) tea.Cmd {
	m.loading = false
	// a drag in progress refers to cards from before the reload
	if m.dragState.Active() {
		m.dragState.Reset()
		m.uiState.SetMode(state.NormalMode)
	}
	err := m.ctrl.Loaded(msg.tasks, msg.err)
	m.clampSelection()
	if err != nil {
		return m.notifyError(err.Error())
	}
	return nil
}

func (m *Model) handleMoveSent(msg moveSentMsg) tea.Cmd {
	outcome := m.ctrl.Resolve(msg.move, msg.err)
	m.clampSelection()
	record := m.recordCmd(outcome)
	if outcome.Kind == board.RolledBack {
		return tea.Batch(record, m.notifyError(outcome.Message()))
	}
	return record
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	km := m.config.KeyMappings
	key := msg.String()
	b := m.Board()

	switch key {
	case km.Quit:
		return tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
		return nil
	case km.PrevColumn, "left":
		if col := m.uiState.SelectedColumn(); col > 0 {
			m.uiState.SetSelectedColumn(col - 1)
		}
		return nil
	case km.NextColumn, "right":
		if col := m.uiState.SelectedColumn(); col < b.Layout().Len()-1 {
			m.uiState.SetSelectedColumn(col + 1)
		}
		return nil
	case km.PrevTask, "up":
		if row := m.uiState.SelectedTask(); row > 0 {
			m.uiState.SetSelectedTask(row - 1)
		}
		return nil
	case km.NextTask, "down":
		if row := m.uiState.SelectedTask(); row < len(b.CardsAt(m.uiState.SelectedColumn()))-1 {
			m.uiState.SetSelectedTask(row + 1)
		}
		return nil
	case km.Reload:
		return m.loadCmd()
	case km.AddTask:
		return m.openCreate()
	}

	card := m.currentCard()
	if card == nil {
		return nil
	}

	switch key {
	case km.MoveMenu:
		items, err := b.MoveMenu(card.ID)
		if err != nil {
			return m.notifyError(err.Error())
		}
		m.menuState.Open(card.ID, items)
		m.uiState.SetMode(state.MoveMenuMode)
	case km.GrabTask:
		m.mouseDrag = false
		return m.dispatch(board.Event{Action: board.ActionDragStart, TaskID: card.ID})
	case km.ViewTask:
		return m.dispatch(board.Event{Action: board.ActionDetails, TaskID: card.ID})
	case km.DeleteTask:
		return m.dispatch(board.Event{Action: board.ActionDelete, TaskID: card.ID})
	}
	return nil
}

func (m *Model) updateMoveMenu(msg tea.KeyPressMsg) tea.Cmd {
	km := m.config.KeyMappings
	switch msg.String() {
	case km.PrevTask, "up":
		m.menuState.MoveUp()
	case km.NextTask, "down":
		m.menuState.MoveDown()
	case "enter":
		item, ok := m.menuState.Selected()
		m.menuState.Reset()
		m.uiState.SetMode(state.NormalMode)
		if !ok {
			return nil
		}
		return m.dispatch(item.Event())
	case "esc", km.Quit, km.MoveMenu:
		m.menuState.Reset()
		m.uiState.SetMode(state.NormalMode)
	}
	return nil
}

func (m *Model) updateDrag(msg tea.KeyPressMsg) tea.Cmd {
	km := m.config.KeyMappings
	target := m.dragState.Target()
	switch msg.String() {
	case km.PrevColumn, "left":
		m.dragState.SetTarget(max(target-1, 0))
	case km.NextColumn, "right":
		m.dragState.SetTarget(min(target+1, m.Board().Layout().Len()-1))
	case km.GrabTask, "enter":
		return m.drop(target)
	case "esc":
		m.dragState.Reset()
		m.uiState.SetMode(state.NormalMode)
	}
	return nil
}

// menuTitle names the card a menu or dialog is about.
func menuTitle(id int) string {
	return fmt.Sprintf("Task #%d", id)
}
