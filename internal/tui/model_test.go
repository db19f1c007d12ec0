package tui

import (
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

func sampleTasks() []*models.Task {
	return []*models.Task{
		{ID: 7, Title: "Seven", Status: models.StatusNotStarted, Priority: models.PriorityHigh},
		{ID: 8, Title: "Eight", Status: models.StatusInProgress, Priority: models.PriorityLow},
		{ID: 42, Title: "Answer", Status: models.StatusBlocked, Priority: models.PriorityMedium},
	}
}

// ============================================================================
// Loading
// ============================================================================

func TestInit_LoadsBoard(t *testing.T) {
	m, _ := setupModel(t, sampleTasks()...)

	assert.False(t, m.loading)
	assert.Equal(t, 3, m.Board().Len())
	assert.Equal(t, models.StatusBlocked, m.Board().Card(42).Status)
	assert.Empty(t, m.Notifications())
}

func TestReload_FailureShowsErrorAndEmptyBoard(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	fake.Fail(http.MethodGet, 0, http.StatusInternalServerError, "database offline")

	press(t, m, "r")

	assert.Equal(t, 0, m.Board().Len(), "columns stay empty")
	toast := lastToast(t, m)
	assert.Equal(t, state.LevelError, toast.Level)
	assert.Equal(t, "could not load tasks: database offline", toast.Message)
	assert.Equal(t, 2, fake.RequestCount(http.MethodGet), "no automatic retry")
}

func TestReload_ClearsBoardUntilListArrives(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 7)

	reload := pressOnly(m, "r")
	assert.True(t, m.loading)
	assert.Equal(t, 0, m.Board().Len())

	press(t, m, "m")
	assert.Equal(t, state.NormalMode, m.Mode(), "no card to act on while reloading")
	assert.Zero(t, fake.RequestCount(http.MethodPatch))

	run(t, m, reload)
	assert.Equal(t, 3, m.Board().Len())
	assert.Equal(t, models.StatusNotStarted, m.Board().Card(7).Status)
}

func TestReload_MoveResolvedDuringReloadMatchesServer(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 7)

	press(t, m, "m")
	move := pressOnly(m, "enter")
	reload := pressOnly(m, "r")

	run(t, m, move)
	assert.Equal(t, models.StatusInProgress, fake.Task(7).Status)
	assert.Empty(t, errorToasts(m), "a discarded result is not an error")

	run(t, m, reload)
	require.NotNil(t, m.Board().Card(7))
	assert.Equal(t, fake.Task(7).Status, m.Board().Card(7).Status)
}

// ============================================================================
// Move menu
// ============================================================================

func TestMoveMenu_NeverOffersCurrentStatus(t *testing.T) {
	m, _ := setupModel(t, sampleTasks()...)
	selectCard(t, m, 8)

	press(t, m, "m")
	require.Equal(t, state.MoveMenuMode, m.Mode())
	for _, item := range m.menuState.Items() {
		if item.Action == board.ActionMoveTo {
			assert.NotEqual(t, models.StatusInProgress, item.Status)
		}
	}

	press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.Mode())
}

func TestMoveMenu_Task7Success(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 7)

	press(t, m, "m")
	item, ok := m.menuState.Selected()
	require.True(t, ok)
	require.Equal(t, models.StatusInProgress, item.Status)

	cmd := pressOnly(m, "enter")
	card := m.Board().Card(7)
	assert.Equal(t, models.StatusInProgress, card.Status, "moved before the server answers")
	assert.True(t, card.Busy)

	run(t, m, cmd)
	card = m.Board().Card(7)
	assert.Equal(t, models.StatusInProgress, card.Status)
	assert.False(t, card.Busy)
	assert.Empty(t, errorToasts(m))
	assert.Equal(t, models.StatusInProgress, fake.Task(7).Status)
	assert.Equal(t, 1, fake.RequestCount(http.MethodPatch))

	col, row, _ := m.Board().Position(7)
	assert.Equal(t, col, m.uiState.SelectedColumn(), "cursor follows the card")
	assert.Equal(t, row, m.uiState.SelectedTask())
}

func TestMoveSent_JournalsFromCommand(t *testing.T) {
	rec := &outcomeLog{}
	m, _ := setupModelWith(t, []board.ControllerOption{board.WithRecorder(rec)}, sampleTasks()...)

	move, err := m.Board().BeginMove(7, models.StatusInProgress)
	require.NoError(t, err)
	_, cmd := m.Update(moveSentMsg{move: move})

	assert.False(t, m.Board().Card(7).Busy, "board settled inside Update")
	assert.Empty(t, rec.outcomes, "nothing journaled inside Update")

	run(t, m, cmd)
	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, board.Committed, rec.outcomes[0].Kind)
	assert.Equal(t, 7, rec.outcomes[0].Move.TaskID)
}

func TestMoveMenu_Task7ServerErrorRollsBack(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	fake.Fail(http.MethodPatch, 7, http.StatusInternalServerError, "")
	selectCard(t, m, 7)

	press(t, m, "m", "enter")

	card := m.Board().Card(7)
	assert.Equal(t, models.StatusNotStarted, card.Status)
	assert.False(t, card.Busy)
	assert.Equal(t, 1, m.Board().Count(7))

	errs := errorToasts(m)
	require.Len(t, errs, 1)
	assert.Equal(t, "could not update status of task #7: HTTP 500", errs[0].Message)
	assert.Contains(t, errs[0].Message, "#7")
	assert.Equal(t, models.StatusNotStarted, fake.Task(7).Status)
}

func TestMoveMenu_DetailsEntryOpensDialog(t *testing.T) {
	m, _ := setupModel(t, sampleTasks()...)
	selectCard(t, m, 8)

	press(t, m, "m")
	for i, item := range m.menuState.Items() {
		if item.Action == board.ActionDetails {
			for j := 0; j < i; j++ {
				press(t, m, "j")
			}
			break
		}
	}
	press(t, m, "enter")

	assert.Equal(t, state.DetailsMode, m.Mode())
	assert.True(t, m.details.Ready())
	assert.Equal(t, "Eight", m.details.Form.Title)
}

// ============================================================================
// Drag and drop
// ============================================================================

func TestDrag_KeyboardGrabAndDrop(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 7)

	press(t, m, "space")
	require.Equal(t, state.DragMode, m.Mode())
	assert.Equal(t, 7, m.dragState.TaskID())

	press(t, m, "l", "l", "space")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, models.StatusBlocked, m.Board().Card(7).Status)
	assert.Equal(t, models.StatusBlocked, fake.Task(7).Status)
	assert.Empty(t, errorToasts(m))
}

func TestDrag_DropOnSameColumnIsNoop(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 7)

	press(t, m, "space", "space")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, models.StatusNotStarted, m.Board().Card(7).Status)
	assert.Equal(t, 0, fake.RequestCount(http.MethodPatch))
}

func TestDrag_EscCancels(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 7)

	press(t, m, "space", "l", "esc")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.False(t, m.dragState.Active())
	assert.Equal(t, models.StatusNotStarted, m.Board().Card(7).Status)
	assert.Equal(t, 0, fake.RequestCount(http.MethodPatch))
}

func TestDrag_FailedDropRollsBackToOrigin(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	fake.Fail(http.MethodPatch, 8, http.StatusBadRequest, "transition not allowed")
	selectCard(t, m, 8)

	press(t, m, "space", "l", "l", "space")

	assert.Equal(t, models.StatusInProgress, m.Board().Card(8).Status)
	assert.Equal(t, "could not update status of task #8: transition not allowed", lastToast(t, m).Message)
}

func TestDrag_Mouse(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	colWidth := m.uiState.ColumnWidth(4)

	_, cmd := m.Update(tea.MouseClickMsg{X: 3, Y: cardsTop + 1, Button: tea.MouseLeft})
	run(t, m, cmd)
	require.Equal(t, state.DragMode, m.Mode())
	assert.Equal(t, 7, m.dragState.TaskID())
	assert.True(t, m.dragState.Mouse())

	m.Update(tea.MouseMotionMsg{X: colWidth*3 + 2, Y: 10, Button: tea.MouseLeft})
	assert.Equal(t, 3, m.dragState.Target())

	_, cmd = m.Update(tea.MouseReleaseMsg{X: colWidth*3 + 2, Y: 10, Button: tea.MouseLeft})
	run(t, m, cmd)

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, models.StatusCompleted, m.Board().Card(7).Status)
	assert.True(t, fake.Task(7).Completed)
}

func TestMouse_ClickOnEmptySpaceSelectsColumn(t *testing.T) {
	m, _ := setupModel(t, sampleTasks()...)
	colWidth := m.uiState.ColumnWidth(4)

	m.Update(tea.MouseClickMsg{X: colWidth*2 + 1, Y: testHeight - 3, Button: tea.MouseLeft})

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, 2, m.uiState.SelectedColumn())
}

// ============================================================================
// Other keys
// ============================================================================

func TestNavigation(t *testing.T) {
	m, _ := setupModel(t,
		&models.Task{ID: 1, Title: "a"},
		&models.Task{ID: 2, Title: "b"},
		&models.Task{ID: 3, Title: "c", Status: models.StatusCompleted},
	)

	press(t, m, "j", "j", "j")
	assert.Equal(t, 1, m.uiState.SelectedTask(), "stops at the last card")

	press(t, m, "l", "l", "l", "l")
	assert.Equal(t, 3, m.uiState.SelectedColumn())
	assert.Equal(t, 0, m.uiState.SelectedTask())

	press(t, m, "h")
	assert.Equal(t, 2, m.uiState.SelectedColumn())
}

func TestHelpToggle(t *testing.T) {
	m, _ := setupModel(t)
	press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.Mode())
	assert.Contains(t, m.View().Content, "Keys")
	press(t, m, "x")
	assert.Equal(t, state.NormalMode, m.Mode())
}

func TestQuit(t *testing.T) {
	m, _ := setupModel(t)
	cmd := pressOnly(m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestNotificationExpiry(t *testing.T) {
	m, _ := setupModel(t)
	m.notify(state.LevelInfo, "hello", 0)
	n := lastToast(t, m)

	m.Update(notificationExpiredMsg{id: n.ID})
	assert.Empty(t, m.Notifications())
}

func TestView_RendersColumnsAndCards(t *testing.T) {
	m, _ := setupModel(t, sampleTasks()...)
	out := m.View().Content

	for _, s := range []string{"Not Started (1)", "In Progress (1)", "Blocked (1)", "Completed (0)", "Seven", "Answer"} {
		assert.Contains(t, out, s)
	}
	assert.Contains(t, out, "NORMAL")
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(nil, nil)
	assert.Equal(t, "Loading...", m.View().Content)
}
