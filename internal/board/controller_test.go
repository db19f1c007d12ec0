package board_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

type memoryRecorder struct {
	mu       sync.Mutex
	outcomes []board.Outcome
}

func (r *memoryRecorder) RecordOutcome(_ context.Context, o board.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
	return nil
}

func setupController(t *testing.T, seed ...*models.Task) (*board.Controller, *testutil.FakeAPI, *memoryRecorder) {
	t.Helper()
	fake := testutil.SetupTestAPI(t, seed...)
	client, err := api.New(fake.BaseURL())
	require.NoError(t, err)
	rec := &memoryRecorder{}
	ctrl := board.NewController(board.DefaultLayout(), client, board.WithRecorder(rec))
	require.NoError(t, ctrl.Load(context.Background()))
	return ctrl, fake, rec
}

func TestController_LoadFailureLeavesBoardEmpty(t *testing.T) {
	fake := testutil.SetupTestAPI(t, &models.Task{ID: 1})
	client, err := api.New(fake.BaseURL())
	require.NoError(t, err)
	ctrl := board.NewController(board.DefaultLayout(), client)
	require.NoError(t, ctrl.Load(context.Background()))
	require.Equal(t, 1, ctrl.Board().Len())

	fake.Fail(http.MethodGet, 0, http.StatusServiceUnavailable, "")
	err = ctrl.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
	assert.Equal(t, 0, ctrl.Board().Len())
	assert.Equal(t, 2, fake.RequestCount(http.MethodGet), "no automatic retry")
}

// Task 7 moved to in_progress, API succeeds.
func TestController_MoveScenarioSuccess(t *testing.T) {
	ctrl, fake, rec := setupController(t, &models.Task{ID: 7, Status: models.StatusNotStarted})

	out, err := ctrl.ChangeStatus(context.Background(), 7, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, board.Committed, out.Kind)

	card := ctrl.Board().Card(7)
	assert.Equal(t, models.StatusInProgress, card.Status)
	assert.Contains(t, ctrl.Board().Cards(models.StatusInProgress), card)
	assert.Equal(t, models.StatusInProgress, fake.Task(7).Status)
	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, board.Committed, rec.outcomes[0].Kind)
}

// Task 7 moved to in_progress, API answers 500.
func TestController_MoveScenarioServerError(t *testing.T) {
	ctrl, fake, rec := setupController(t, &models.Task{ID: 7, Status: models.StatusNotStarted})
	fake.Fail(http.MethodPatch, 7, http.StatusInternalServerError, "")

	out, err := ctrl.ChangeStatus(context.Background(), 7, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, board.RolledBack, out.Kind)

	card := ctrl.Board().Card(7)
	assert.Equal(t, models.StatusNotStarted, card.Status)
	assert.Contains(t, ctrl.Board().Cards(models.StatusNotStarted), card)
	assert.Equal(t, "could not update status of task #7: HTTP 500", out.Message())
	assert.Equal(t, models.StatusNotStarted, fake.Task(7).Status)
	assert.Equal(t, 1, fake.RequestCount(http.MethodPatch), "no retry after failure")
	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, board.RolledBack, rec.outcomes[0].Kind)
}

func TestController_DropFinishes(t *testing.T) {
	ctrl, fake, rec := setupController(t, &models.Task{ID: 5, Status: models.StatusInProgress})

	tr, err := ctrl.Board().DragStart(5)
	require.NoError(t, err)
	payload, err := tr.Encode()
	require.NoError(t, err)

	panel := ctrl.Board().Layout().ColumnFor(models.StatusCompleted).PanelID
	move, err := ctrl.BeginDrop(payload, panel)
	require.NoError(t, err)
	out := ctrl.Finish(context.Background(), move)

	assert.Equal(t, board.Committed, out.Kind)
	assert.Equal(t, models.StatusCompleted, ctrl.Board().Card(5).Status)
	assert.True(t, fake.Task(5).Completed)
	assert.Len(t, rec.outcomes, 1)
}

func TestController_ResolveDoesNotJournal(t *testing.T) {
	ctrl, fake, rec := setupController(t, &models.Task{ID: 9, Status: models.StatusBlocked})
	fake.Fail(http.MethodPatch, 9, http.StatusBadRequest, "transition not allowed")
	ctx := context.Background()

	move, err := ctrl.Board().BeginMove(9, models.StatusCompleted)
	require.NoError(t, err)
	out := ctrl.Resolve(move, ctrl.Send(ctx, move))

	assert.Equal(t, board.RolledBack, out.Kind)
	assert.Equal(t, "could not update status of task #9: transition not allowed", out.Message())
	assert.Equal(t, models.StatusBlocked, ctrl.Board().Card(9).Status)
	assert.Empty(t, rec.outcomes)

	ctrl.Record(ctx, out)
	require.Len(t, rec.outcomes, 1)
	assert.Equal(t, board.RolledBack, rec.outcomes[0].Kind)
}

// nilTaskAPI answers every single-task fetch with no task and no error.
type nilTaskAPI struct {
	board.TaskAPI
}

func (nilTaskAPI) GetTask(context.Context, int) (*models.Task, error) {
	return nil, nil
}

func TestController_FetchTaskWithoutTask(t *testing.T) {
	ctrl := board.NewController(board.DefaultLayout(), nilTaskAPI{})

	task, err := ctrl.FetchTask(context.Background(), 7)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, board.ErrTaskMissing)
	assert.Contains(t, err.Error(), "task #7")
}

// Deleting task 42 leaves no card with that id.
func TestController_DeleteScenario(t *testing.T) {
	ctrl, fake, _ := setupController(t, &models.Task{ID: 42, Title: "Remove me"}, &models.Task{ID: 43})

	require.NoError(t, ctrl.DeleteTask(context.Background(), 42))
	assert.Equal(t, 0, ctrl.Board().Count(42))
	assert.Nil(t, fake.Task(42))
	assert.Equal(t, 1, ctrl.Board().Len())
}

func TestController_DeleteFailureKeepsCard(t *testing.T) {
	ctrl, fake, _ := setupController(t, &models.Task{ID: 42})
	fake.Fail(http.MethodDelete, 42, http.StatusInternalServerError, "locked")

	err := ctrl.DeleteTask(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "locked", err.Error())
	assert.Equal(t, 1, ctrl.Board().Count(42))
}

func TestController_SaveTaskRedrawsSingleCard(t *testing.T) {
	due, _ := models.ParseDate("2025-02-01")
	ctrl, fake, _ := setupController(t,
		&models.Task{ID: 1, Title: "old", Priority: models.PriorityLow, DueDate: &due},
		&models.Task{ID: 2, Title: "other"},
	)
	fake.EmptyBody = true

	payload := models.PayloadFromTask(ctrl.Board().Card(1).Task)
	payload.Title = "new"
	payload.Status = models.StatusBlocked

	task, err := ctrl.SaveTask(context.Background(), payload)
	require.NoError(t, err)
	require.NotNil(t, task, "empty update body falls back to a re-fetch")
	ctrl.ApplySaved(task)

	card := ctrl.Board().Card(1)
	assert.Equal(t, "new", card.Task.Title)
	assert.Equal(t, models.StatusBlocked, card.Status)
	assert.Equal(t, 1, ctrl.Board().Count(1))
	assert.Equal(t, 2, fake.RequestCount(http.MethodGet), "one list plus one re-fetch")
}

func TestController_SaveTaskValidatesBeforeNetwork(t *testing.T) {
	ctrl, fake, _ := setupController(t, &models.Task{ID: 1})
	before := len(fake.Requests())

	_, err := ctrl.SaveTask(context.Background(), models.TaskPayload{ID: 1, Priority: models.PriorityLow, Status: models.StatusBlocked})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTitleRequired)
	assert.Len(t, fake.Requests(), before)

	_, err = ctrl.CreateTask(context.Background(), models.TaskPayload{Title: "x"})
	assert.ErrorIs(t, err, models.ErrDueDateRequired)
	assert.Len(t, fake.Requests(), before)
}
