package tui

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// Create dialog
// ============================================================================

func fillCreate(m *Model, title, due string) {
	fs := m.createForm
	fs.Title = title
	fs.Description = "write it down"
	fs.Subject = "home"
	fs.DueDate = due
	fs.Priority = models.PriorityMedium
	fs.Status = models.StatusBlocked
}

func TestCreate_Success(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)

	press(t, m, "a")
	require.Equal(t, state.CreateFormMode, m.Mode())
	fillCreate(m, "Buy milk", "2026-11-02")
	press(t, m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, 1, fake.RequestCount(http.MethodPost))
	assert.Equal(t, 2, fake.RequestCount(http.MethodGet), "board reloads after create")
	assert.Equal(t, 4, m.Board().Len())

	toast := lastToast(t, m)
	assert.Equal(t, state.LevelSuccess, toast.Level)
	assert.Equal(t, "Task created successfully.", toast.Message)
	assert.Equal(t, m.config.Toast.Brief, toast.TTL)

	created := fake.Task(43)
	require.NotNil(t, created)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, models.StatusBlocked, created.Status)
	assert.Equal(t, dueDate(t, "2026-11-02"), created.DueDate)
	assert.NotNil(t, created.CreatedAt)

	assert.Empty(t, m.createForm.Title, "form is reset")
}

func TestCreate_InvalidFormSendsNothing(t *testing.T) {
	m, fake := setupModel(t)

	press(t, m, "a")
	fillCreate(m, "", "2026-11-02")
	press(t, m, "ctrl+s")

	assert.Equal(t, state.CreateFormMode, m.Mode())
	assert.Equal(t, 0, fake.RequestCount(http.MethodPost))
	assert.True(t, m.createForm.Validated)
	assert.ErrorIs(t, m.createForm.FieldError("title"), models.ErrTitleRequired)
	assert.NoError(t, m.createForm.FieldError("due_date"))
}

func TestCreate_InvalidDueDate(t *testing.T) {
	m, fake := setupModel(t)

	press(t, m, "a")
	fillCreate(m, "Title", "02/11/2026")
	press(t, m, "ctrl+s")

	assert.Equal(t, 0, fake.RequestCount(http.MethodPost))
	assert.Error(t, m.createForm.FieldError("due_date"))
}

func TestCreate_FailureKeepsDialogOpen(t *testing.T) {
	m, fake := setupModel(t)
	fake.Fail(http.MethodPost, 0, http.StatusInternalServerError, "db down")

	press(t, m, "a")
	fillCreate(m, "Buy milk", "2026-11-02")
	press(t, m, "ctrl+s")

	assert.Equal(t, state.CreateFormMode, m.Mode())
	assert.Equal(t, "Buy milk", m.createForm.Title)
	assert.False(t, m.createForm.Submitting)
	assert.Equal(t, "Error creating task: db down", lastToast(t, m).Message)
	assert.Equal(t, 1, fake.RequestCount(http.MethodGet), "no reload on failure")
}

func TestCreate_EscKeepsTypedValues(t *testing.T) {
	m, _ := setupModel(t)

	press(t, m, "a")
	fillCreate(m, "draft", "")
	press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.Mode())

	press(t, m, "a")
	assert.Equal(t, "draft", m.createForm.Title)
}

// ============================================================================
// Details dialog
// ============================================================================

func TestDetails_LoadsTask(t *testing.T) {
	owner := 3
	task := &models.Task{
		ID: 42, Title: "Answer", Description: "# heading", Subject: "deep thought",
		DueDate: dueDate(t, "2026-12-24"), Priority: models.PriorityHigh,
		Status: models.StatusBlocked, CreatedAt: dueDate(t, "2026-10-01"), OwnerID: &owner,
	}
	m, _ := setupModel(t, task)
	selectCard(t, m, 42)

	cmd := pressOnly(m, "enter")
	require.Equal(t, state.DetailsMode, m.Mode())
	assert.True(t, m.details.Loading())
	assert.False(t, m.details.Ready(), "form disabled until the task loads")

	run(t, m, cmd)
	require.True(t, m.details.Ready())
	fs := m.details.Form
	assert.Equal(t, 42, fs.TaskID)
	assert.Equal(t, "Answer", fs.Title)
	assert.Equal(t, "deep thought", fs.Subject)
	assert.Equal(t, "2026-12-24", fs.DueDate)
	assert.Equal(t, models.PriorityHigh, fs.Priority)
	assert.Equal(t, models.StatusBlocked, fs.Status)

	view := m.View().Content
	assert.Contains(t, view, "Task #42")
	assert.Contains(t, view, "Owner:")
	assert.Contains(t, view, "#3")
}

func TestDetails_FetchFailureClosesDialog(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	fake.Fail(http.MethodGet, 42, http.StatusNotFound, "Task not found")
	selectCard(t, m, 42)

	press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, "Error loading task #42: Task not found", lastToast(t, m).Message)
}

func TestDetails_EmptyReplyClosesDialog(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	fake.Empty(http.MethodGet, 7)
	selectCard(t, m, 7)

	assert.NotPanics(t, func() { press(t, m, "enter") })

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.False(t, m.details.Ready())
	toast := lastToast(t, m)
	assert.Equal(t, state.LevelError, toast.Level)
	assert.Equal(t, "Error loading task #7: no task in response", toast.Message)
	assert.Equal(t, 1, m.Board().Count(7), "the card stays on the board")
}

func TestDetails_Update(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 8)
	press(t, m, "enter")
	require.True(t, m.details.Ready())

	m.details.Form.Title = "Eight, renamed"
	m.details.Form.DueDate = "2026-11-30"
	m.details.Form.Status = models.StatusCompleted
	press(t, m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, 1, fake.RequestCount(http.MethodPost))
	assert.Equal(t, "Task updated successfully.", lastToast(t, m).Message)

	card := m.Board().Card(8)
	require.NotNil(t, card)
	assert.Equal(t, "Eight, renamed", card.Task.Title)
	assert.Equal(t, models.StatusCompleted, card.Status)
	assert.Equal(t, 1, m.Board().Count(8))
	assert.True(t, fake.Task(8).Completed)
}

func TestDetails_UnknownPriorityIsFlaggedNotRewritten(t *testing.T) {
	m, fake := setupModel(t, &models.Task{ID: 5, Title: "Odd", Priority: models.Priority(4), DueDate: dueDate(t, "2025-03-01")})
	selectCard(t, m, 5)
	press(t, m, "enter")
	require.True(t, m.details.Ready())
	assert.Equal(t, models.Priority(4), m.details.Form.Priority)

	press(t, m, "ctrl+s")
	assert.Equal(t, state.DetailsMode, m.Mode())
	assert.Zero(t, fake.RequestCount(http.MethodPost))
	assert.ErrorIs(t, m.details.Form.FieldError("priority"), models.ErrInvalidPriority)
	assert.Equal(t, models.Priority(4), fake.Task(5).Priority)

	m.details.Form.Priority = models.PriorityMedium
	press(t, m, "ctrl+s")
	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, models.PriorityMedium, fake.Task(5).Priority)
}

func TestDetails_UpdateFailureKeepsDialog(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 8)
	press(t, m, "enter")
	fake.Fail(http.MethodPost, 8, http.StatusUnprocessableEntity, "bad date")

	m.details.Form.DueDate = "2026-11-30"
	press(t, m, "ctrl+s")

	assert.Equal(t, state.DetailsMode, m.Mode())
	assert.Equal(t, "Error updating task: bad date", lastToast(t, m).Message)
	assert.Equal(t, "Eight", m.Board().Card(8).Task.Title)
}

func TestDetails_DeleteIgnoredBeforeLoad(t *testing.T) {
	m, _ := setupModel(t, sampleTasks()...)
	selectCard(t, m, 42)

	cmd := pressOnly(m, "enter")
	press(t, m, "ctrl+d")
	assert.Equal(t, state.DetailsMode, m.Mode())

	run(t, m, cmd)
	press(t, m, "ctrl+d")
	assert.Equal(t, state.DeleteConfirmMode, m.Mode())
}

// ============================================================================
// Delete
// ============================================================================

func TestDelete_Task42(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 42)

	press(t, m, "d")
	require.Equal(t, state.DeleteConfirmMode, m.Mode())
	assert.Contains(t, m.View().Content, "Task Title: Answer")

	press(t, m, "y")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Nil(t, m.Board().Card(42))
	assert.Equal(t, 0, m.Board().Count(42))
	assert.Nil(t, fake.Task(42))
	assert.Equal(t, "Task deleted successfully.", lastToast(t, m).Message)
	assert.NotContains(t, m.View().Content, "Answer")
}

func TestDelete_CancelReturnsToDetails(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	selectCard(t, m, 42)

	press(t, m, "d", "n")

	assert.Equal(t, state.DetailsMode, m.Mode())
	assert.Equal(t, 0, fake.RequestCount(http.MethodDelete))
}

func TestDelete_FailureKeepsCardAndDialogs(t *testing.T) {
	m, fake := setupModel(t, sampleTasks()...)
	fake.Fail(http.MethodDelete, 42, http.StatusForbidden, "not yours")
	selectCard(t, m, 42)

	press(t, m, "d", "y")

	assert.Equal(t, state.DeleteConfirmMode, m.Mode())
	assert.NotNil(t, m.Board().Card(42))
	assert.Equal(t, "Error deleting task: not yours", lastToast(t, m).Message)
}
