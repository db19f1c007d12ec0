package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

const (
	testWidth  = 120
	testHeight = 40
)

// setupModel starts a model against a fake API seeded with tasks and
// drains the initial load.
func setupModel(t *testing.T, seed ...*models.Task) (*Model, *testutil.FakeAPI) {
	t.Helper()
	return setupModelWith(t, nil, seed...)
}

// setupModelWith is setupModel with controller options.
func setupModelWith(t *testing.T, opts []board.ControllerOption, seed ...*models.Task) (*Model, *testutil.FakeAPI) {
	t.Helper()
	fake := testutil.SetupTestAPI(t, seed...)
	client, err := api.New(fake.BaseURL())
	require.NoError(t, err)

	ctrl := board.NewController(board.DefaultLayout(), client, opts...)
	m := New(ctrl, config.Default(), withoutTimers())
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	run(t, m, m.Init())
	return m, fake
}

// run executes cmd and feeds every message it produces back into the
// model until no command is left.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "command loop did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			return
		default:
			_, follow := m.Update(msg)
			queue = append(queue, follow)
		}
	}
}

// keyMsg builds the key press for a key name as tea prints it.
func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case "ctrl+d":
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	}
	r := []rune(k)
	return tea.KeyPressMsg{Code: r[0], Text: k}
}

// press sends keys one by one, running each resulting command to completion.
func press(t *testing.T, m *Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		run(t, m, cmd)
	}
}

// pressOnly sends a key and returns its command without running it.
func pressOnly(m *Model, k string) tea.Cmd {
	_, cmd := m.Update(keyMsg(k))
	return cmd
}

// selectCard puts the cursor on a card.
func selectCard(t *testing.T, m *Model, id int) {
	t.Helper()
	col, row, ok := m.Board().Position(id)
	require.True(t, ok, "card %d not on board", id)
	m.uiState.Select(col, row)
}

func lastToast(t *testing.T, m *Model) state.Notification {
	t.Helper()
	n, ok := m.notificationState.Last()
	require.True(t, ok, "expected a notification")
	return n
}

func errorToasts(m *Model) []state.Notification {
	var out []state.Notification
	for _, n := range m.Notifications() {
		if n.Level == state.LevelError {
			out = append(out, n)
		}
	}
	return out
}

func dueDate(t *testing.T, raw string) *models.Date {
	t.Helper()
	d, err := models.ParseDate(raw)
	require.NoError(t, err)
	return &d
}

// outcomeLog is a board.Recorder that keeps outcomes in memory.
type outcomeLog struct {
	outcomes []board.Outcome
}

func (l *outcomeLog) RecordOutcome(_ context.Context, o board.Outcome) error {
	l.outcomes = append(l.outcomes, o)
	return nil
}
