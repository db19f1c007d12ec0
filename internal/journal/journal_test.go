package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
)

func setupTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndList(t *testing.T) {
	j := setupTestJournal(t)
	ctx := context.Background()

	require.NoError(t, j.RecordOutcome(ctx, board.Outcome{
		Kind: board.Committed,
		Move: board.Move{TaskID: 7, OldStatus: models.StatusNotStarted, NewStatus: models.StatusInProgress, Seq: 1},
	}))
	require.NoError(t, j.RecordOutcome(ctx, board.Outcome{
		Kind: board.RolledBack,
		Move: board.Move{TaskID: 7, OldStatus: models.StatusInProgress, NewStatus: models.StatusBlocked, Seq: 2},
		Err:  errors.New("HTTP 500"),
	}))
	require.NoError(t, j.RecordOutcome(ctx, board.Outcome{
		Kind: board.Committed,
		Move: board.Move{TaskID: 8, OldStatus: models.StatusBlocked, NewStatus: models.StatusCompleted, Seq: 1},
	}))

	all, err := j.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 8, all[0].TaskID, "newest first")

	forSeven, err := j.List(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, forSeven, 2)
	assert.Equal(t, "rolled_back", forSeven[0].Outcome)
	assert.Equal(t, "HTTP 500", forSeven[0].Error)
	assert.Equal(t, models.StatusBlocked, forSeven[0].NewStatus)
	assert.Equal(t, uint64(2), forSeven[0].Seq)
	assert.NotEmpty(t, forSeven[0].Actor)
}

func TestList_Limit(t *testing.T) {
	j := setupTestJournal(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, j.RecordOutcome(ctx, board.Outcome{Move: board.Move{TaskID: 1, OldStatus: models.StatusNotStarted, NewStatus: models.StatusBlocked}}))
	}
	entries, err := j.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestPrune(t *testing.T) {
	j := setupTestJournal(t)
	ctx := context.Background()
	require.NoError(t, j.RecordOutcome(ctx, board.Outcome{Move: board.Move{TaskID: 1, OldStatus: models.StatusNotStarted, NewStatus: models.StatusBlocked}}))

	n, err := j.Prune(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	entries, err := j.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_FilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	ctx := context.Background()

	j, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, j.RecordOutcome(ctx, board.Outcome{Move: board.Move{TaskID: 3, OldStatus: models.StatusNotStarted, NewStatus: models.StatusCompleted}}))
	require.NoError(t, j.Close())

	j, err = Open(ctx, path)
	require.NoError(t, err)
	defer j.Close()
	entries, err := j.List(ctx, 3, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
