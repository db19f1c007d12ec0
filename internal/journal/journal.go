package journal

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/user"
	_ "modernc.org/sqlite"
)

// Entry is one journaled status change.
type Entry struct {
	ID        int64         `json:"id"`
	TaskID    int           `json:"task_id"`
	OldStatus models.Status `json:"old_status"`
	NewStatus models.Status `json:"new_status"`
	Outcome   string        `json:"outcome"`
	Error     string        `json:"error,omitempty"`
	Seq       uint64        `json:"seq"`
	Actor     string        `json:"actor"`
	CreatedAt time.Time     `json:"created_at"`
}

// Journal records the outcome of every status change the board resolves.
type Journal struct {
	db    *sql.DB
	actor string
}

// DefaultPath returns ~/.tablero/journal.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tablero", "journal.db"), nil
}

// Open opens (creating if needed) the journal database at path.
// Use ":memory:" for an ephemeral journal.
func Open(ctx context.Context, path string) (*Journal, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// A single connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			closeQuietly(db)
			return nil, fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Journal{db: db, actor: user.Name()}, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing journal", "error", err)
	}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS status_changes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			old_status TEXT NOT NULL,
			new_status TEXT NOT NULL,
			outcome TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			seq INTEGER NOT NULL DEFAULT 0,
			actor TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_status_changes_task
		ON status_changes(task_id, id)
	`)
	return err
}

// Close releases the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// RecordOutcome implements board.Recorder.
func (j *Journal) RecordOutcome(ctx context.Context, o board.Outcome) error {
	errText := ""
	if o.Err != nil {
		errText = o.Err.Error()
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO status_changes (task_id, old_status, new_status, outcome, error, seq, actor, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.Move.TaskID, string(o.Move.OldStatus), string(o.Move.NewStatus),
		o.Kind.String(), errText, int64(o.Move.Seq), j.actor, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}
	return nil
}

// List returns the newest entries first. A taskID of 0 lists every task.
func (j *Journal) List(ctx context.Context, taskID int, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, task_id, old_status, new_status, outcome, error, seq, actor, created_at
		FROM status_changes`
	args := []any{}
	if taskID > 0 {
		query += ` WHERE task_id = ?`
		args = append(args, taskID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Error("error closing rows", "error", closeErr)
		}
	}()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var oldStatus, newStatus string
		var seq int64
		if err := rows.Scan(&e.ID, &e.TaskID, &oldStatus, &newStatus, &e.Outcome, &e.Error, &seq, &e.Actor, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		e.OldStatus = models.Status(oldStatus)
		e.NewStatus = models.Status(newStatus)
		e.Seq = uint64(seq)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes entries older than cutoff and returns how many were removed.
func (j *Journal) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := j.db.ExecContext(ctx, `DELETE FROM status_changes WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune journal: %w", err)
	}
	return res.RowsAffected()
}
