package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
)

// TaskAPI is the slice of the REST client the controller needs.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	CreateTask(ctx context.Context, payload models.TaskPayload) (*models.Task, error)
	UpdateTask(ctx context.Context, payload models.TaskPayload) (*models.Task, error)
	UpdateStatus(ctx context.Context, id int, status models.Status) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// Recorder stores the outcome of every resolved move.
type Recorder interface {
	RecordOutcome(ctx context.Context, outcome Outcome) error
}

// Controller keeps a Board in sync with the tasks API.
type Controller struct {
	board    *Board
	api      TaskAPI
	recorder Recorder
	logger   *slog.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithRecorder sets where move outcomes are journaled.
func WithRecorder(r Recorder) ControllerOption {
	return func(c *Controller) {
		c.recorder = r
	}
}

// WithLogger sets the controller logger.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a controller over a fresh board for layout.
func NewController(layout *Layout, api TaskAPI, opts ...ControllerOption) *Controller {
	c := &Controller{
		board:  New(layout),
		api:    api,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Board returns the controlled board.
func (c *Controller) Board() *Board {
	return c.board
}

// API returns the client the controller talks to.
func (c *Controller) API() TaskAPI {
	return c.api
}

// Load clears the board and renders the task collection. On failure the
// board stays empty.
func (c *Controller) Load(ctx context.Context) error {
	c.board.Clear()
	tasks, err := c.api.ListTasks(ctx)
	return c.Loaded(tasks, err)
}

// Loaded renders the result of a list request issued off the event loop.
func (c *Controller) Loaded(tasks []*models.Task, err error) error {
	c.board.Clear()
	if err != nil {
		c.logger.Error("failed to load tasks", "error", err)
		return fmt.Errorf("could not load tasks: %w", err)
	}
	c.board.Render(tasks)
	c.logger.Info("board loaded", "tasks", len(tasks))
	return nil
}

// ChangeStatus runs the full status change protocol for one card.
func (c *Controller) ChangeStatus(ctx context.Context, id int, status models.Status) (Outcome, error) {
	move, err := c.board.BeginMove(id, status)
	if err != nil {
		return Outcome{}, err
	}
	return c.Finish(ctx, move), nil
}

// BeginDrop applies the optimistic part of a drop.
func (c *Controller) BeginDrop(payload, panelID string) (Move, error) {
	t, err := DecodeTransfer(payload)
	if err != nil {
		return Move{}, err
	}
	return c.board.Drop(t, panelID)
}

// Send issues the status-only update for a move. It touches no board state
// and may run off the event loop.
func (c *Controller) Send(ctx context.Context, m Move) error {
	_, err := c.api.UpdateStatus(ctx, m.TaskID, m.NewStatus)
	return err
}

// Finish sends the move, resolves it and journals the outcome.
func (c *Controller) Finish(ctx context.Context, m Move) Outcome {
	outcome := c.Resolve(m, c.Send(ctx, m))
	c.Record(ctx, outcome)
	return outcome
}

// Resolve applies a request result to the board. Nothing is journaled here.
func (c *Controller) Resolve(m Move, err error) Outcome {
	outcome := c.board.Resolve(m, err)
	switch outcome.Kind {
	case RolledBack:
		c.logger.Warn("status change rolled back", "task_id", m.TaskID, "from", m.OldStatus, "to", m.NewStatus, "error", err)
	case Stale:
		c.logger.Debug("stale status result", "task_id", m.TaskID, "seq", m.Seq, "error", err)
	default:
		c.logger.Info("status change resolved", "task_id", m.TaskID, "to", m.NewStatus, "outcome", outcome.Kind.String())
	}
	return outcome
}

// Record journals a resolved move. Failures are logged, not returned.
func (c *Controller) Record(ctx context.Context, outcome Outcome) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordOutcome(ctx, outcome); err != nil {
		c.logger.Error("failed to journal move", "task_id", outcome.Move.TaskID, "error", err)
	}
}

// FetchTask loads the full record of a task.
func (c *Controller) FetchTask(ctx context.Context, id int) (*models.Task, error) {
	task, err := c.api.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task #%d", ErrTaskMissing, id)
	}
	return task, nil
}

// CreateTask validates and submits a new task. The board is not touched;
// callers reload once the task exists.
func (c *Controller) CreateTask(ctx context.Context, payload models.TaskPayload) (*models.Task, error) {
	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return c.api.CreateTask(ctx, payload)
}

// SaveTask validates and submits a full update. When the API answers
// without a body the task is re-fetched. The returned task has not been
// drawn yet; pass it to ApplySaved on the event loop.
func (c *Controller) SaveTask(ctx context.Context, payload models.TaskPayload) (*models.Task, error) {
	payload.Normalize()
	if err := payload.ValidateUpdate(); err != nil {
		return nil, err
	}
	task, err := c.api.UpdateTask(ctx, payload)
	if err != nil {
		return nil, err
	}
	if task == nil {
		task, err = c.api.GetTask(ctx, payload.ID)
		if err != nil {
			return nil, err
		}
	}
	return task, nil
}

// ApplySaved redraws the single card of a saved task.
func (c *Controller) ApplySaved(task *models.Task) *Card {
	return c.board.Upsert(task)
}

// DeleteTask deletes a task and, on success, removes its card.
func (c *Controller) DeleteTask(ctx context.Context, id int) error {
	if err := c.api.DeleteTask(ctx, id); err != nil {
		return err
	}
	c.Deleted(id)
	return nil
}

// Deleted removes the card of a task the server has deleted.
func (c *Controller) Deleted(id int) {
	c.board.Remove(id)
	c.logger.Info("task deleted", "task_id", id)
}
