package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	ctrl   *board.Controller
	router *board.Router
	config *config.Config

	uiState           *state.UIState
	notificationState *state.NotificationState
	menuState         *state.MoveMenuState
	dragState         *state.DragState
	createForm        *state.TaskFormState
	details           *state.DetailsState

	spinner  spinner.Model
	spinning bool

	// loading is true while the task list is being fetched.
	loading bool
	// deleting is true while a delete request is in flight.
	deleting bool
	// mouseDrag marks the drag-start being dispatched as mouse driven.
	mouseDrag bool

	// timers disables ticks (toast expiry, spinner, cursor blink) when false.
	timers bool

	// queued collects the commands of router handlers during one dispatch.
	queued []tea.Cmd
}

// Option configures a Model.
type Option func(*Model)

// WithContext sets the context passed to every API call.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// withoutTimers makes every command resolve immediately or not at all,
// so a test can drain the command queue synchronously.
func withoutTimers() Option {
	return func(m *Model) {
		m.timers = false
	}
}

// New creates the TUI model for a controller. The board is loaded by Init.
func New(ctrl *board.Controller, cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	m := &Model{
		ctx:               context.Background(),
		ctrl:              ctrl,
		config:            cfg,
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
		menuState:         state.NewMoveMenuState(),
		dragState:         state.NewDragState(),
		createForm:        state.NewTaskFormState(),
		details:           state.NewDetailsState(),
		spinner:           spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		timers:            true,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.router = board.NewRouter().
		Handle(board.ActionMoveTo, m.handleMoveTo).
		Handle(board.ActionDrop, m.handleDrop).
		Handle(board.ActionDragStart, m.handleDragStart).
		Handle(board.ActionDetails, m.handleDetails).
		Handle(board.ActionDelete, m.handleDelete)

	return m
}

// Init loads the board.
// Required by tea.Model interface
func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Board returns the board the model draws.
func (m *Model) Board() *board.Board {
	return m.ctrl.Board()
}

// Mode returns the current interaction mode.
func (m *Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// Notifications returns the visible toasts, oldest first.
func (m *Model) Notifications() []state.Notification {
	return m.notificationState.All()
}

// currentCard returns the card under the cursor, or nil.
func (m *Model) currentCard() *board.Card {
	cards := m.Board().CardsAt(m.uiState.SelectedColumn())
	row := m.uiState.SelectedTask()
	if row < 0 || row >= len(cards) {
		return nil
	}
	return cards[row]
}

// clampSelection keeps the cursor on the board after cards moved.
func (m *Model) clampSelection() {
	b := m.Board()
	m.uiState.Clamp(b.Layout().Len(), func(col int) int {
		return len(b.CardsAt(col))
	})
}

// follow moves the cursor onto a card wherever it is filed now.
func (m *Model) follow(id int) {
	if col, row, ok := m.Board().Position(id); ok {
		m.uiState.Select(col, row)
	}
}

// notify shows a toast and schedules its removal.
func (m *Model) notify(level state.NotificationLevel, message string, ttl time.Duration) tea.Cmd {
	id := m.notificationState.Add(level, message, ttl)
	if !m.timers {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

func (m *Model) notifyError(message string) tea.Cmd {
	return m.notify(state.LevelError, message, m.config.Toast.Error)
}

// schedule delivers msg after d. Without timers it is delivered at once.
func (m *Model) schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	if !m.timers {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// needsSpinner reports whether anything on screen is waiting on the server.
func (m *Model) needsSpinner() bool {
	if m.loading || m.details.Loading() {
		return true
	}
	for i := 0; i < m.Board().Layout().Len(); i++ {
		for _, card := range m.Board().CardsAt(i) {
			if card.Busy {
				return true
			}
		}
	}
	return false
}

// startSpinner starts the spinner tick loop unless it is already running.
func (m *Model) startSpinner() tea.Cmd {
	if !m.timers || m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleSpinner(msg spinner.TickMsg) tea.Cmd {
	if !m.needsSpinner() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}
