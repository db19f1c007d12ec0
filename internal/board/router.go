package board

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Event is a user action aimed at a card or column.
type Event struct {
	Action  Action
	TaskID  int
	Status  models.Status
	PanelID string
	Payload string
}

// Handler reacts to one routed event.
type Handler func(ctx context.Context, ev Event) error

// Router dispatches events to handlers through an explicit table.
type Router struct {
	handlers map[Action]Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[Action]Handler)}
}

// Handle registers h for action, replacing any previous handler.
func (r *Router) Handle(action Action, h Handler) *Router {
	r.handlers[action] = h
	return r
}

// Has reports whether action has a handler.
func (r *Router) Has(action Action) bool {
	_, ok := r.handlers[action]
	return ok
}

// Dispatch runs the handler for ev.Action.
func (r *Router) Dispatch(ctx context.Context, ev Event) error {
	h, ok := r.handlers[ev.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}
	return h(ctx, ev)
}
