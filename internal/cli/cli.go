package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/journal"
	"github.com/thenoetrevino/tablero/internal/logging"
)

// CLI holds everything a subcommand needs to talk to the tasks API.
type CLI struct {
	Config     *config.Config
	API        *api.Client
	Controller *board.Controller
	Journal    *journal.Journal // nil when the journal is turned off

	owned bool
}

// NewCLI loads the config and builds the API client, journal and board
// controller from it.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	var j *journal.Journal
	if !cfg.JournalDisabled() {
		j, err = OpenJournal(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	c := New(cfg, client, j)
	c.owned = true
	return c, nil
}

// New assembles a CLI from parts that are already open. Close does not
// release them.
func New(cfg *config.Config, client *api.Client, j *journal.Journal) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := []board.ControllerOption{board.WithLogger(logging.Logger)}
	if j != nil {
		opts = append(opts, board.WithRecorder(j))
	}
	return &CLI{
		Config:     cfg,
		API:        client,
		Controller: board.NewController(board.DefaultLayout(), client, opts...),
		Journal:    j,
	}
}

// NewClient builds an API client from the api section of the config.
func NewClient(cfg *config.Config) (*api.Client, error) {
	opts := []api.Option{api.WithLogger(logging.Logger)}
	if cfg.API.Session != "" {
		opts = append(opts, api.WithSessionCookie(cfg.API.SessionCookie, cfg.API.Session))
	}
	client, err := api.New(cfg.API.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	return client, nil
}

// OpenJournal opens the journal at the configured path or the default one.
func OpenJournal(ctx context.Context, cfg *config.Config) (*journal.Journal, error) {
	path := cfg.JournalPath
	if path == "" {
		var err error
		if path, err = journal.DefaultPath(); err != nil {
			return nil, err
		}
	}
	j, err := journal.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return j, nil
}

// Close releases the journal when NewCLI opened it.
func (c *CLI) Close() error {
	if !c.owned || c.Journal == nil {
		return nil
	}
	return c.Journal.Close()
}

type contextKey struct{}

// WithCLI attaches an existing CLI to ctx. Commands run with that context
// use it instead of building their own.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI attached to ctx, or a new one.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if c, ok := ctx.Value(contextKey{}).(*CLI); ok && c != nil {
			return c, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// CloseCLI is deferred by every command.
func CloseCLI(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

// ErrNoJournal is returned by history when the journal is turned off.
var ErrNoJournal = errors.New("journal is disabled (journal_path: off)")
