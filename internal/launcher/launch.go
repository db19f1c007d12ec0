package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/tui"
)

// Launch starts the interactive board.
func Launch() error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client, err := cli.NewClient(cfg)
	if err != nil {
		return err
	}

	opts := []board.ControllerOption{board.WithLogger(logging.Logger)}
	if cfg.JournalDisabled() {
		slog.Info("journal disabled")
	} else {
		j, err := cli.OpenJournal(ctx, cfg)
		if err != nil {
			// the board works without a journal
			slog.Warn("continuing without journal", "error", err)
		} else {
			defer func() {
				if err := j.Close(); err != nil {
					slog.Error("error closing journal", "error", err)
				}
			}()
			opts = append(opts, board.WithRecorder(j))
		}
	}

	ctrl := board.NewController(board.DefaultLayout(), client, opts...)
	model := tui.New(ctrl, cfg, tui.WithContext(ctx))
	p := tea.NewProgram(model, tea.WithContext(ctx))

	slog.Info("starting board", "api", client.BaseURL())

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		<-errChan
	}

	return nil
}
