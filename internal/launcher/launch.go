package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/labels"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/seed"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

// Options are the command-line overrides for a TUI session
type Options struct {
	Seed    string // seed source, overrides the config file when set
	NoMouse bool
	Debug   bool

	// Overrides holds the flags given explicitly, for the startup log
	Overrides map[string]string
}

// Launch starts the TUI application
func Launch(opts Options) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init(opts.Debug)
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

	slog.Info("starting tablero", "flags", opts.Overrides)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyOptions(cfg, opts)

	b, err := loadBoard(ctx, cfg)
	if err != nil {
		return err
	}

	components.InitStyles(cfg.ColorScheme)
	model := tui.New(cfg, b)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
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
		slog.Info("shutdown signal received")
		// give the program a moment to restore the terminal
		select {
		case <-errChan:
		case <-time.After(2 * time.Second):
		}
	}

	return nil
}

// applyOptions layers command-line flags over the loaded config
func applyOptions(cfg *config.Config, opts Options) {
	if opts.Seed != "" {
		cfg.Seed.Source = opts.Seed
	}
	if opts.NoMouse {
		off := false
		cfg.Mouse = &off
	}
}

// registerLabels colors the seed's labels in board order, so colors do not
// depend on which cards happen to be scrolled into view first
func registerLabels(b *board.Board) {
	for _, col := range b.Columns() {
		for _, card := range col.Tasks {
			labels.Resolve(card.Labels)
		}
	}
}

// loadBoard reads the configured seed into a fresh board
func loadBoard(ctx context.Context, cfg *config.Config) (*board.Board, error) {
	started := time.Now()
	loader := seed.Loader{S3: cfg.Seed.S3}
	cols, err := loader.Load(ctx, cfg.Seed.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed %q: %w", cfg.Seed.Source, err)
	}

	b := board.FromColumns(cols)
	registerLabels(b)
	slog.Info("board loaded",
		"source", cfg.Seed.Source,
		"columns", b.Len(),
		"cards", b.CardCount(),
		"labels", labels.Known(),
		"took", time.Since(started))
	return b, nil
}
