package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/online-go/movereview/internal/review"
	"github.com/online-go/movereview/internal/watch"
)

// Run shows the review viewer until the user quits or ctx is canceled.
func Run(ctx context.Context, in review.Input, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newModel(in, cfg), programOpts...)

	if cfg.WatchPath != "" {
		w, err := watch.NewFileWatcher(cfg.WatchPath, cfg.Debounce, func(u watch.Update) {
			p.Send(ReviewLoadedMsg{File: u.File, Err: u.Err})
		})
		if err != nil {
			return fmt.Errorf("failed to watch review: %w", err)
		}

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := w.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Warn("Review watcher stopped", "path", cfg.WatchPath, "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("review viewer failed: %w", err)
	}
	return nil
}
