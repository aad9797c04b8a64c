package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/loader"
	"github.com/online-go/movereview/internal/model"
)

// ChangeType names the filesystem operation behind a reload.
type ChangeType string

// Change types reported by the watcher.
const (
	ChangeInitial ChangeType = "initial"
	ChangeCreate  ChangeType = "create"
	ChangeWrite   ChangeType = "write"
	ChangeRemove  ChangeType = "remove"
	ChangeRename  ChangeType = "rename"
)

// Update is delivered after every settled change to the watched file.
// Err is set when the file could not be reloaded; File is nil in that case.
type Update struct {
	File   *model.ReviewFile
	Err    error
	Path   string
	Change ChangeType
}

// FileWatcher reloads a single review file whenever it changes.
//
// The parent directory is watched rather than the file itself so editors
// and engines that replace the file atomically are still observed.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	onUpdate func(Update)
	path     string
	retry    common.RetryOptions
	debounce time.Duration
}

// reloadRetry gives a streaming writer time to finish flushing the file.
var reloadRetry = common.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: 25 * time.Millisecond,
	MaxDelay:     100 * time.Millisecond,
}

// NewFileWatcher creates a watcher for path. A zero debounce uses 500ms.
func NewFileWatcher(path string, debounce time.Duration, onUpdate func(Update)) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &FileWatcher{
		watcher:  w,
		path:     abs,
		debounce: debounce,
		retry:    reloadRetry,
		onUpdate: onUpdate,
	}, nil
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	return w.path
}

// Run delivers an initial update, then one per settled change.
// It blocks until the context is cancelled.
func (w *FileWatcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	var (
		mu         sync.Mutex
		lastChange ChangeType
	)
	debouncer := NewDebouncer(w.debounce, func() {
		mu.Lock()
		change := lastChange
		mu.Unlock()
		w.reload(ctx, change)
	})
	defer debouncer.Stop()

	w.reload(ctx, ChangeInitial)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			change := opToChangeType(event.Op)
			if change == "" {
				continue
			}

			slog.Debug("Review file changed", "path", w.path, "change", change)

			mu.Lock()
			lastChange = change
			mu.Unlock()
			debouncer.Trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// reload reads the file again, retrying decode failures left by partial writes.
func (w *FileWatcher) reload(ctx context.Context, change ChangeType) {
	if w.onUpdate == nil {
		return
	}

	update := Update{Path: w.path, Change: change}
	if change == ChangeRemove || change == ChangeRename {
		update.Err = fmt.Errorf("%s was removed", w.path)
		w.onUpdate(update)
		return
	}

	update.Err = common.WithRetry(ctx, func() error {
		file, err := loader.Load(w.path)
		if err != nil {
			if errors.Is(err, common.ErrInvalidReviewFile) {
				return err
			}
			return common.Permanent(err)
		}
		update.File = file
		return nil
	}, w.retry)

	w.onUpdate(update)
}

func opToChangeType(op fsnotify.Op) ChangeType {
	switch {
	case op.Has(fsnotify.Create):
		return ChangeCreate
	case op.Has(fsnotify.Write):
		return ChangeWrite
	case op.Has(fsnotify.Remove):
		return ChangeRemove
	case op.Has(fsnotify.Rename):
		return ChangeRename
	default:
		return ""
	}
}
