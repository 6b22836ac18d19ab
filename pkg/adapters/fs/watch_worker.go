package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jot/pkg/core"
)

// Watch reports changes to the slot file made by any process.
// The returned channel is closed once ctx is cancelled.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if !doublestar.ValidatePattern(r.config.WatchPattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", r.config.WatchPattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// The directory is watched rather than the file: atomic writes replace
	// the file, which would silently drop a file watch.
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.Path, err)
	}

	events := make(chan core.Event)
	w := &watchWorker{repo: r, watcher: watcher, events: events}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		if r.config.ErrorHandler != nil {
			r.config.ErrorHandler(err)
		} else if r.config.Logger != nil {
			r.config.Logger.Error("watcher stopped", "error", err)
		}
	}))

	return events, nil
}

type watchWorker struct {
	repo    *Repository
	watcher *fsnotify.Watcher
	events  chan<- core.Event
}

// run is the main event loop. Bursts of filesystem events inside the
// debounce window collapse into the last one.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.repo.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger != nil {
				if logger.Enabled(ctx, slog.LevelDebug) {
					logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
				} else {
					logger.Error("watcher panic", "error", err)
				}
			}
		}
	}()
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	var (
		pending *core.Event
		flush   <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if logger != nil {
				logger.Debug("event received", "name", event.Name, "op", event.Op.String())
			}
			e, keep := w.mapEvent(event)
			if !keep {
				continue
			}
			pending = &e
			flush = time.After(w.repo.config.Debounce)

		case <-flush:
			flush = nil
			if pending == nil {
				continue
			}
			w.repo.recordEvent()
			select {
			case w.events <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if logger != nil {
				logger.Error("fsnotify error", "error", wErr)
			}
			if w.repo.config.ErrorHandler != nil {
				w.repo.config.ErrorHandler(wErr)
			}
		}
	}
}

// mapEvent filters a raw filesystem event down to slot changes.
func (w *watchWorker) mapEvent(event fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, TempFilePrefix) {
		return core.Event{}, false
	}
	if match, err := doublestar.Match(w.repo.config.WatchPattern, name); err != nil || !match {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		eType = core.EventModify
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      eType,
		Slot:      strings.TrimSuffix(name, filepath.Ext(name)),
		Timestamp: time.Now().Unix(),
	}, true
}
