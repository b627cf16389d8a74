package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/flatcms/pkg/core"
)

// Watch reports changes made to the store root, including ones made outside
// this process. The channel is closed once ctx is done.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("%w: failed to watch %s: %w", core.ErrStoreUnavailable, r.Path, err)
	}

	size := r.config.EventBuffer
	if size <= 0 {
		size = 100
	}
	events := make(chan core.Event, size)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.reportWatchError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := r.mapEvent(event)
			if !ok {
				continue
			}
			r.config.Logger.Debug("store changed", "type", e.Type, "name", e.Name)
			select {
			case events <- e:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.reportWatchError(err)
		}
	}
}

// mapEvent converts an fsnotify event into a document event.
// Events for ignored names, nested paths and permission changes are dropped.
func (r *Repository) mapEvent(event fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(event.Name)
	if filepath.Dir(filepath.Clean(event.Name)) != filepath.Clean(r.Path) || r.ignored(name) {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case event.Has(fsnotify.Create):
		t = core.EventCreate
	case event.Has(fsnotify.Write):
		t = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{Type: t, Name: name, Timestamp: time.Now().Unix()}, true
}

func (r *Repository) reportWatchError(err error) {
	r.config.Logger.Error("watcher error", "error", err)
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}
