package os

import (
	"context"
	"errors"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/adrianliechti/serve/pkg/fs"
)

var _ fs.Watcher = &Watcher{}

type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

func NewWatcher() (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()

	if err != nil {
		return nil, err
	}

	return &Watcher{watcher, slog.Default()}, nil
}

// Watch registers every directory below path. The returned channel is closed
// once ctx is done.
func (w *Watcher) Watch(ctx context.Context, path ...string) (<-chan fs.Event, error) {
	for _, p := range path {
		if err := w.addTree(p); err != nil {
			w.watcher.Close()
			return nil, err
		}
	}

	events := make(chan fs.Event)

	go func() {
		defer close(events)
		defer w.watcher.Close()

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}

				e, ok := w.translate(event)

				if !ok {
					continue
				}

				select {
				case events <- e:
				case <-ctx.Done():
					return
				}

			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(name string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if name != root && isHidden(d.Name()) {
			return filepath.SkipDir
		}

		return w.watcher.Add(name)
	})
}

func (w *Watcher) translate(event fsnotify.Event) (fs.Event, bool) {
	if isHidden(filepath.Base(event.Name)) {
		return fs.Event{}, false
	}

	switch {
	case event.Has(fsnotify.Create):
		// new directories need their own watch
		if err := w.addTree(event.Name); err != nil {
			w.logger.Debug("unable to watch", "path", event.Name, "error", err)
		}

		return fs.Event{Action: fs.Create, Path: event.Name}, true

	case event.Has(fsnotify.Write):
		return fs.Event{Action: fs.Modify, Path: event.Name}, true

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if err := w.watcher.Remove(event.Name); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			w.logger.Debug("unable to unwatch", "path", event.Name, "error", err)
		}

		return fs.Event{Action: fs.Remove, Path: event.Name}, true
	}

	return fs.Event{}, false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
