package server

import (
	"context"
	"log/slog"
	"path/filepath"

	fs "github.com/adrianliechti/serve/pkg/fs/os"
)

func watchRoot(ctx context.Context, root string) error {
	w, err := fs.NewWatcher()

	if err != nil {
		return err
	}

	events, err := w.Watch(ctx, root)

	if err != nil {
		return err
	}

	go func() {
		for e := range events {
			path, err := filepath.Rel(root, e.Path)

			if err != nil {
				path = e.Path
			}

			slog.Info("file changed", "action", string(e.Action), "path", filepath.ToSlash(path))
		}
	}()

	return nil
}
