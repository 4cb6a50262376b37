package fs

import (
	"context"
)

// Watcher reports changes below the watched directories until ctx is done.
type Watcher interface {
	Watch(ctx context.Context, path ...string) (<-chan Event, error)
}

type Action string

const (
	Create Action = "create"
	Modify Action = "modify"
	Remove Action = "remove"
)

type Event struct {
	Action Action

	Path string
}
