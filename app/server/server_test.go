package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/serve/pkg/cli"
	"github.com/adrianliechti/serve/pkg/server"
)

func TestStartWebServerAnnounces(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer

	cli.SetOutput(&out, io.Discard)
	t.Cleanup(func() { cli.SetOutput(color.Output, color.Error) })

	root := t.TempDir()

	s, err := server.New(server.Config{
		Host:   "127.0.0.1",
		Root:   root,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, startWebServer(ctx, s, true, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "Serving "+root+" at "+s.URL(), lines[0])
	assert.Equal(t, "Open "+s.EntryURL(), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "/demo-working.html"))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestStartWebServerWatchLogsChanges(t *testing.T) {
	cli.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() { cli.SetOutput(color.Output, color.Error) })

	var logs syncBuffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	root := t.TempDir()

	s, err := server.New(server.Config{
		Host:   "127.0.0.1",
		Root:   root,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- startWebServer(ctx, s, true, false)
	}()

	require.Eventually(t, func() bool {
		if err := os.WriteFile(filepath.Join(root, "page.html"), []byte("v1"), 0644); err != nil {
			return false
		}

		return strings.Contains(logs.String(), "file changed")
	}, 5*time.Second, 50*time.Millisecond)

	assert.Contains(t, logs.String(), "path=page.html")

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
