package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrianliechti/serve/app"
	"github.com/adrianliechti/serve/app/server"
	"github.com/adrianliechti/serve/pkg/cli"

	"github.com/lmittmann/tint"
)

var version string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupLogger(slog.LevelInfo)

	if err := initApp().RunContext(ctx, os.Args); err != nil {
		cli.Fatal(err)
	}
}

func initApp() *cli.App {
	return &cli.App{
		Name:  "serve",
		Usage: server.Command.Usage,

		Suggest: true,
		Version: version,

		HideHelpCommand: true,

		Flags: server.Command.Flags,

		Before: func(c *cli.Context) error {
			if app.Debug(c) {
				setupLogger(slog.LevelDebug)
			}

			return nil
		},

		Action: server.Command.Action,
	}
}

func setupLogger(level slog.Level) {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}
