package server

import (
	"context"
	"log/slog"

	"github.com/adrianliechti/serve/app"
	"github.com/adrianliechti/serve/pkg/cli"
	"github.com/adrianliechti/serve/pkg/server"

	"github.com/skratchdot/open-golang/open"
)

var Command = &cli.Command{
	Name:  "serve",
	Usage: "serve the executable's directory over HTTP",

	Flags: []cli.Flag{
		app.HostFlag,
		app.PortFlag,
		app.RootFlag,
		app.DebugFlag,

		&cli.StringFlag{
			Name:  "entry",
			Usage: "page announced at startup",
			Value: server.DefaultEntry,
		},

		&cli.StringFlag{
			Name:  "index",
			Usage: "index file name",
			Value: server.DefaultIndex,
		},

		&cli.StringSliceFlag{
			Name:  "extensions",
			Usage: "extensions tried for paths without one (e.g. html,js,css)",
		},

		&cli.BoolFlag{
			Name:  "spa",
			Usage: "enable SPA redirect",
		},

		&cli.BoolFlag{
			Name:  "isolate",
			Usage: "send cross-origin isolation headers",
		},

		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "disable browser caching",
		},

		&cli.BoolFlag{
			Name:  "cors",
			Usage: "allow cross-origin requests",
		},

		&cli.BoolFlag{
			Name:  "compress",
			Usage: "compress responses",
		},

		&cli.BoolFlag{
			Name:  "watch",
			Usage: "log file changes",
		},

		&cli.BoolFlag{
			Name:  "open",
			Usage: "open entry page in browser",
		},
	},

	Action: func(c *cli.Context) error {
		root := app.MustEnterRoot(c)
		port := app.MustPort(c)

		s, err := server.New(server.Config{
			Host: app.Host(c),
			Port: port,
			Root: root,

			Index: c.String("index"),
			Entry: c.String("entry"),

			Extensions: c.StringSlice("extensions"),

			SPA:      c.Bool("spa"),
			Isolate:  c.Bool("isolate"),
			NoCache:  c.Bool("no-cache"),
			CORS:     c.Bool("cors"),
			Compress: c.Bool("compress"),

			Logger: slog.Default(),
		})

		if err != nil {
			return err
		}

		return startWebServer(c.Context, s, c.Bool("watch"), c.Bool("open"))
	},
}

func startWebServer(ctx context.Context, s *server.Server, watch, browse bool) error {
	l, err := s.Listen()

	if err != nil {
		return err
	}

	cli.Infof("Serving %s at %s", s.Root(), s.URL())
	cli.Infof("Open %s", s.EntryURL())

	if watch {
		if err := watchRoot(ctx, s.Root()); err != nil {
			l.Close()
			return err
		}
	}

	if browse {
		if err := open.Run(s.EntryURL()); err != nil {
			slog.Warn("unable to open browser", "error", err)
		}
	}

	return s.Serve(ctx, l)
}
