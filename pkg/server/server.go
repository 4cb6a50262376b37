package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var ErrAlreadyListening = errors.New("server already listening")

type Server struct {
	config Config
	logger *slog.Logger

	app  *fiber.App
	addr *net.TCPAddr
}

func New(config Config) (*Server, error) {
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Server{
		config: config,
		logger: config.Logger,
	}

	s.app = s.newApp()

	return s, nil
}

func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestLogger(s.logger))

	if s.config.Compress {
		app.Use(compress.New())
	}

	if s.config.CORS {
		app.Use(cors.New())
	}

	if s.config.Isolate {
		app.Use(isolationHeaders)
	}

	if s.config.NoCache {
		app.Use(noCache)
	}

	// files are opened per request so edits and deletes show up immediately
	app.Use(filesystem.New(filesystem.Config{
		Root:  newFileSystem(s.config.Root, s.config.Extensions),
		Index: "/" + s.config.Index,
	}))

	if s.config.SPA {
		index := filepath.Join(s.config.Root, s.config.Index)

		app.Get("/*", func(c *fiber.Ctx) error {
			data, err := os.ReadFile(index)

			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fiber.ErrNotFound
				}

				return err
			}

			c.Status(fiber.StatusOK)
			c.Type(filepath.Ext(index))

			return c.Send(data)
		})
	}

	return app
}

// Listen binds the TCP socket. Bind failures are returned unchanged.
func (s *Server) Listen() (net.Listener, error) {
	if s.addr != nil {
		return nil, ErrAlreadyListening
	}

	l, err := net.Listen("tcp", net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port)))

	if err != nil {
		return nil, err
	}

	s.addr = l.Addr().(*net.TCPAddr)

	return l, nil
}

// Serve accepts connections on l until ctx is done. A context-triggered stop
// returns nil.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return s.app.Listener(l)
	})

	eg.Go(func() error {
		<-ctx.Done()

		s.logger.Debug("shutting down", "addr", l.Addr().String())

		err := s.app.ShutdownWithTimeout(shutdownTimeout)

		// covers a stop that lands before the app started accepting
		l.Close()

		return err
	})

	return eg.Wait()
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := s.Listen()

	if err != nil {
		return err
	}

	return s.Serve(ctx, l)
}

func (s *Server) Root() string {
	return s.config.Root
}

// URL is the announced base URL. It reflects the bound port once Listen
// succeeded.
func (s *Server) URL() string {
	host := s.config.Host

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}

	port := s.config.Port

	if s.addr != nil {
		port = s.addr.Port
	}

	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/"
}

func (s *Server) EntryURL() string {
	return s.URL() + s.config.Entry
}
