package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	DefaultIndex = "index.html"
	DefaultEntry = "demo-working.html"
)

type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string
	Port int

	// Root is the absolute base directory. It is read once by New.
	Root string

	Index string
	Entry string

	// Extensions are tried in order for paths without one, e.g. html for /page.
	Extensions []string

	SPA      bool
	Isolate  bool
	NoCache  bool
	CORS     bool
	Compress bool

	Logger *slog.Logger
}

func (c *Config) setDefaults() {
	if c.Index == "" {
		c.Index = DefaultIndex
	}

	if c.Entry == "" {
		c.Entry = DefaultEntry
	}

	extensions := make([]string, 0, len(c.Extensions))

	for _, ext := range c.Extensions {
		extensions = append(extensions, strings.TrimPrefix(ext, "."))
	}

	c.Extensions = extensions

	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

func (c *Config) Validate() error {
	var result error

	if c.Port < 0 || c.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %d out of range", c.Port))
	}

	if c.Root == "" {
		result = multierror.Append(result, errors.New("root directory missing"))
	} else if info, err := os.Stat(c.Root); err != nil {
		result = multierror.Append(result, fmt.Errorf("root directory: %w", err))
	} else if !info.IsDir() {
		result = multierror.Append(result, fmt.Errorf("root %s is not a directory", c.Root))
	}

	if strings.ContainsAny(c.Index, `/\`) {
		result = multierror.Append(result, fmt.Errorf("index %q must be a file name", c.Index))
	}

	for _, ext := range c.Extensions {
		if ext == "" || strings.ContainsAny(ext, `/\.`) {
			result = multierror.Append(result, fmt.Errorf("invalid extension %q", ext))
		}
	}

	return result
}
