package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()

		if err != nil {
			status = fiber.StatusInternalServerError

			var e *fiber.Error

			if errors.As(err, &e) {
				status = e.Code
			}
		}

		logger.Debug("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		)

		return err
	}
}

// isolationHeaders enables cross-origin isolation, which browsers require
// before exposing SharedArrayBuffer to pages.
func isolationHeaders(c *fiber.Ctx) error {
	err := c.Next()

	c.Set("Cross-Origin-Opener-Policy", "same-origin")
	c.Set("Cross-Origin-Embedder-Policy", "require-corp")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "SAMEORIGIN")

	return err
}

func noCache(c *fiber.Ctx) error {
	err := c.Next()

	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")

	return err
}
