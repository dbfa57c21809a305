package server

import (
	"path/filepath"

	"github.com/Kyz7/albums/internal/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// NewStatic builds the standalone asset server. "/" always answers with
// the index document.
func NewStatic(dir string, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.RequestLogger(logger))

	index := filepath.Join(dir, "index.html")
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(index)
	})
	app.Static("/", dir)

	return app
}
