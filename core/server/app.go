package server

import (
	"siteserve/core/logger"
	"siteserve/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the Fiber application: ray id tagging, request logging,
// and the static handler over root. The static handler keeps Fiber's
// default behavior: index.html lookup, content type by extension,
// directory listing, 404 on miss.
func NewApp(root string, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Static("/", root, fiber.Static{
		Browse: true,
		Index:  "index.html",
	})

	return app
}
