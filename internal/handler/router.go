package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/triage-assist/server/internal/service"
)

// RegisterRoutes mounts the triage API under /api. Unknown /api routes get 404
// so they never fall through to static file serving.
func RegisterRoutes(app *fiber.App, triageSvc service.TriageService) {
	api := app.Group("/api")
	NewSearchHandler(triageSvc).Register(api)
	NewIngestHandler(triageSvc).Register(api)
	NewCorpusHandler(triageSvc).Register(api)

	api.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}

// RegisterStatic serves the browser UI from dir. It must be called after
// RegisterRoutes.
func RegisterStatic(app *fiber.App, dir string) {
	if dir == "" {
		return
	}
	app.Static("/", dir, fiber.Static{Index: "index.html"})
}
