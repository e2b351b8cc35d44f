// Package middleware holds the Fiber middleware shared by every route.
package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Logging writes one access line per request to stdout.
func Logging() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} ${status} ${method} ${path} ${latency}\n",
		TimeFormat: "2006/01/02 15:04:05",
		Output:     os.Stdout,
	})
}

// Recover turns handler panics into 500 responses instead of killing the server.
func Recover() fiber.Handler {
	return recover.New()
}
