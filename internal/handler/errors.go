package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// msgInvalidJSON is the message clients see for unparsable bodies.
const msgInvalidJSON = "Invalid JSON"

// ErrorHandler renders every error as {"ok": false, "error": "..."}.
// Pass it as fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("[Handler] %s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"ok":    false,
		"error": err.Error(),
	})
}
