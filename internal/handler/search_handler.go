package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/triage-assist/server/internal/models"
	"github.com/ahmednasr/triage-assist/server/internal/service"
)

// SearchHandler wires HTTP → TriageService.Query.
type SearchHandler struct {
	svc service.TriageService
}

// NewSearchHandler returns a handler instance.
func NewSearchHandler(svc service.TriageService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Register mounts POST /search on the given router group.
func (h *SearchHandler) Register(r fiber.Router) {
	r.Post("/search", h.search)
}

// search handles POST /search  { "query": "..." }
func (h *SearchHandler) search(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, msgInvalidJSON)
	}

	// Whitespace-only counts as missing; the raw text is still what gets echoed.
	trimmed := req
	trimmed.Query = strings.TrimSpace(req.Query)
	if err := validateStruct(trimmed); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := h.svc.Query(c.UserContext(), req.Query)
	if errors.Is(err, service.ErrInvalidQuery) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(res)
}
