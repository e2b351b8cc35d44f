package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/triage-assist/server/internal/service"
)

// CorpusHandler exposes read‑only corpus information.
type CorpusHandler struct {
	svc service.TriageService
}

func NewCorpusHandler(svc service.TriageService) *CorpusHandler {
	return &CorpusHandler{svc: svc}
}

func (h *CorpusHandler) Register(r fiber.Router) {
	r.Get("/corpus/stats", h.stats)
}

// stats handles GET /corpus/stats
func (h *CorpusHandler) stats(c *fiber.Ctx) error {
	return c.JSON(h.svc.Totals(c.UserContext()))
}
