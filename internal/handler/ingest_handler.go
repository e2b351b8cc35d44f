package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/triage-assist/server/internal/models"
	"github.com/ahmednasr/triage-assist/server/internal/service"
)

// IngestHandler wires HTTP → TriageService.Ingest.
type IngestHandler struct {
	svc service.TriageService
}

// NewIngestHandler creates an IngestHandler instance.
func NewIngestHandler(svc service.TriageService) *IngestHandler {
	return &IngestHandler{svc: svc}
}

// Register mounts POST /ingest on the given router group.
func (h *IngestHandler) Register(r fiber.Router) {
	r.Post("/ingest", h.ingest)
}

// ingest handles POST /ingest  { "guides": [...], "tickets": [...] }
// Records are appended as sent; an empty body appends nothing.
func (h *IngestHandler) ingest(c *fiber.Ctx) error {
	var req models.IngestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, msgInvalidJSON)
		}
	}

	totals := h.svc.Ingest(c.UserContext(), req.Guides, req.Tickets)
	return c.JSON(models.IngestResponse{OK: true, Totals: totals})
}
