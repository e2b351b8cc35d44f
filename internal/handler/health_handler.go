package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	seedDB *mongo.Client
}

// NewHealthHandler takes the Mongo client the corpus was seeded from; nil when
// the server runs on the built‑in corpus only.
func NewHealthHandler(seedDB *mongo.Client) *HealthHandler {
	return &HealthHandler{seedDB: seedDB}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	status := fiber.Map{
		"status": "ok",
		"dbs": fiber.Map{
			"seed": h.checkDB(c.UserContext(), h.seedDB),
		},
	}

	return c.JSON(status)
}

func (h *HealthHandler) checkDB(ctx context.Context, client *mongo.Client) string {
	if client == nil {
		return "not_configured"
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return "error"
	}
	return "connected"
}
