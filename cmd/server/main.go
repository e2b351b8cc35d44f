package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahmednasr/triage-assist/server/internal/config"
	"github.com/ahmednasr/triage-assist/server/internal/database"
	"github.com/ahmednasr/triage-assist/server/internal/handler"
	"github.com/ahmednasr/triage-assist/server/internal/middleware"
	"github.com/ahmednasr/triage-assist/server/internal/models"
	"github.com/ahmednasr/triage-assist/server/internal/repository"
	"github.com/ahmednasr/triage-assist/server/internal/service"
)

// main is the single entry‑point for the REST API.
func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Configuration loaded:")
	log.Printf("  - Port: %s", cfg.Port)
	log.Printf("  - Seed default corpus: %t", cfg.SeedDefaultCorpus)
	log.Printf("  - MongoDB seed: %t (db %s)", cfg.MongoURI != "", cfg.DBName)
	log.Printf("  - Static dir: %q", cfg.StaticDir)

	ctx := context.Background()

	// Connect to MongoDB only when a seed source is configured
	var seedClient *mongo.Client
	if cfg.MongoURI != "" {
		client, err := database.NewMongo(ctx, cfg.MongoURI, cfg.MongoTimeout)
		if err != nil {
			log.Fatalf("Failed to connect to seed MongoDB: %v", err)
		}
		defer client.Disconnect(context.Background())
		seedClient = client
		log.Printf("Connected to seed MongoDB")
	}

	// Build the corpus
	store, err := buildCorpus(ctx, cfg, seedClient)
	if err != nil {
		log.Fatalf("Failed to seed corpus: %v", err)
	}
	totals := store.Totals()
	log.Printf("Corpus ready: %d guides, %d tickets", totals.Guides, totals.Tickets)

	// Initialize services
	triageSvc, err := service.NewTriageService(store)
	if err != nil {
		log.Fatalf("Failed to initialize triage service: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: handler.ErrorHandler,
	})

	// Add middleware
	app.Use(middleware.Recover())
	app.Use(middleware.Logging())

	// Add health check
	handler.NewHealthHandler(seedClient).Register(app)

	// Register routes
	handler.RegisterRoutes(app, triageSvc)
	handler.RegisterStatic(app, cfg.StaticDir)

	// Start server
	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// buildCorpus loads the built‑in records first, then anything stored in Mongo.
func buildCorpus(ctx context.Context, cfg config.Config, seedClient *mongo.Client) (*repository.CorpusStore, error) {
	var guides []models.Guide
	var tickets []models.Ticket
	if cfg.SeedDefaultCorpus {
		guides = append(guides, repository.DefaultGuides()...)
		tickets = append(tickets, repository.DefaultTickets()...)
	}

	if seedClient != nil {
		ctx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
		defer cancel()

		seed := repository.NewCorpusMongo(seedClient.Database(cfg.DBName))
		storedGuides, err := seed.LoadGuides(ctx)
		if err != nil {
			return nil, err
		}
		storedTickets, err := seed.LoadTickets(ctx)
		if err != nil {
			return nil, err
		}
		guides = append(guides, storedGuides...)
		tickets = append(tickets, storedTickets...)
	}

	return repository.NewCorpusStore(guides, tickets), nil
}
