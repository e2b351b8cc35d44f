package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/ahmednasr/triage-assist/server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CorpusMongo reads seed records from the "guides" and "tickets" collections.
// It is only used at startup; ingested records are never written back.
type CorpusMongo struct {
	guideCol  *mongo.Collection
	ticketCol *mongo.Collection
}

// NewCorpusMongo wires the collections.
//
// Expected schema:
//
//	guides
//	  { id, title, body, seq }
//
//	tickets
//	  { id, summary, resolution, success, minutes_to_resolve, seq }
//
// seq is optional; when present it fixes the insertion order, otherwise
// natural (_id) order is used.
func NewCorpusMongo(db *mongo.Database) *CorpusMongo {
	return &CorpusMongo{
		guideCol:  db.Collection("guides"),
		ticketCol: db.Collection("tickets"),
	}
}

// LoadGuides returns every stored guide in insertion order.
func (r *CorpusMongo) LoadGuides(ctx context.Context) ([]models.Guide, error) {
	log.Printf("[Corpus Mongo] Loading guides from %s.%s", r.guideCol.Database().Name(), r.guideCol.Name())
	var guides []models.Guide
	if err := findAll(ctx, r.guideCol, &guides); err != nil {
		log.Printf("[Corpus Mongo] Error loading guides: %v", err)
		return nil, fmt.Errorf("load guides: %w", err)
	}
	log.Printf("[Corpus Mongo] Loaded %d guides", len(guides))
	return guides, nil
}

// LoadTickets returns every stored ticket in insertion order.
func (r *CorpusMongo) LoadTickets(ctx context.Context) ([]models.Ticket, error) {
	log.Printf("[Corpus Mongo] Loading tickets from %s.%s", r.ticketCol.Database().Name(), r.ticketCol.Name())
	var tickets []models.Ticket
	if err := findAll(ctx, r.ticketCol, &tickets); err != nil {
		log.Printf("[Corpus Mongo] Error loading tickets: %v", err)
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	log.Printf("[Corpus Mongo] Loaded %d tickets", len(tickets))
	return tickets, nil
}

func findAll(ctx context.Context, col *mongo.Collection, out any) error {
	opts := options.Find().SetSort(bson.D{
		{Key: "seq", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}
