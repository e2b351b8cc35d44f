package service

import (
	"context"
	"log"
	"strings"

	"github.com/ahmednasr/triage-assist/server/internal/models"
	"github.com/ahmednasr/triage-assist/server/internal/repository"
)

// ---- Repository contract ---------------------------------------------------

// CorpusRepository is the in‑memory guide/ticket store the service reads and
// appends to. *repository.CorpusStore satisfies it.
type CorpusRepository interface {
	Snapshot() repository.Snapshot
	Append(guides []models.Guide, tickets []models.Ticket) models.IngestTotals
	Totals() models.IngestTotals
}

// ---- Service interface + implementation ------------------------------------

// TriageService answers support queries against the corpus and accepts new
// records into it.
type TriageService interface {
	// Query matches text against the corpus and assembles a recommendation.
	// Blank text yields ErrInvalidQuery.
	Query(ctx context.Context, text string) (models.QueryResult, error)
	// Ingest appends records in the order given and returns the new totals.
	Ingest(ctx context.Context, guides []models.Guide, tickets []models.Ticket) models.IngestTotals
	// Totals reports the current collection sizes.
	Totals(ctx context.Context) models.IngestTotals
}

type triageService struct {
	corpus CorpusRepository
}

// NewTriageService wires the corpus store.
func NewTriageService(corpus CorpusRepository) (TriageService, error) {
	if corpus == nil {
		return nil, ErrCorpusRequired
	}
	return &triageService{corpus: corpus}, nil
}

// Query runs Search over a single corpus snapshot and hands the matches to
// Assemble.
func (s *triageService) Query(ctx context.Context, text string) (models.QueryResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.QueryResult{}, ErrInvalidQuery
	}

	guides, tickets := Search(s.corpus.Snapshot(), text)
	log.Printf("[Triage Service] Query %q matched %d guides, %d tickets", text, len(guides), len(tickets))

	return Assemble(text, guides, tickets), nil
}

// Ingest appends records without validating their shape.
func (s *triageService) Ingest(ctx context.Context, guides []models.Guide, tickets []models.Ticket) models.IngestTotals {
	return s.corpus.Append(guides, tickets)
}

func (s *triageService) Totals(ctx context.Context) models.IngestTotals {
	return s.corpus.Totals()
}
