package repository

import (
	"log"
	"sync"

	"github.com/ahmednasr/triage-assist/server/internal/models"
)

// CorpusStore holds the guide and ticket collections in memory.
//
// Appends are copy‑on‑write: a new backing array is built and swapped in under
// the write lock, so a Snapshot taken before the swap keeps seeing the old
// collections in full and never a half‑appended batch.
type CorpusStore struct {
	mu      sync.RWMutex
	guides  []models.Guide
	tickets []models.Ticket
}

// Snapshot is a read‑only view of both collections at one instant.
// Callers must not modify the slices.
type Snapshot struct {
	Guides  []models.Guide
	Tickets []models.Ticket
}

// NewCorpusStore returns a store pre‑loaded with the given records, in order.
func NewCorpusStore(guides []models.Guide, tickets []models.Ticket) *CorpusStore {
	s := &CorpusStore{}
	s.Append(guides, tickets)
	return s
}

// Snapshot returns the current collections.
func (s *CorpusStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Guides: s.guides, Tickets: s.tickets}
}

// Append adds records to the end of each collection in the order given and
// returns the new totals. Records are stored as‑is; ids are not deduplicated.
func (s *CorpusStore) Append(guides []models.Guide, tickets []models.Ticket) models.IngestTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(guides) > 0 {
		next := make([]models.Guide, 0, len(s.guides)+len(guides))
		next = append(next, s.guides...)
		s.guides = append(next, guides...)
	}
	if len(tickets) > 0 {
		next := make([]models.Ticket, 0, len(s.tickets)+len(tickets))
		next = append(next, s.tickets...)
		s.tickets = append(next, tickets...)
	}

	if len(guides) > 0 || len(tickets) > 0 {
		log.Printf("[Corpus Store] Appended %d guides, %d tickets (totals: %d guides, %d tickets)",
			len(guides), len(tickets), len(s.guides), len(s.tickets))
	}
	return models.IngestTotals{Guides: len(s.guides), Tickets: len(s.tickets)}
}

// Totals returns the current collection sizes.
func (s *CorpusStore) Totals() models.IngestTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.IngestTotals{Guides: len(s.guides), Tickets: len(s.tickets)}
}
