package service

import (
	"strings"

	"github.com/ahmednasr/triage-assist/server/internal/models"
	"github.com/ahmednasr/triage-assist/server/internal/repository"
)

// Search returns the guides and tickets whose text contains the normalized
// query, in corpus order.
//
// Guides are checked against title and body, tickets against summary and
// resolution. An empty query is a substring of everything and so matches every
// record; callers reject blank queries before getting here.
func Search(corpus repository.Snapshot, query string) ([]models.Guide, []models.Ticket) {
	q := Normalize(query)

	var guides []models.Guide
	for _, g := range corpus.Guides {
		if contains(g.Title, q) || contains(g.Body, q) {
			guides = append(guides, g)
		}
	}

	var tickets []models.Ticket
	for _, t := range corpus.Tickets {
		if contains(t.Summary, q) || contains(t.Resolution, q) {
			tickets = append(tickets, t)
		}
	}

	return guides, tickets
}

func contains(field, normalizedQuery string) bool {
	return strings.Contains(Normalize(field), normalizedQuery)
}
