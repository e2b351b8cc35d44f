package service

import (
	"math"

	"github.com/ahmednasr/triage-assist/server/internal/models"
)

// Fallbacks used when nothing matched. Clients compare against these strings.
const (
	NoRunbookGuidance       = "No matching runbook found. Escalate to tier-2."
	GenericEscalationAction = "Collect logs, check endpoint policy, and open incident for review."
	FallbackConfidence      = 0.42
)

// Confidence grows with the number of matched tickets up to this ceiling.
const (
	baseConfidence      = 0.5
	confidencePerTicket = 0.1
	maxConfidence       = 0.95
	maxSimilarTickets   = 3
)

// Assemble builds the recommendation for query from already matched records.
// guides and tickets must be in corpus order; the first of each wins.
func Assemble(query string, guides []models.Guide, tickets []models.Ticket) models.QueryResult {
	res := models.QueryResult{
		Query:              query,
		CompressedGuidance: NoRunbookGuidance,
		SimilarTickets:     []models.Ticket{},
		Confidence:         FallbackConfidence,
		RecommendedAction:  GenericEscalationAction,
	}

	if len(guides) > 0 {
		res.CompressedGuidance = Compress(guides[0].Body, GuidanceMaxLength)
	}

	if len(tickets) == 0 {
		return res
	}

	n := min(len(tickets), maxSimilarTickets)
	res.SimilarTickets = append(res.SimilarTickets, tickets[:n]...)
	res.AvgMinutesToResolve = averageSuccessMinutes(tickets)
	res.Confidence = ticketConfidence(len(tickets))
	res.RecommendedAction = Compress(tickets[0].Resolution, ActionMaxLength)

	return res
}

// averageSuccessMinutes averages over every successful ticket passed in, not
// only the ones shown as similar. Halves round up.
func averageSuccessMinutes(tickets []models.Ticket) *int {
	var sum, count int
	for _, t := range tickets {
		if t.Success {
			sum += t.MinutesToResolve
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := int(math.Floor(float64(sum)/float64(count) + 0.5))
	return &avg
}

func ticketConfidence(matched int) float64 {
	if matched == 0 {
		return FallbackConfidence
	}
	return math.Min(baseConfidence+confidencePerTicket*float64(matched), maxConfidence)
}
