package models

// SearchRequest is the payload for POST /api/search.
type SearchRequest struct {
	Query string `json:"query" validate:"required"` // free‑text support question
}

// IngestRequest is the payload for POST /api/ingest. Both lists are optional.
type IngestRequest struct {
	Guides  []Guide  `json:"guides"`
	Tickets []Ticket `json:"tickets"`
}

// IngestResponse wraps the totals returned by POST /api/ingest.
type IngestResponse struct {
	OK     bool         `json:"ok"`
	Totals IngestTotals `json:"totals"`
}

// QueryResult is the recommendation assembled for a single query.
// Field names are consumed by existing clients; do not rename them.
type QueryResult struct {
	Query               string   `json:"query"`
	CompressedGuidance  string   `json:"compressedGuidance"`
	SimilarTickets      []Ticket `json:"similarTickets"`
	AvgMinutesToResolve *int     `json:"avgMinutesToResolve"` // nil when no matched ticket succeeded
	Confidence          float64  `json:"confidence"`
	RecommendedAction   string   `json:"recommendedAction"`
}
