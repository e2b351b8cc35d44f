package models

// Guide is a remediation runbook. Guides are never edited once stored.
type Guide struct {
	ID    string `bson:"id"    json:"id"`
	Title string `bson:"title" json:"title"`
	Body  string `bson:"body"  json:"body"` // free‑text remediation steps
}

// Ticket is a historical incident together with how (and whether) it was fixed.
type Ticket struct {
	ID               string `bson:"id"                 json:"id"`
	Summary          string `bson:"summary"            json:"summary"`
	Resolution       string `bson:"resolution"         json:"resolution"`
	Success          bool   `bson:"success"            json:"success"`
	MinutesToResolve int    `bson:"minutes_to_resolve" json:"minutesToResolve"`
}

// IngestTotals reports collection sizes after an ingest.
type IngestTotals struct {
	Guides  int `json:"guides"`
	Tickets int `json:"tickets"`
}
