// Command triage runs a single query against the built‑in corpus and prints
// the recommendation as JSON. Handy for checking matching without the server.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/ahmednasr/triage-assist/server/internal/repository"
	"github.com/ahmednasr/triage-assist/server/internal/service"
)

func main() {
	query := "vpn"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	store := repository.NewCorpusStore(repository.DefaultGuides(), repository.DefaultTickets())
	svc, err := service.NewTriageService(store)
	if err != nil {
		log.Fatalf("init triage service: %v", err)
	}

	res, err := svc.Query(context.Background(), query)
	if err != nil {
		log.Fatalf("query %q: %v", query, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}
