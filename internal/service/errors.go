package service

import "errors"

// ErrInvalidQuery is returned when a query is empty or only whitespace.
var ErrInvalidQuery = errors.New("query is required")

// ErrCorpusRequired is returned when a TriageService is built without a store.
var ErrCorpusRequired = errors.New("corpus store required")
