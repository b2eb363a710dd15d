package cache

import (
	"time"
)

// Entry is one cached fetch result keyed by source URL.
type Entry struct {
	URL       string
	Body      string
	FetchedAt time.Time
}

// Store persists raw fetched feed documents. Implementations must be safe
// for concurrent use: every fetch worker of a pipeline run goes through the
// same store.
type Store interface {
	// Get returns the stored entry for url, or nil when none exists.
	Get(url string) (*Entry, error)
	Set(url string, body string, fetchedAt time.Time) error
	Delete(url string) error
	Close() error
}
