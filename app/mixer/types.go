package mixer

import (
	"fmt"
)

// ErrorKind says at which stage a source feed failed.
type ErrorKind string

const (
	// ErrorKindTransport covers network and HTTP failures: the document
	// never arrived.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindParse covers documents that arrived but could not be
	// understood as a feed.
	ErrorKindParse ErrorKind = "parse"
)

// FetchError records why a single source contributed no entries. Failures
// are isolated per source; one broken URL never fails the mix.
type FetchError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s error for %s: %v", e.Kind, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
