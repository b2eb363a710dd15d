package mixer

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/bemnlam/feedmixer/app/feed"
)

// Coordinator fetches every source concurrently with a bounded number of
// in-flight fetches. Results are collected per source position, so the
// concatenated output order is deterministic regardless of completion
// order.
type Coordinator struct {
	fetcher    *SourceFetcher
	maxThreads int
}

func NewCoordinator(fetcher *SourceFetcher, maxThreads int) *Coordinator {
	if maxThreads < 1 {
		maxThreads = 1
	}
	return &Coordinator{
		fetcher:    fetcher,
		maxThreads: maxThreads,
	}
}

// Run fetches all urls and returns the concatenation of their kept entries
// in source list order, each entry stamped with its source position. Failed
// sources contribute no entries and are reported in the returned map keyed
// by URL; they never fail the run.
func (c *Coordinator) Run(ctx context.Context, urls []string, numKeep int) ([]feed.Entry, map[string]*FetchError) {
	results := make([][]feed.Entry, len(urls))
	failures := make([]*FetchError, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxThreads)

	for i, url := range urls {
		g.Go(func() error {
			entries, err := c.fetcher.Run(ctx, url, numKeep)
			if err != nil {
				var fetchErr *FetchError
				if fe, ok := err.(*FetchError); ok {
					fetchErr = fe
				} else {
					fetchErr = &FetchError{Kind: ErrorKindTransport, URL: url, Err: err}
				}
				slog.Warn("Source failed", "url", url, "kind", fetchErr.Kind, "error", fetchErr.Err)
				failures[i] = fetchErr
				return nil
			}

			for j := range entries {
				entries[j].SourceIndex = i
			}
			results[i] = entries
			return nil
		})
	}

	// Workers only record into their own slot and never return an error
	g.Wait()

	var entries []feed.Entry
	errorURLs := make(map[string]*FetchError)
	for i := range urls {
		entries = append(entries, results[i]...)
		if failures[i] != nil {
			errorURLs[urls[i]] = failures[i]
		}
	}

	return entries, errorURLs
}
