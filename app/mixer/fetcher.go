package mixer

import (
	"context"
	"log/slog"

	"github.com/bemnlam/feedmixer/app/feed"
)

// FetchFunc retrieves the raw document at url, reporting whether it was
// served from the cache. cache.Client.GetOrFetch satisfies this.
type FetchFunc func(ctx context.Context, url string) (string, bool, error)

// SourceFetcher turns one source URL into its kept entries: fetch the
// document, parse it, keep the newest numKeep entries and backfill missing
// authors from the feed-level author.
type SourceFetcher struct {
	fetch    FetchFunc
	parser   *feed.Parser
	selector *feed.Selector
}

func NewSourceFetcher(fetch FetchFunc) *SourceFetcher {
	return &SourceFetcher{
		fetch:    fetch,
		parser:   feed.NewParser(),
		selector: feed.NewSelector(),
	}
}

// Run returns the kept entries of the source at url. A well-formed feed
// with zero entries yields an empty slice and no error. Failures come back
// as a *FetchError tagged with the stage that broke.
func (f *SourceFetcher) Run(ctx context.Context, url string, numKeep int) ([]feed.Entry, error) {
	content, fromCache, err := f.fetch(ctx, url)
	if err != nil {
		return nil, &FetchError{Kind: ErrorKindTransport, URL: url, Err: err}
	}

	meta, entries, err := f.parser.Run([]byte(content))
	if err != nil {
		return nil, &FetchError{Kind: ErrorKindParse, URL: url, Err: err}
	}

	kept := f.selector.Run(meta, entries, numKeep)

	slog.Debug("Fetched source", "url", url, "entries", len(entries), "kept", len(kept), "from_cache", fromCache)

	return kept, nil
}
