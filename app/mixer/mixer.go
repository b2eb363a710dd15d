package mixer

import (
	"context"
	"sync"

	"github.com/bemnlam/feedmixer/app/config"
	"github.com/bemnlam/feedmixer/app/feed"
)

// Mixer combines entries from a set of source feeds into one chronological
// list and renders it as Atom, RSS or JSON. The mix is computed lazily on
// first access and memoized; changing the source list or the per-source
// keep count discards the memoized result, changing only the output
// metadata (title, link, description) does not.
//
// Safe for concurrent use.
type Mixer struct {
	mu sync.Mutex

	cfg         config.MixerConfig
	coordinator *Coordinator
	merger      *feed.Merger
	normalizer  *feed.Normalizer

	populated bool
	records   []feed.Record
	errorURLs map[string]*FetchError
}

func New(cfg *config.MixerConfig, fetch FetchFunc) *Mixer {
	applied := *cfg
	applied.Feeds = append([]string(nil), cfg.Feeds...)
	if applied.MaxFeeds > 0 && len(applied.Feeds) > applied.MaxFeeds {
		applied.Feeds = applied.Feeds[:applied.MaxFeeds]
	}

	return &Mixer{
		cfg:         applied,
		coordinator: NewCoordinator(NewSourceFetcher(fetch), applied.MaxThreads),
		merger:      feed.NewMerger(),
		normalizer:  feed.NewNormalizer(),
	}
}

// ensureComputed runs the fetch/merge/normalize pipeline once and caches
// the result until the source list or keep count changes. Callers hold mu.
func (m *Mixer) ensureComputed(ctx context.Context) {
	if m.populated {
		return
	}

	entries, errorURLs := m.coordinator.Run(ctx, m.cfg.Feeds, m.cfg.NumKeep)
	merged := m.merger.Run(entries)

	m.records = m.normalizer.Run(merged)
	m.errorURLs = errorURLs
	m.populated = true
}

// MixedEntries returns the merged, normalized entries of all sources,
// newest first. Sources that failed are skipped; see ErrorURLs.
func (m *Mixer) MixedEntries(ctx context.Context) []feed.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureComputed(ctx)
	return m.records
}

// ErrorURLs reports the sources that failed during the most recent mix,
// keyed by URL. Empty before the first mix and after every fully successful
// one.
func (m *Mixer) ErrorURLs() map[string]*FetchError {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]*FetchError, len(m.errorURLs))
	for url, err := range m.errorURLs {
		out[url] = err
	}
	return out
}

func (m *Mixer) Feeds() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.cfg.Feeds...)
}

// SetFeeds replaces the source list (truncated to the configured maximum)
// and discards the memoized mix and error report.
func (m *Mixer) SetFeeds(feeds []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	applied := append([]string(nil), feeds...)
	if m.cfg.MaxFeeds > 0 && len(applied) > m.cfg.MaxFeeds {
		applied = applied[:m.cfg.MaxFeeds]
	}

	m.cfg.Feeds = applied
	m.invalidate()
}

func (m *Mixer) NumKeep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cfg.NumKeep
}

// SetNumKeep changes the per-source keep count and discards the memoized
// mix and error report.
func (m *Mixer) SetNumKeep(numKeep int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg.NumKeep = numKeep
	m.invalidate()
}

func (m *Mixer) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cfg.Title
}

func (m *Mixer) SetTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg.Title = title
}

func (m *Mixer) Link() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cfg.Link
}

func (m *Mixer) SetLink(link string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg.Link = link
}

func (m *Mixer) Description() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cfg.Description
}

func (m *Mixer) SetDescription(description string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg.Description = description
}

// AtomFeed renders the mix as an Atom 1.0 document.
func (m *Mixer) AtomFeed(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureComputed(ctx)
	return feed.NewAtomGenerator().Run(&m.cfg, m.records)
}

// RSSFeed renders the mix as an RSS 2.0 document.
func (m *Mixer) RSSFeed(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureComputed(ctx)
	return feed.NewRSSGenerator().Run(&m.cfg, m.records)
}

// JSONFeed renders the mix as a JSON array of entry objects.
func (m *Mixer) JSONFeed(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureComputed(ctx)
	return feed.NewJSONGenerator().Run(m.records)
}

func (m *Mixer) invalidate() {
	m.populated = false
	m.records = nil
	m.errorURLs = nil
}
