package feed

import (
	"github.com/bemnlam/feedmixer/app/config"
)

// Selector keeps the newest entries of a single source. The parser returns
// entries most-recent-first, so selection is a prefix slice; entries are not
// re-sorted within a source.
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

// Run returns the first numKeep entries (all of them when numKeep is the
// unlimited sentinel) and backfills each kept entry lacking an author with
// the feed-level author. An entry that names its own author is never
// overwritten.
func (s *Selector) Run(meta *Meta, entries []Entry, numKeep int) []Entry {
	kept := entries
	if numKeep != config.UnlimitedKeep && numKeep < len(entries) {
		kept = entries[:numKeep]
	}

	if meta == nil || meta.Author == nil {
		return kept
	}

	for i := range kept {
		if kept[i].Author == nil {
			kept[i].Author = meta.Author
		}
	}

	return kept
}
