package feed

import (
	"sort"
)

// Merger orders the concatenated entries of all sources by publication
// timestamp, newest first. Entries without a publication timestamp sort
// after all dated entries. The sort is stable, so entries with equal (or
// missing) timestamps keep their source order: source list position first,
// document position within the source second.
type Merger struct{}

func NewMerger() *Merger {
	return &Merger{}
}

func (m *Merger) Run(entries []Entry) []Entry {
	merged := make([]Entry, len(entries))
	copy(merged, entries)

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i].PublishedAt, merged[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	return merged
}
