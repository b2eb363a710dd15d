package feed

import (
	"time"
)

// Parsed feed types

// Author identifies the person behind a feed or an entry.
type Author struct {
	Name  string
	Email string
	Link  string
}

// Enclosure is an attached media resource (podcast audio, images, etc).
type Enclosure struct {
	URL    string
	Length int64
	Type   string
}

// Meta carries feed-level metadata. The feed author is used to backfill
// entries that do not name their own author.
type Meta struct {
	Title       string
	Link        string
	Description string
	Author      *Author
}

// Entry is one item parsed from a single source feed. Immutable after the
// parser produces it, except for the author backfill done by the Selector.
type Entry struct {
	Title       string
	Link        string
	Description string
	Author      *Author
	PublishedAt *time.Time
	UpdatedAt   *time.Time
	GUID        string
	Comments    string
	Copyright   string
	Categories  []string
	Enclosures  []Enclosure

	// SourceIndex is the position of the originating feed URL in the
	// configured source list. It keeps the merged order deterministic for
	// entries with equal or missing publication timestamps.
	SourceIndex int
}

// Record is the renderer-facing form of Entry: title, link and description
// are always present (possibly empty), every other field is optional.
type Record struct {
	Title       string
	Link        string
	Description string
	Author      *Author
	PublishedAt *time.Time
	UpdatedAt   *time.Time
	GUID        string
	Comments    string
	Copyright   string
	Categories  []string
	Enclosures  []Enclosure
}
