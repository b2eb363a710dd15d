package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"
)

// leapSecondRe matches a seconds field of 60 inside a timestamp. A leap
// second is not representable as a time.Time, so it is clamped to :59.
var leapSecondRe = regexp.MustCompile(`(\d{1,2}:\d{2}):60`)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses a raw feed document into feed-level metadata and entries in
// document order. An empty or malformed document is a parse failure; a
// well-formed feed with zero entries is not.
func (p *Parser) Run(data []byte) (*Meta, []Entry, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("empty feed document")
	}

	parsedFeed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	meta := &Meta{
		Title:       parsedFeed.Title,
		Link:        parsedFeed.Link,
		Description: parsedFeed.Description,
		Author:      extractAuthor(parsedFeed.Authors, parsedFeed.Author),
	}

	entries := make([]Entry, 0, len(parsedFeed.Items))
	for _, item := range parsedFeed.Items {
		entries = append(entries, p.normalizeItem(item))
	}

	return meta, entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Entry {
	entry := Entry{
		Title:       item.Title,
		Link:        item.Link,
		Description: cmp.Or(item.Description, item.Content),
		Author:      extractAuthor(item.Authors, item.Author),
		GUID:        item.GUID,
		PublishedAt: parseTime(item.PublishedParsed, item.Published),
		UpdatedAt:   parseTime(item.UpdatedParsed, item.Updated),
	}

	if item.Categories != nil {
		entry.Categories = item.Categories
	}

	for _, enclosure := range item.Enclosures {
		if enclosure == nil || enclosure.URL == "" {
			continue
		}
		normalized := Enclosure{
			URL:  enclosure.URL,
			Type: enclosure.Type,
		}
		if enclosure.Length != "" {
			if length, err := strconv.ParseInt(enclosure.Length, 10, 64); err == nil {
				normalized.Length = length
			}
		}
		entry.Enclosures = append(entry.Enclosures, normalized)
	}

	if ext, ok := item.Custom["comments"]; ok {
		entry.Comments = ext
	}
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Rights) > 0 {
		entry.Copyright = item.DublinCoreExt.Rights[0]
	} else if ext, ok := item.Custom["copyright"]; ok {
		entry.Copyright = ext
	}

	return entry
}

// parseTime prefers the timestamp gofeed already parsed and falls back to
// the raw date string, clamping a leap-second value of :60 to :59 so the
// instant stays representable.
func parseTime(parsed *time.Time, raw string) *time.Time {
	if parsed != nil {
		return parsed
	}
	if raw == "" {
		return nil
	}

	clamped := leapSecondRe.ReplaceAllString(raw, "${1}:59")
	t, err := dateparse.ParseAny(clamped)
	if err != nil {
		return nil
	}
	return &t
}

func extractAuthor(authors []*gofeed.Person, author *gofeed.Person) *Author {
	if len(authors) > 0 && authors[0] != nil {
		author = authors[0]
	}
	if author == nil {
		return nil
	}
	if author.Name == "" && author.Email == "" {
		return nil
	}
	return &Author{
		Name:  author.Name,
		Email: author.Email,
	}
}
