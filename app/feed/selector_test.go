package feed

import (
	"testing"

	"github.com/bemnlam/feedmixer/app/config"
)

func TestSelectorKeepsNewest(t *testing.T) {
	selector := NewSelector()

	entries := []Entry{
		{Title: "newest"},
		{Title: "middle"},
		{Title: "oldest"},
	}

	kept := selector.Run(&Meta{}, entries, 2)

	if len(kept) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(kept))
	}
	if kept[0].Title != "newest" || kept[1].Title != "middle" {
		t.Errorf("Expected the leading entries in parser order, got %v", kept)
	}
}

func TestSelectorUnlimited(t *testing.T) {
	selector := NewSelector()

	entries := []Entry{
		{Title: "a"},
		{Title: "b"},
		{Title: "c"},
	}

	kept := selector.Run(&Meta{}, entries, config.UnlimitedKeep)

	if len(kept) != 3 {
		t.Errorf("Expected all 3 entries in unlimited mode, got %d", len(kept))
	}
}

func TestSelectorKeepCountExceedsEntries(t *testing.T) {
	selector := NewSelector()

	entries := []Entry{{Title: "only"}}

	kept := selector.Run(&Meta{}, entries, 5)

	if len(kept) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(kept))
	}
}

func TestSelectorBackfillsAuthor(t *testing.T) {
	selector := NewSelector()

	feedAuthor := &Author{Name: "Feed Author", Email: "feed@example.com"}
	ownAuthor := &Author{Name: "Entry Author"}

	entries := []Entry{
		{Title: "no author"},
		{Title: "own author", Author: ownAuthor},
	}

	kept := selector.Run(&Meta{Author: feedAuthor}, entries, config.UnlimitedKeep)

	if kept[0].Author == nil || kept[0].Author.Name != "Feed Author" {
		t.Errorf("Expected feed-level author backfilled, got %+v", kept[0].Author)
	}

	// An entry's own author is never overwritten
	if kept[1].Author.Name != "Entry Author" {
		t.Errorf("Expected entry author preserved, got %+v", kept[1].Author)
	}
}

func TestSelectorNoFeedAuthor(t *testing.T) {
	selector := NewSelector()

	entries := []Entry{{Title: "no author"}}

	kept := selector.Run(&Meta{}, entries, config.UnlimitedKeep)

	if kept[0].Author != nil {
		t.Errorf("Expected author to remain absent, got %+v", kept[0].Author)
	}
}
