package feed

// Normalizer maps parsed entries into the fixed-shape records the
// generators consume. The mapping is pure and total: it performs no I/O,
// never fails, and never mutates its input. Mandatory fields (title, link,
// description) come out as empty strings rather than being absent.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) Run(entries []Entry) []Record {
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, n.normalize(entry))
	}
	return records
}

func (n *Normalizer) normalize(entry Entry) Record {
	record := Record{
		Title:       entry.Title,
		Link:        entry.Link,
		Description: entry.Description,
		GUID:        entry.GUID,
		Comments:    entry.Comments,
		Copyright:   entry.Copyright,
		PublishedAt: entry.PublishedAt,
		UpdatedAt:   entry.UpdatedAt,
	}

	if entry.Author != nil {
		author := *entry.Author
		record.Author = &author
	}

	if len(entry.Categories) > 0 {
		record.Categories = append([]string(nil), entry.Categories...)
	}

	if len(entry.Enclosures) > 0 {
		record.Enclosures = append([]Enclosure(nil), entry.Enclosures...)
	}

	return record
}
