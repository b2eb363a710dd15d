package feed

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONGenerator serializes normalized records as a JSON array. Each record
// becomes an object whose keys are emitted in lexicographic order (maps
// marshal with sorted keys) and whose timestamps are RFC 3339 text, so the
// output is reproducible byte for byte.
type JSONGenerator struct{}

func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{}
}

func (g *JSONGenerator) Run(records []Record) (string, error) {
	objects := make([]map[string]any, 0, len(records))
	for _, record := range records {
		objects = append(objects, g.recordObject(record))
	}

	data, err := json.Marshal(objects)
	if err != nil {
		return "", fmt.Errorf("failed to marshal records: %w", err)
	}

	return string(data), nil
}

func (g *JSONGenerator) recordObject(record Record) map[string]any {
	object := map[string]any{
		"title":       record.Title,
		"link":        record.Link,
		"description": record.Description,
	}

	if record.Author != nil {
		object["author_name"] = record.Author.Name
		object["author_email"] = record.Author.Email
		object["author_link"] = record.Author.Link
	}

	if record.PublishedAt != nil {
		object["pubdate"] = record.PublishedAt.UTC().Format(time.RFC3339)
	}
	if record.UpdatedAt != nil {
		object["updateddate"] = record.UpdatedAt.UTC().Format(time.RFC3339)
	}

	if record.Comments != "" {
		object["comments"] = record.Comments
	}
	if record.GUID != "" {
		object["unique_id"] = record.GUID
	}
	if record.Copyright != "" {
		object["item_copyright"] = record.Copyright
	}

	if len(record.Categories) > 0 {
		object["categories"] = record.Categories
	}

	if len(record.Enclosures) > 0 {
		enclosures := make([]map[string]any, 0, len(record.Enclosures))
		for _, enclosure := range record.Enclosures {
			enclosures = append(enclosures, map[string]any{
				"href":   enclosure.URL,
				"length": enclosure.Length,
				"type":   enclosure.Type,
			})
		}
		object["enclosures"] = enclosures
	}

	return object
}
