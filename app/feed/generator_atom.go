package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"time"

	"github.com/bemnlam/feedmixer/app/config"
)

// AtomGenerator serializes normalized records as an Atom 1.0 document.
type AtomGenerator struct{}

func NewAtomGenerator() *AtomGenerator {
	return &AtomGenerator{}
}

func (g *AtomGenerator) Run(mixerConfig *config.MixerConfig, records []Record) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n")

	writeElement(&buf, "title", mixerConfig.Title, 2)
	if mixerConfig.Link != "" {
		buf.WriteString(fmt.Sprintf("  <link href=\"%s\" rel=\"alternate\" />\n",
			escapeAttr(mixerConfig.Link)))
	}
	writeElement(&buf, "id", cmp.Or(mixerConfig.Link, "urn:feedmixer"), 2)
	writeElement(&buf, "updated", newestTimestamp(records).Format(time.RFC3339), 2)
	writeElement(&buf, "subtitle", mixerConfig.Description, 2)

	for _, record := range records {
		g.writeEntry(&buf, record)
	}

	buf.WriteString("</feed>")

	return buf.String(), nil
}

func (g *AtomGenerator) writeEntry(buf *bytes.Buffer, record Record) {
	buf.WriteString("  <entry>\n")

	writeElement(buf, "title", record.Title, 4)

	if record.Link != "" {
		buf.WriteString(fmt.Sprintf("    <link href=\"%s\" rel=\"alternate\" />\n",
			escapeAttr(record.Link)))
	}

	// Atom requires an id; fall back to the entry link
	writeElement(buf, "id", cmp.Or(record.GUID, record.Link), 4)

	if record.PublishedAt != nil {
		writeElement(buf, "published", record.PublishedAt.Format(time.RFC3339), 4)
	}

	// Atom requires updated; fall back to published
	if updated := cmp.Or(record.UpdatedAt, record.PublishedAt); updated != nil {
		writeElement(buf, "updated", updated.Format(time.RFC3339), 4)
	}

	if record.Author != nil {
		buf.WriteString("    <author>\n")
		writeElement(buf, "name", record.Author.Name, 6)
		writeElement(buf, "email", record.Author.Email, 6)
		writeElement(buf, "uri", record.Author.Link, 6)
		buf.WriteString("    </author>\n")
	}

	writeElement(buf, "summary", record.Description, 4)
	writeElement(buf, "rights", record.Copyright, 4)

	for _, category := range record.Categories {
		if category != "" {
			buf.WriteString(fmt.Sprintf("    <category term=\"%s\" />\n", escapeAttr(category)))
		}
	}

	for _, enclosure := range record.Enclosures {
		if enclosure.URL == "" {
			continue
		}
		buf.WriteString(fmt.Sprintf("    <link rel=\"enclosure\" href=\"%s\" length=\"%d\" type=\"%s\" />\n",
			escapeAttr(enclosure.URL),
			enclosure.Length,
			escapeAttr(enclosure.Type)))
	}

	buf.WriteString("  </entry>\n")
}
