package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/bemnlam/feedmixer/app/config"
)

// RSSGenerator serializes normalized records as an RSS 2.0 document.
type RSSGenerator struct{}

func NewRSSGenerator() *RSSGenerator {
	return &RSSGenerator{}
}

func (g *RSSGenerator) Run(mixerConfig *config.MixerConfig, records []Record) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	writeElement(&buf, "title", mixerConfig.Title, 4)
	writeElement(&buf, "link", mixerConfig.Link, 4)

	// RSS 2.0 requires a description element even when empty
	buf.WriteString("    <description>")
	xml.EscapeText(&buf, []byte(mixerConfig.Description))
	buf.WriteString("</description>\n")

	if mixerConfig.Link != "" {
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			escapeAttr(mixerConfig.Link)))
	}

	writeElement(&buf, "lastBuildDate", newestTimestamp(records).Format(time.RFC1123Z), 4)

	for _, record := range records {
		g.writeItem(&buf, record)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *RSSGenerator) writeItem(buf *bytes.Buffer, record Record) {
	buf.WriteString("    <item>\n")

	if record.GUID != "" {
		buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", isURL(record.GUID)))
		xml.EscapeText(buf, []byte(record.GUID))
		buf.WriteString("</guid>\n")
	}

	writeElement(buf, "title", record.Title, 6)
	writeElement(buf, "link", record.Link, 6)

	buf.WriteString("      <description>")
	xml.EscapeText(buf, []byte(record.Description))
	buf.WriteString("</description>\n")

	if record.PublishedAt != nil {
		writeElement(buf, "pubDate", record.PublishedAt.Format(time.RFC1123Z), 6)
	}

	writeElement(buf, "author", formatAuthor(record.Author), 6)
	writeElement(buf, "comments", record.Comments, 6)

	for _, category := range record.Categories {
		if category != "" {
			writeElement(buf, "category", category, 6)
		}
	}

	// RSS 2.0 requires url, length and type on enclosure
	for _, enclosure := range record.Enclosures {
		if enclosure.URL == "" || enclosure.Type == "" {
			continue
		}
		buf.WriteString(fmt.Sprintf("      <enclosure url=\"%s\" length=\"%d\" type=\"%s\" />\n",
			escapeAttr(enclosure.URL),
			enclosure.Length,
			escapeAttr(enclosure.Type)))
	}

	buf.WriteString("    </item>\n")
}
