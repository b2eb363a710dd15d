package feed

import (
	"bytes"
	"encoding/xml"
	"html"
	"strings"
	"time"
)

// Shared helpers for the XML generators. Element text goes through
// xml.EscapeText, attribute values through escapeAttr.

func writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func escapeAttr(s string) string {
	return html.EscapeString(s)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// newestTimestamp returns the most recent publication timestamp of the
// records, which are already sorted newest first, falling back to now.
func newestTimestamp(records []Record) time.Time {
	for _, record := range records {
		if record.PublishedAt != nil {
			return *record.PublishedAt
		}
	}
	return time.Now().UTC()
}

func formatAuthor(author *Author) string {
	if author == nil {
		return ""
	}

	name := strings.TrimSpace(author.Name)
	email := strings.TrimSpace(author.Email)

	if name != "" && email != "" {
		return email + " (" + name + ")"
	} else if name != "" {
		return name
	}
	return email
}
