package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bemnlam/feedmixer/app/config"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Blog</title>
    <link>https://test.example.com</link>
    <item>
      <title>First Post</title>
      <link>https://test.example.com/first</link>
      <pubDate>Mon, 02 Jun 2025 10:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Second Post</title>
      <link>https://test.example.com/second</link>
      <pubDate>Sun, 01 Jun 2025 10:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`

func testFetch(documents map[string]string) func(ctx context.Context, url string) (string, bool, error) {
	return func(ctx context.Context, url string) (string, bool, error) {
		doc, ok := documents[url]
		if !ok {
			return "", false, errors.New("connection refused")
		}
		return doc, false, nil
	}
}

func testServer(documents map[string]string, feeds ...string) http.Handler {
	mixerConfig := config.Default()
	mixerConfig.Title = "Mixed"
	mixerConfig.Feeds = feeds

	return NewServer(NewHandler(mixerConfig, testFetch(documents)), false)
}

func doRequest(t *testing.T, server http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestGetRSSConfiguredSources(t *testing.T) {
	server := testServer(
		map[string]string{"https://test.example.com/feed.xml": testFeedXML},
		"https://test.example.com/feed.xml",
	)

	w := doRequest(t, server, "/rss")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/rss+xml; charset=utf-8" {
		t.Errorf("Expected RSS content type, got '%s'", got)
	}
	if got := w.Header().Get("X-Fm-Sources"); got != "1" {
		t.Errorf("Expected 1 source reported, got '%s'", got)
	}
	if w.Header().Get("X-Fm-Errors") != "" {
		t.Error("Expected no error header for a healthy mix")
	}

	body := w.Body.String()
	if !strings.Contains(body, "<title>Mixed</title>") {
		t.Error("Expected configured title in output")
	}
	if !strings.Contains(body, "<title>First Post</title>") {
		t.Error("Expected entry title in output")
	}
}

func TestGetAtomContentType(t *testing.T) {
	server := testServer(
		map[string]string{"https://test.example.com/feed.xml": testFeedXML},
		"https://test.example.com/feed.xml",
	)

	w := doRequest(t, server, "/atom")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "application/atom+xml; charset=utf-8" {
		t.Errorf("Expected Atom content type, got '%s'", got)
	}
	if !strings.Contains(w.Body.String(), `<feed xmlns="http://www.w3.org/2005/Atom">`) {
		t.Error("Expected Atom envelope in output")
	}
}

func TestGetJSONQueryOverrides(t *testing.T) {
	// No configured sources; the request names its own and caps the keep
	// count at one entry per source
	server := testServer(map[string]string{"https://test.example.com/feed.xml": testFeedXML})

	w := doRequest(t, server, "/json?f=https%3A%2F%2Ftest.example.com%2Ffeed.xml&n=1")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("Failed to decode JSON body: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item with n=1, got %d", len(items))
	}
	if items[0]["title"] != "First Post" {
		t.Errorf("Expected newest entry kept, got '%v'", items[0]["title"])
	}
}

func TestGetJSONInvalidNumKeep(t *testing.T) {
	server := testServer(nil)

	for _, raw := range []string{"abc", "-2"} {
		w := doRequest(t, server, "/json?n="+raw)
		if w.Code != http.StatusBadRequest {
			t.Errorf("n=%s: expected status 400, got %d", raw, w.Code)
		}
	}
}

func TestPartialFailureReportedInHeader(t *testing.T) {
	server := testServer(
		map[string]string{"https://test.example.com/feed.xml": testFeedXML},
		"https://test.example.com/feed.xml",
		"https://down.example.com/feed.xml",
	)

	w := doRequest(t, server, "/rss")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for a partial failure, got %d", w.Code)
	}

	var errorURLs map[string]string
	if err := json.Unmarshal([]byte(w.Header().Get("X-Fm-Errors")), &errorURLs); err != nil {
		t.Fatalf("Failed to decode error header: %v", err)
	}
	if len(errorURLs) != 1 {
		t.Fatalf("Expected 1 reported failure, got %d", len(errorURLs))
	}
	if _, ok := errorURLs["https://down.example.com/feed.xml"]; !ok {
		t.Errorf("Expected failed URL in error header, got %v", errorURLs)
	}
}

func TestAllSourcesFailedReturns502(t *testing.T) {
	server := testServer(nil, "https://down.example.com/feed.xml")

	w := doRequest(t, server, "/rss")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", w.Code)
	}
	if w.Header().Get("X-Fm-Errors") == "" {
		t.Error("Expected error header alongside the 502")
	}
}

func TestGetHealth(t *testing.T) {
	server := testServer(nil, "https://test.example.com/feed.xml")

	w := doRequest(t, server, "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var health map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("Failed to decode health body: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("Expected status ok, got '%v'", health["status"])
	}
	if health["sources"] != float64(1) {
		t.Errorf("Expected 1 source, got '%v'", health["sources"])
	}
}
