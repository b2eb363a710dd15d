package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client performs cache-aware retrieval of feed documents. A cache entry
// younger than the TTL is served as-is; a miss or expired entry triggers a
// real network fetch whose success writes through to the store. Fetch
// failures are never cached, so the next call retries the network.
type Client struct {
	store      Store
	httpClient *http.Client
	ttl        time.Duration
	userAgent  string
}

func NewClient(store Store, httpClient *http.Client, ttl time.Duration, userAgent string) *Client {
	return &Client{
		store:      store,
		httpClient: httpClient,
		ttl:        ttl,
		userAgent:  userAgent,
	}
}

// GetOrFetch returns the document at url and whether it came from the
// cache. Store read failures degrade to a cache miss rather than failing
// the fetch.
func (c *Client) GetOrFetch(ctx context.Context, url string) (string, bool, error) {
	entry, err := c.store.Get(url)
	if err != nil {
		slog.Warn("Cache read failed, falling back to network", "url", url, "error", err)
	} else if entry != nil && time.Since(entry.FetchedAt) < c.ttl {
		slog.Debug("Cache hit", "url", url, "age", time.Since(entry.FetchedAt).String())
		return entry.Body, true, nil
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		return "", false, err
	}

	if err := c.store.Set(url, body, time.Now()); err != nil {
		slog.Warn("Cache write failed", "url", url, "error", err)
	}

	return body, false, nil
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(data), nil
}
