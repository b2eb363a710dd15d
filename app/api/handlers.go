package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bemnlam/feedmixer/app/cfg"
	"github.com/bemnlam/feedmixer/app/config"
	"github.com/bemnlam/feedmixer/app/mixer"
)

func NewHandler(mixerConfig *config.MixerConfig, fetch mixer.FetchFunc) *Handler {
	return &Handler{
		cfg:   mixerConfig,
		fetch: fetch,
	}
}

// GetAtom serves the mix as an Atom 1.0 document.
func (h *Handler) GetAtom(c *gin.Context) {
	h.serve(c, "application/atom+xml; charset=utf-8", func(m *mixer.Mixer) (string, error) {
		return m.AtomFeed(c.Request.Context())
	})
}

// GetRSS serves the mix as an RSS 2.0 document.
func (h *Handler) GetRSS(c *gin.Context) {
	h.serve(c, "application/rss+xml; charset=utf-8", func(m *mixer.Mixer) (string, error) {
		return m.RSSFeed(c.Request.Context())
	})
}

// GetJSON serves the mix as a JSON array of entry objects.
func (h *Handler) GetJSON(c *gin.Context) {
	h.serve(c, "application/json; charset=utf-8", func(m *mixer.Mixer) (string, error) {
		return m.JSONFeed(c.Request.Context())
	})
}

// serve builds a mixer for the request, renders it and writes the response.
// Per-source failures are reported in the X-Fm-Errors header; the response
// is 502 only when every requested source failed.
func (h *Handler) serve(c *gin.Context, contentType string, render func(*mixer.Mixer) (string, error)) {
	m, err := h.newMixer(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := render(m)
	if err != nil {
		slog.Error("Feed generation error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feed generation failed"})
		return
	}

	feeds := m.Feeds()
	errorURLs := m.ErrorURLs()

	if len(errorURLs) > 0 {
		messages := make(map[string]string, len(errorURLs))
		for url, fetchErr := range errorURLs {
			messages[url] = fetchErr.Error()
		}
		if encoded, err := json.Marshal(messages); err == nil {
			c.Header("X-Fm-Errors", string(encoded))
		}
	}

	if len(feeds) > 0 && len(errorURLs) == len(feeds) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "All sources failed"})
		return
	}

	c.Header("Content-Type", contentType)
	c.Header("X-Fm-Sources", strconv.Itoa(len(feeds)))

	c.String(http.StatusOK, output)
}

// newMixer applies the request's query parameters on top of the configured
// mix: repeated f parameters replace the source list, n replaces the
// per-source keep count.
func (h *Handler) newMixer(c *gin.Context) (*mixer.Mixer, error) {
	applied := *h.cfg
	applied.Feeds = append([]string(nil), h.cfg.Feeds...)

	if urls := c.QueryArray("f"); len(urls) > 0 {
		applied.Feeds = urls
	}

	if raw := c.Query("n"); raw != "" {
		numKeep, err := strconv.Atoi(raw)
		if err != nil || numKeep < config.UnlimitedKeep {
			return nil, &paramError{param: "n", value: raw}
		}
		applied.NumKeep = numKeep
	}

	return mixer.New(&applied, h.fetch), nil
}

type paramError struct {
	param string
	value string
}

func (e *paramError) Error() string {
	return "invalid " + e.param + " parameter: " + e.value
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"version":   cfg.GetVersion(),
		"sources":   len(h.cfg.Feeds),
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	})
}
