package api

import (
	"github.com/bemnlam/feedmixer/app/config"
	"github.com/bemnlam/feedmixer/app/mixer"
)

// Handler serves the mixed feed in its three renderings. Each request gets
// its own mixer built from the configured sources, optionally overridden by
// query parameters; fetch results are shared across requests through the
// cache-aware fetch function.
type Handler struct {
	cfg   *config.MixerConfig
	fetch mixer.FetchFunc
}
