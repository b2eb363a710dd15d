package config

// UnlimitedKeep is the num_keep sentinel meaning "keep every entry from each source".
const UnlimitedKeep = -1

const (
	DefaultTitle      = "Title"
	DefaultNumKeep    = 3
	DefaultMaxThreads = 5
	DefaultMaxFeeds   = 100
)

// MixerConfig describes the output feed and the sources mixed into it.
// Immutable once applied to a mixer; the feed list is truncated to MaxFeeds.
type MixerConfig struct {
	Title       string   `yaml:"title"`
	Link        string   `yaml:"link"`
	Description string   `yaml:"description"`
	Feeds       []string `yaml:"feeds"`
	NumKeep     int      `yaml:"num_keep"`
	MaxThreads  int      `yaml:"max_threads"`
	MaxFeeds    int      `yaml:"max_feeds"`
}
