package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns a MixerConfig with every field at its default value.
func Default() *MixerConfig {
	return &MixerConfig{
		Title:      DefaultTitle,
		NumKeep:    DefaultNumKeep,
		MaxThreads: DefaultMaxThreads,
		MaxFeeds:   DefaultMaxFeeds,
	}
}

// Load reads a mixer configuration from a YAML file. A missing file is not
// an error; the defaults are returned so the service can start without a
// sources file and take feed URLs from the request instead.
func Load(path string) (*MixerConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var mixerConfig MixerConfig
	if err := yaml.Unmarshal(data, &mixerConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(&mixerConfig)

	if err := validate(&mixerConfig); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if len(mixerConfig.Feeds) > mixerConfig.MaxFeeds {
		mixerConfig.Feeds = mixerConfig.Feeds[:mixerConfig.MaxFeeds]
	}

	return &mixerConfig, nil
}

func setDefaults(mixerConfig *MixerConfig) {
	if mixerConfig.Title == "" {
		mixerConfig.Title = DefaultTitle
	}
	if mixerConfig.NumKeep == 0 {
		mixerConfig.NumKeep = DefaultNumKeep
	}
	if mixerConfig.MaxThreads == 0 {
		mixerConfig.MaxThreads = DefaultMaxThreads
	}
	if mixerConfig.MaxFeeds == 0 {
		mixerConfig.MaxFeeds = DefaultMaxFeeds
	}
}

func validate(mixerConfig *MixerConfig) error {
	if mixerConfig.NumKeep < UnlimitedKeep {
		return fmt.Errorf("num_keep must be -1 (unlimited) or positive, got %d", mixerConfig.NumKeep)
	}
	if mixerConfig.MaxThreads < 1 {
		return fmt.Errorf("max_threads must be positive, got %d", mixerConfig.MaxThreads)
	}
	if mixerConfig.MaxFeeds < 1 {
		return fmt.Errorf("max_feeds must be positive, got %d", mixerConfig.MaxFeeds)
	}

	for i, feedURL := range mixerConfig.Feeds {
		if feedURL == "" {
			return fmt.Errorf("feed URL at index %d is empty", i)
		}
	}

	return nil
}
