package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	// Create temp directory
	tempDir := t.TempDir()

	// Create test YAML file
	content := `
title: "Mixed Feed"
link: "https://example.com/feed"
description: "Combined feed"

feeds:
  - "https://example.com/a.xml"
  - "https://example.com/b.xml"

num_keep: 5
max_threads: 2
max_feeds: 10
`

	path := filepath.Join(tempDir, "sources.yml")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	// Load configuration
	mixerConfig, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Validate loaded values
	if mixerConfig.Title != "Mixed Feed" {
		t.Errorf("Expected title 'Mixed Feed', got '%s'", mixerConfig.Title)
	}
	if mixerConfig.Link != "https://example.com/feed" {
		t.Errorf("Expected link 'https://example.com/feed', got '%s'", mixerConfig.Link)
	}
	if len(mixerConfig.Feeds) != 2 {
		t.Errorf("Expected 2 feeds, got %d", len(mixerConfig.Feeds))
	}
	if mixerConfig.NumKeep != 5 {
		t.Errorf("Expected num_keep 5, got %d", mixerConfig.NumKeep)
	}
	if mixerConfig.MaxThreads != 2 {
		t.Errorf("Expected max_threads 2, got %d", mixerConfig.MaxThreads)
	}
}

func TestLoadConfigWithDefaults(t *testing.T) {
	// Create temp directory
	tempDir := t.TempDir()

	// Create minimal test YAML file
	content := `
feeds:
  - "https://example.com/feed.xml"
`

	path := filepath.Join(tempDir, "sources.yml")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	// Load configuration
	mixerConfig, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Validate default values
	if mixerConfig.Title != DefaultTitle {
		t.Errorf("Expected default title '%s', got '%s'", DefaultTitle, mixerConfig.Title)
	}
	if mixerConfig.NumKeep != DefaultNumKeep {
		t.Errorf("Expected default num_keep %d, got %d", DefaultNumKeep, mixerConfig.NumKeep)
	}
	if mixerConfig.MaxThreads != DefaultMaxThreads {
		t.Errorf("Expected default max_threads %d, got %d", DefaultMaxThreads, mixerConfig.MaxThreads)
	}
	if mixerConfig.MaxFeeds != DefaultMaxFeeds {
		t.Errorf("Expected default max_feeds %d, got %d", DefaultMaxFeeds, mixerConfig.MaxFeeds)
	}
}

func TestLoadUnlimitedNumKeep(t *testing.T) {
	tempDir := t.TempDir()

	content := `
feeds:
  - "https://example.com/feed.xml"
num_keep: -1
`

	path := filepath.Join(tempDir, "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	mixerConfig, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if mixerConfig.NumKeep != UnlimitedKeep {
		t.Errorf("Expected num_keep %d (unlimited), got %d", UnlimitedKeep, mixerConfig.NumKeep)
	}
}

func TestLoadTruncatesFeedList(t *testing.T) {
	tempDir := t.TempDir()

	content := `
feeds:
  - "https://example.com/a.xml"
  - "https://example.com/b.xml"
  - "https://example.com/c.xml"
max_feeds: 2
`

	path := filepath.Join(tempDir, "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	mixerConfig, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(mixerConfig.Feeds) != 2 {
		t.Errorf("Expected feed list truncated to 2, got %d", len(mixerConfig.Feeds))
	}
	if mixerConfig.Feeds[1] != "https://example.com/b.xml" {
		t.Errorf("Truncation should keep leading feeds, got %v", mixerConfig.Feeds)
	}
}

func TestInvalidConfig(t *testing.T) {
	tempDir := t.TempDir()

	// num_keep below the unlimited sentinel is invalid
	content := `
feeds:
  - "https://example.com/feed.xml"
num_keep: -2
`

	path := filepath.Join(tempDir, "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid configuration")
	}
}

func TestMissingFile(t *testing.T) {
	tempDir := t.TempDir()

	// Loading a non-existent file falls back to defaults
	mixerConfig, err := Load(filepath.Join(tempDir, "missing.yml"))
	if err != nil {
		t.Fatal(err)
	}

	if len(mixerConfig.Feeds) != 0 {
		t.Errorf("Expected 0 feeds from missing file, got %d", len(mixerConfig.Feeds))
	}
	if mixerConfig.Title != DefaultTitle {
		t.Errorf("Expected default title, got '%s'", mixerConfig.Title)
	}
}
