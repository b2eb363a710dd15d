package cache

import (
	"sync"
	"time"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps cache entries in process memory. Used when no cache
// path is configured and in tests; contents are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

func (s *MemoryStore) Get(url string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[url]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *MemoryStore) Set(url string, body string, fetchedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[url] = Entry{
		URL:       url,
		Body:      body,
		FetchedAt: fetchedAt,
	}
	return nil
}

func (s *MemoryStore) Delete(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, url)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
