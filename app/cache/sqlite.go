package cache

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore persists cache entries in a single SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the cache database at path
// and applies pending schema migrations. Use ":memory:" for a throwaway
// database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite allows a single writer; serialize access through one connection
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(url string) (*Entry, error) {
	var body string
	var fetchedAt int64

	err := s.db.QueryRow(`
		SELECT body, fetched_at FROM cache_entries WHERE url = ?
	`, url).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	return &Entry{
		URL:       url,
		Body:      body,
		FetchedAt: time.Unix(fetchedAt, 0),
	}, nil
}

func (s *SQLiteStore) Set(url string, body string, fetchedAt time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO cache_entries (url, body, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at
	`, url, body, fetchedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Delete(url string) error {
	_, err := s.db.Exec(`DELETE FROM cache_entries WHERE url = ?`, url)
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
