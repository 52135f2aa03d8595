// Package langcache persists resolved original languages in a small SQLite
// database keyed by movie identifier, so repeat runs over a large library
// avoid re-querying the metadata service. Only external facts are cached;
// deletion decisions are always recomputed per run.
package langcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS original_languages (
    movie_key   TEXT PRIMARY KEY,
    language    TEXT NOT NULL,
    resolved_at TEXT NOT NULL
);
`

// Store manages the original-language cache backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database, creating parent
// directories and applying the schema as needed.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("langcache: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached language for a movie key, reporting whether an
// entry exists. The key is the identifier token from the filename, e.g.
// "imdb:tt0133093" or "tmdb:12345".
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}
	var lang string
	err := s.db.QueryRowContext(ctx,
		`SELECT language FROM original_languages WHERE movie_key = ?`, key).Scan(&lang)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query language cache: %w", err)
	}
	return lang, true, nil
}

// Put stores or refreshes the language for a movie key.
func (s *Store) Put(ctx context.Context, key, lang string) error {
	key = strings.TrimSpace(key)
	lang = strings.TrimSpace(lang)
	if key == "" || lang == "" {
		return errors.New("langcache: key and language required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO original_languages (movie_key, language, resolved_at)
         VALUES (?, ?, ?)
         ON CONFLICT(movie_key) DO UPDATE SET
             language = excluded.language,
             resolved_at = excluded.resolved_at`,
		key, lang, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store language: %w", err)
	}
	return nil
}
