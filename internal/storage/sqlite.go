// Package storage provides SQLite-based persistence for the best score and
// the offline asset cache.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SSH sessions share the store.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS asset_cache (
			cache TEXT NOT NULL,
			path TEXT NOT NULL,
			content_type TEXT NOT NULL,
			body BLOB NOT NULL,
			stored_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (cache, path)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the value stored under key. ok is false if the key is absent.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete key %q: %w", key, err)
	}
	return nil
}

// Asset is a cached response body.
type Asset struct {
	Cache       string
	Path        string
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

// CachePut stores an asset under its cache version, replacing any previous copy.
func (s *Store) CachePut(ctx context.Context, a Asset) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO asset_cache (cache, path, content_type, body, stored_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(cache, path) DO UPDATE SET
		   content_type = excluded.content_type,
		   body = excluded.body,
		   stored_at = excluded.stored_at`,
		a.Cache, a.Path, a.ContentType, a.Body,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot cache %s/%s: %w", a.Cache, a.Path, err)
	}
	return nil
}

// CacheMatch looks up path in a cache version. Returns nil if absent.
func (s *Store) CacheMatch(ctx context.Context, cache, path string) (*Asset, error) {
	a := Asset{Cache: cache, Path: path}
	var storedAt any

	err := s.db.QueryRowContext(ctx,
		`SELECT content_type, body, stored_at FROM asset_cache WHERE cache = ? AND path = ?`,
		cache, path,
	).Scan(&a.ContentType, &a.Body, &storedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cache %s/%s: %w", cache, path, err)
	}

	a.StoredAt = parseTime(storedAt)
	return &a, nil
}

// CacheVersions lists the cache versions present, in name order.
func (s *Store) CacheVersions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT cache FROM asset_cache ORDER BY cache")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list caches: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return names, nil
}

// CacheDelete removes every asset of a cache version.
func (s *Store) CacheDelete(ctx context.Context, cache string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM asset_cache WHERE cache = ?", cache); err != nil {
		return fmt.Errorf("storage: cannot delete cache %s: %w", cache, err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
