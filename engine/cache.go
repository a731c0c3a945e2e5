package engine

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"

	_ "github.com/mattn/go-sqlite3"
)

// Cache is a sqlite-backed compiled-kernel cache keyed on sha256(family +
// candidate + source), generalizing original_source's kernels_cache.h
// in-memory map to a cache that survives process restarts.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if necessary) a sqlite database at path and
// ensures its schema exists. path may be ":memory:" for a process-local
// cache.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	const schema = `CREATE TABLE IF NOT EXISTS kernel_cache (
		hash      TEXT PRIMARY KEY,
		family    TEXT NOT NULL,
		candidate TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	// go-sqlite3 serializes writers at the driver level; capping the pool
	// at one connection avoids "database is locked" errors under the
	// mattn/go-sqlite3 cgo driver without needing a WAL/busy-timeout dance.
	db.SetMaxOpenConns(1)
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

func cacheKey(source, family, candidate string) string {
	sum := sha256.Sum256([]byte(family + "\x00" + candidate + "\x00" + source))
	return hex.EncodeToString(sum[:])
}

// Lookup reports whether (source, family, candidate) was previously
// Stored.
func (c *Cache) Lookup(source, family, candidate string) (bool, error) {
	row := c.db.QueryRow(`SELECT 1 FROM kernel_cache WHERE hash = ?`, cacheKey(source, family, candidate))
	var hit int
	err := row.Scan(&hit)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Store records (source, family, candidate) as compiled, so future
// Lookups for the same triple are cache hits.
func (c *Cache) Store(source, family, candidate string) error {
	_, err := c.db.Exec(
		`INSERT OR IGNORE INTO kernel_cache (hash, family, candidate) VALUES (?, ?, ?)`,
		cacheKey(source, family, candidate), family, candidate,
	)
	return err
}
