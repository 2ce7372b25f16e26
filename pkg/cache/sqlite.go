package cache

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache implements Cache using SQLite as storage, letting cached
// evaluations survive across processes and scenario executions.
type SQLiteCache struct {
	db    *sql.DB
	mu    sync.Mutex
	stats Stats
}

// NewSQLiteCache opens (or creates) a SQLite-backed cache at the given path.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	if path == "" {
		path = "staliro_cache.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(time.Hour)

	c := &SQLiteCache{db: db}
	if err := c.initDB(); err != nil {
		db.Close()
		return nil, err
	}

	// WAL lets concurrent workers read while one writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return c, nil
}

func (c *SQLiteCache) initDB() error {
	query := `
	CREATE TABLE IF NOT EXISTS evaluations (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		expires_at INTEGER,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_expires_at ON evaluations(expires_at) WHERE expires_at > 0;
	`

	_, err := c.db.Exec(query)
	return err
}

func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	var expiresAt int64

	row := c.db.QueryRowContext(ctx, "SELECT value, expires_at FROM evaluations WHERE key = ?", key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			atomic.AddInt64(&c.stats.Misses, 1)
			return nil, false, nil
		}
		return nil, false, err
	}

	if expiresAt > 0 && time.Now().UnixNano() > expiresAt {
		atomic.AddInt64(&c.stats.Misses, 1)
		_ = c.Delete(ctx, key)
		return nil, false, nil
	}

	atomic.AddInt64(&c.stats.Hits, 1)

	return value, true, nil
}

func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO evaluations (key, value, expires_at, created_at) VALUES (?, ?, ?, ?)",
		key, value, expiresAt, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}

	atomic.AddInt64(&c.stats.Sets, 1)

	return nil
}

func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM evaluations WHERE key = ?", key)
	if err != nil {
		return err
	}

	atomic.AddInt64(&c.stats.Deletes, 1)

	return nil
}

func (c *SQLiteCache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM evaluations")
	return err
}

func (c *SQLiteCache) Stats() Stats {
	stats := Stats{
		Hits:    atomic.LoadInt64(&c.stats.Hits),
		Misses:  atomic.LoadInt64(&c.stats.Misses),
		Sets:    atomic.LoadInt64(&c.stats.Sets),
		Deletes: atomic.LoadInt64(&c.stats.Deletes),
	}

	var size int64
	if err := c.db.QueryRow("SELECT COUNT(*) FROM evaluations").Scan(&size); err == nil {
		stats.Size = size
	}

	return stats
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
