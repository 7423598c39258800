package museum

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Cache keeps object payloads in a SQLite file so repeated runs do not
// re-query the API. Deleting the file is always safe.
type Cache struct {
	db   *sql.DB
	path string
}

// CacheStats summarizes cache contents.
type CacheStats struct {
	Path    string
	Objects int
	Oldest  time.Time
	Newest  time.Time
}

var _ ObjectCache = (*Cache)(nil)

// OpenCache opens or creates the cache database at path and applies migrations.
func OpenCache(ctx context.Context, path string) (*Cache, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
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
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	cache := &Cache{db: db, path: path}
	if err := cache.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return cache, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database file location.
func (c *Cache) Path() string { return c.path }

// Lookup returns the cached object for id.
func (c *Cache) Lookup(ctx context.Context, id int64) (*Object, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx, "SELECT payload FROM objects WHERE object_id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cached object %d: %w", id, err)
	}
	var obj Object
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		return nil, false, fmt.Errorf("decode cached object %d: %w", id, err)
	}
	return &obj, true, nil
}

// Store inserts or replaces the cached payload for obj.
func (c *Cache) Store(ctx context.Context, obj *Object) error {
	if obj == nil {
		return errors.New("object required")
	}
	payload, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encode object %d: %w", obj.ObjectID, err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO objects (object_id, artist, payload, fetched_at) VALUES (?, ?, ?, ?)
         ON CONFLICT(object_id) DO UPDATE SET
            artist = excluded.artist,
            payload = excluded.payload,
            fetched_at = excluded.fetched_at`,
		obj.ObjectID,
		obj.ArtistDisplayName,
		string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store object %d: %w", obj.ObjectID, err)
	}
	return nil
}

// Stats reports how many objects are cached and when they were fetched.
func (c *Cache) Stats(ctx context.Context) (CacheStats, error) {
	stats := CacheStats{Path: c.path}
	var oldest, newest sql.NullString
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(1), MIN(fetched_at), MAX(fetched_at) FROM objects",
	).Scan(&stats.Objects, &oldest, &newest)
	if err != nil {
		return stats, fmt.Errorf("query cache stats: %w", err)
	}
	stats.Oldest = parseTimestamp(oldest)
	stats.Newest = parseTimestamp(newest)
	return stats, nil
}

// Clear removes every cached object and returns how many were deleted.
func (c *Cache) Clear(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM objects")
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}

func parseTimestamp(value sql.NullString) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, value.String)
	if err != nil {
		return time.Time{}
	}
	return ts
}

type migration struct {
	version string
	sql     string
}

func loadMigrations() ([]migration, error) {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]migration, 0, len(names))
	for _, name := range names {
		data, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, migration{version: strings.TrimSuffix(name, ".sql"), sql: string(data)})
	}
	return migrations, nil
}

func (c *Cache) applyMigrations(ctx context.Context) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)"); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM schema_migrations WHERE version = ?", m.version).Scan(&count); err != nil {
			return fmt.Errorf("scan migration version: %w", err)
		}
		if count > 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.version, err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("record migration %s: %w", m.version, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migrations: %w", err)
	}
	return nil
}
