package kvstore

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"muchong-engine/internal/domain"

	_ "modernc.org/sqlite"
)

// SQLite stores key/value pairs in a single local .db file.
type SQLite struct {
	db *sql.DB

	// maxBytes caps the total stored payload size; 0 means unlimited.
	// SQLITE_FULL from the driver is treated the same way.
	maxBytes int64
}

// OpenSQLite opens (or creates) the store at path. Use MaxBytes 0 to
// disable the byte budget.
func OpenSQLite(path string, maxBytes int64) (*SQLite, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}

	db.SetMaxOpenConns(1) // sqlite typically wants 1 writer
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate kv store: %w", err)
	}

	return &SQLite{db: db, maxBytes: maxBytes}, nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) Get(key string) (string, bool) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?;`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.Printf("level=warn msg=\"kv get failed\" key=%s err=%v", key, err)
		return "", false
	}
	return v, true
}

func (s *SQLite) Set(key, value string, evictable ...string) error {
	err := s.put(key, value)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		return fmt.Errorf("kv set %q: %w", key, err)
	}

	// Over budget: evict what the caller marked disposable and retry once.
	for _, k := range evictable {
		s.Delete(k)
	}
	if err := s.put(key, value); err != nil {
		return fmt.Errorf("kv set %q after eviction: %w", key, err)
	}
	log.Printf("level=info msg=\"kv set succeeded after eviction\" key=%s evicted=%d", key, len(evictable))
	return nil
}

func (s *SQLite) Delete(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?;`, key); err != nil {
		log.Printf("level=warn msg=\"kv delete failed\" key=%s err=%v", key, err)
	}
}

func (s *SQLite) put(key, value string) error {
	if s.maxBytes > 0 {
		var used sql.NullInt64
		if err := s.db.QueryRow(
			`SELECT COALESCE(SUM(LENGTH(CAST(value AS BLOB))), 0) FROM kv WHERE key != ?;`, key,
		).Scan(&used); err == nil {
			if used.Int64+int64(len(value)) > s.maxBytes {
				return domain.ErrQuotaExceeded
			}
		}
	}

	_, err := s.db.Exec(`
INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	if err != nil {
		if strings.Contains(err.Error(), "database or disk is full") {
			return domain.ErrQuotaExceeded
		}
		return err
	}
	return nil
}
