// store/sqlite.go - Durable slot layer: one row per collection, value held as
// JSON text. This mirrors the key-value layout the data has always lived in.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Compile-time check that SQLiteSlots implements Slots
var _ Slots = (*SQLiteSlots)(nil)

// SQLiteSlots stores collection slots in a single sqlite table.
type SQLiteSlots struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenSlots creates/opens the database and ensures the slots table exists.
func OpenSlots(dbPath string, log *zap.Logger) (*SQLiteSlots, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}
	return &SQLiteSlots{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *SQLiteSlots) Close() error {
	return s.db.Close()
}

// Load reads one slot into dest. A missing row, a read error or a value that
// no longer parses all report false so the caller falls back to its seed.
func (s *SQLiteSlots) Load(key string, dest any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		s.log.Warn("slot read failed", zap.String("slot", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Warn("slot corrupt, using defaults", zap.String("slot", key), zap.Error(err))
		return false
	}
	return true
}

// Save upserts one slot. Failures are logged and swallowed: persistence is
// best-effort and must never block an edit.
func (s *SQLiteSlots) Save(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("slot encode failed", zap.String("slot", key), zap.Error(err))
		return
	}
	_, err = s.db.Exec(`INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, string(raw))
	if err != nil {
		s.log.Error("slot write failed", zap.String("slot", key), zap.Error(err))
	}
}
