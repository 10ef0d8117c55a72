package storage

import (
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
	"github.com/pressly/goose/v3"

	"github.com/globetrotter-studio/globetrotter/migrations"
)

// SQLite is a Store backed by a single-file SQLite database holding one
// kv(key, value) table. The schema is managed by the embedded goose
// migrations.
//
// Opening can fail (directory not writable, file corrupt); per the store
// contract that is not an error to the caller. A store that failed to open
// keeps a nil handle and degrades to permanent absent/no-op, which leaves
// the application running purely in memory.
type SQLite struct {
	db  *sql.DB
	log *slog.Logger
}

// NewSQLite opens (or creates) the database at path and applies pending
// migrations. Construction never returns an error; a failure is logged and
// yields a degraded store.
func NewSQLite(path string, log *slog.Logger) *SQLite {
	s := &SQLite{log: log}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn("storage open failed", "path", path, "error", err)
		return s
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		log.Warn("storage open failed", "path", path, "error", err)
		return s
	}

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Warn("storage migrate failed", "path", path, "error", err)
		db.Close()
		return s
	}
	if err := goose.Up(db, "."); err != nil {
		log.Warn("storage migrate failed", "path", path, "error", err)
		db.Close()
		return s
	}

	s.db = db
	return s
}

// Close releases the database handle. Safe on a degraded store.
func (s *SQLite) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *SQLite) Get(key string) (string, bool) {
	if s.db == nil {
		return "", false
	}
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("storage get failed", "key", key, "error", err)
		}
		return "", false
	}
	return v, true
}

func (s *SQLite) Set(key, value string) {
	if s.db == nil {
		return
	}
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		s.log.Warn("storage set failed", "key", key, "error", err)
	}
}

func (s *SQLite) Remove(key string) {
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Warn("storage remove failed", "key", key, "error", err)
	}
}

var _ Store = (*SQLite)(nil)
