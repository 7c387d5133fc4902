//go:build sqlite

package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/jotr/internal/model"
	"github.com/inovacc/jotr/internal/params"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	sqliteKeyEntries = "entries"
	sqliteKeyConfig  = "config"
)

type SQLite struct {
	db *sql.DB
}

// Open opens the SQLite backend at its default location in the app data
// directory.
func Open() (Backend, error) {
	path := filepath.Join(params.AppdataDir, "jotr.db")

	return NewSQLite(path)
}

// NewSQLite creates a new SQLite backend at the specified path.
// This is primarily exposed for testing purposes.
func NewSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't handle multiple writers well
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating blobs table: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Ping() error {
	return s.db.Ping()
}

func (s *SQLite) readKey(key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *SQLite) writeKey(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO blobs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)

	return err
}

func (s *SQLite) ReadEntries() ([]byte, error) {
	return s.readKey(sqliteKeyEntries)
}

func (s *SQLite) WriteEntries(data []byte) error {
	return s.writeKey(sqliteKeyEntries, data)
}

func (s *SQLite) GetConfig() (*model.Config, error) {
	v, err := s.readKey(sqliteKeyConfig)
	if err != nil {
		return nil, err
	}

	if v == nil {
		// Return default config if not found
		defaultCfg := model.DefaultConfig()

		return &defaultCfg, nil
	}

	var c model.Config
	if err := json.Unmarshal(v, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *SQLite) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return s.writeKey(sqliteKeyConfig, data)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
