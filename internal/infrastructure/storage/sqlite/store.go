package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"oficina_nova_brasil/internal/usecase/interfaces"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store persists each slot as one JSON blob row of the state table.
type Store struct {
	db   *sql.DB
	path string
}

var _ interfaces.IKeyValueStore = (*Store)(nil)

// NewStore opens (or creates) the SQLite file at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "oficina.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection serialises writers and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", name, err)
	}
	return payload, true, nil
}

func (s *Store) Set(ctx context.Context, name string, payload []byte) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
		name, payload,
	); err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }
