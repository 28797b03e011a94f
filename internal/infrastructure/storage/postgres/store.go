package postgres

import (
	"context"
	"errors"
	"fmt"

	"oficina_nova_brasil/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists each slot as one JSONB row of kv_state.
type Store struct {
	pool *pgxpool.Pool
}

var _ interfaces.IKeyValueStore = (*Store)(nil)

// NewStore creates kv_state if needed.
func NewStore(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv_state (
		name TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return nil, fmt.Errorf("create kv_state table: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM kv_state WHERE name = $1`, name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", name, err)
	}
	return payload, true, nil
}

func (s *Store) Set(ctx context.Context, name string, payload []byte) error {
	if _, err := s.pool.Exec(ctx,
		`INSERT INTO kv_state (name, payload, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		name, payload,
	); err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}
	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}
