package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hongminglow/dataflow-be/internal/storage"
)

// Ensure Store satisfies the storage.KV interface at compile time.
var _ storage.KV = (*Store)(nil)

// Store provides Postgres-backed persistence for namespaced JSON documents.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store and runs migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS dataflow_documents (
			doc_key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// Get fetches the document stored under key.
func (s *Store) Get(ctx context.Context, key storage.Key) ([]byte, error) {
	const query = `SELECT value::text FROM dataflow_documents WHERE doc_key = $1;`
	var value string
	if err := s.pool.QueryRow(ctx, query, string(key)).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

// Set upserts the document under key.
func (s *Store) Set(ctx context.Context, key storage.Key, value []byte) error {
	const query = `
	INSERT INTO dataflow_documents (doc_key, value, updated_at)
	VALUES ($1, $2::jsonb, NOW())
	ON CONFLICT (doc_key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();
	`
	_, err := s.pool.Exec(ctx, query, string(key), string(value))
	return err
}

// SetIfAbsent inserts the document only when key has none.
func (s *Store) SetIfAbsent(ctx context.Context, key storage.Key, value []byte) (bool, error) {
	const query = `
	INSERT INTO dataflow_documents (doc_key, value)
	VALUES ($1, $2::jsonb)
	ON CONFLICT (doc_key) DO NOTHING;
	`
	tag, err := s.pool.Exec(ctx, query, string(key), string(value))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes the document under key.
func (s *Store) Delete(ctx context.Context, key storage.Key) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM dataflow_documents WHERE doc_key = $1;`, string(key))
	return err
}
