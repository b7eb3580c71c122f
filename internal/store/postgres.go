package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/place-export/internal/document"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies it in
// tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS documents (
	id     BIGSERIAL PRIMARY KEY,
	source TEXT NOT NULL,
	layer  TEXT NOT NULL,
	body   JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS documents_source_layer_idx ON documents (source, layer);
`

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool. Used by tests.
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the documents table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresMigration); err != nil {
		return eris.Wrap(err, "postgres: migrate")
	}
	return nil
}

// Insert persists one raw document body.
func (s *PostgresStore) Insert(ctx context.Context, source, layer string, body []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (source, layer, body) VALUES ($1, $2, $3)`,
		source, layer, body,
	)
	if err != nil {
		return eris.Wrap(err, "postgres: insert document")
	}
	return nil
}

// Fetch returns documents matching f in insertion order. Undecodable bodies
// are skipped with a diagnostic.
func (s *PostgresStore) Fetch(ctx context.Context, f Filter) ([]document.Document, error) {
	query := `SELECT id, body FROM documents`
	var args []any
	if f.Source != "" {
		args = append(args, f.Source)
		query += fmt.Sprintf(" WHERE source = $%d", len(args))
	}
	if f.Layer != "" {
		args = append(args, f.Layer)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE layer = $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND layer = $%d", len(args))
		}
	}
	query += " ORDER BY id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query documents")
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var id int64
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, eris.Wrap(err, "postgres: scan document row")
		}
		var doc document.Document
		if err := json.Unmarshal(body, &doc); err != nil {
			zap.L().Warn("postgres: skipping undecodable document body",
				zap.Int64("row_id", id),
				zap.Error(err),
			)
			continue
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate document rows")
	}
	return docs, nil
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
