package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/sells-group/place-export/internal/document"
)

// SQLiteStore implements Store using modernc.org/sqlite, for local and
// offline exports.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS documents (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	layer  TEXT NOT NULL,
	body   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS documents_source_layer_idx ON documents (source, layer);
`

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// Migrate creates the documents table if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteMigration); err != nil {
		return eris.Wrap(err, "sqlite: migrate")
	}
	return nil
}

// Insert persists one raw document body.
func (s *SQLiteStore) Insert(ctx context.Context, source, layer string, body []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (source, layer, body) VALUES (?, ?, ?)`,
		source, layer, string(body),
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: insert document")
	}
	return nil
}

// Fetch returns documents matching f in insertion order. Undecodable bodies
// are skipped with a diagnostic.
func (s *SQLiteStore) Fetch(ctx context.Context, f Filter) ([]document.Document, error) {
	query := `SELECT id, body FROM documents`
	var args []any
	if f.Source != "" {
		query += " WHERE source = ?"
		args = append(args, f.Source)
	}
	if f.Layer != "" {
		if len(args) == 0 {
			query += " WHERE layer = ?"
		} else {
			query += " AND layer = ?"
		}
		args = append(args, f.Layer)
	}
	query += " ORDER BY id"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query documents")
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var id int64
		var body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan document row")
		}
		var doc document.Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			zap.L().Warn("sqlite: skipping undecodable document body",
				zap.Int64("row_id", id),
				zap.Error(err),
			)
			continue
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate document rows")
	}
	return docs, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
