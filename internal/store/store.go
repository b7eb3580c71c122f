// Package store persists raw place documents for offline export.
package store

import (
	"context"

	"github.com/sells-group/place-export/internal/document"
)

// Filter narrows a document fetch. Zero-value fields are ignored.
type Filter struct {
	Source string
	Layer  string
	Limit  int
}

// Store provides access to the raw place-document corpus. Documents are
// stored as their original JSON bodies so source-specific fields survive the
// round trip.
type Store interface {
	// Migrate creates the documents table if it does not exist.
	Migrate(ctx context.Context) error

	// Insert persists one raw document body.
	Insert(ctx context.Context, source, layer string, body []byte) error

	// Fetch returns documents matching f, ordered by insertion id so export
	// output is deterministic. Bodies that fail to decode are skipped with a
	// diagnostic, not returned as an error.
	Fetch(ctx context.Context, f Filter) ([]document.Document, error)

	// Close releases the underlying connections.
	Close() error
}
