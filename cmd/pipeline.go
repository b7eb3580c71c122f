package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/place-export/internal/config"
	"github.com/sells-group/place-export/internal/details"
	"github.com/sells-group/place-export/internal/document"
	"github.com/sells-group/place-export/internal/geojson"
	"github.com/sells-group/place-export/internal/store"
)

// maxLineBytes bounds one NDJSON line; some sources attach very large debug
// payloads.
const maxLineBytes = 16 << 20

// newCollector builds the detail collector from config, falling back to the
// default schema when no schema file is configured.
func newCollector(cfg *config.Config) (*details.Collector, error) {
	if cfg.Details.SchemaPath == "" {
		return details.NewCollector(details.DefaultSchema()), nil
	}
	schema, err := details.LoadSchema(cfg.Details.SchemaPath)
	if err != nil {
		return nil, err
	}
	return details.NewCollector(schema), nil
}

// newAssembler builds the collection assembler from config.
func newAssembler(cfg *config.Config) (*geojson.Assembler, error) {
	collector, err := newCollector(cfg)
	if err != nil {
		return nil, err
	}
	return geojson.NewAssembler(collector, zap.L(),
		geojson.WithWorkers(cfg.Convert.Workers)), nil
}

// openStore opens the configured document store backend.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		if cfg.Store.DatabaseURL == "" {
			return nil, eris.New("store: database_url not configured")
		}
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	case "sqlite":
		return store.NewSQLite(cfg.Store.SQLitePath)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Store.Driver)
	}
}

// readDocuments decodes newline-delimited JSON documents from r. Blank lines
// are skipped; malformed lines are logged and skipped so one bad document
// never aborts the run.
func readDocuments(r io.Reader) ([]document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), maxLineBytes)

	var docs []document.Document
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var doc document.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			zap.L().Warn("ingest: skipping malformed document line",
				zap.Int("line", line),
				zap.Error(err),
			)
			continue
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrap(err, "ingest: read documents")
	}
	return docs, nil
}

// writeCollection writes the FeatureCollection as JSON to path, or stdout
// when path is empty or "-".
func writeCollection(fc *geojson.FeatureCollection, path string, pretty bool) error {
	var out io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "output: create %s", path)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(fc); err != nil {
		return eris.Wrap(err, "output: encode feature collection")
	}
	return nil
}
