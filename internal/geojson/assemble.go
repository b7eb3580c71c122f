package geojson

import (
	"context"

	"github.com/twpayne/go-geom"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/place-export/internal/countrycode"
	"github.com/sells-group/place-export/internal/details"
	"github.com/sells-group/place-export/internal/document"
)

// Assembler drives the Transformer over a document set and builds the final
// FeatureCollection: per-feature geometry and bbox, country-code annotation,
// and the collection-wide bounding box. Partial failures degrade to omission;
// Assemble itself never fails.
type Assembler struct {
	transformer *Transformer
	log         *zap.Logger
	workers     int
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithWorkers enables parallel document transforms with up to n workers.
// Output feature order always matches input order.
func WithWorkers(n int) AssemblerOption {
	return func(a *Assembler) {
		if n > 0 {
			a.workers = n
		}
	}
}

// NewAssembler returns an Assembler. A nil collector uses the default detail
// schema; a nil logger falls back to the process-wide zap logger.
func NewAssembler(collector *details.Collector, log *zap.Logger, opts ...AssemblerOption) *Assembler {
	if log == nil {
		log = zap.L()
	}
	a := &Assembler{
		transformer: NewTransformer(collector, log),
		log:         log,
		workers:     1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble converts docs into a FeatureCollection, preserving input order.
// Documents without a usable center point are dropped with a diagnostic.
func (a *Assembler) Assemble(ctx context.Context, docs []document.Document) *FeatureCollection {
	kept := make([]*document.Document, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		if !doc.HasCenter() {
			a.log.Warn("assemble: dropping document without center point",
				zap.String("_id", doc.ID))
			continue
		}
		if !doc.CenterPoint.Valid() {
			a.log.Warn("assemble: dropping document with malformed center point",
				zap.String("_id", doc.ID))
			continue
		}
		kept = append(kept, doc)
	}

	records := a.transformAll(ctx, kept)
	points := extentPoints(records)

	features := make([]Feature, 0, len(records))
	for _, props := range records {
		features = append(features, a.buildFeature(props))
	}

	fc := &FeatureCollection{Type: "FeatureCollection", Features: features}

	bbox, err := computeBBox(points)
	if err != nil {
		a.log.Error("assemble: collection bbox omitted",
			zap.Error(err),
			zap.Any("points", points),
		)
		return fc
	}
	fc.BBox = bbox
	return fc
}

// transformAll maps documents through the Transformer. With more than one
// worker, transforms run concurrently and results are gathered by index so
// output order stays deterministic.
func (a *Assembler) transformAll(ctx context.Context, docs []*document.Document) []Properties {
	records := make([]Properties, len(docs))

	if a.workers <= 1 || len(docs) < 2 {
		for i, doc := range docs {
			records[i] = a.transformer.Transform(doc)
		}
		return records
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, doc := range docs {
		g.Go(func() error {
			records[i] = a.transformer.Transform(doc)
			return nil
		})
	}
	// Transforms degrade internally and never return errors.
	_ = g.Wait()
	return records
}

// buildFeature wraps one property record in a Point feature, promotes the
// temporary bounding box to the feature level, and annotates the country
// code when one resolves.
func (a *Assembler) buildFeature(props Properties) Feature {
	f := Feature{Type: "Feature", Properties: props}

	lng, _ := props[keyLng].(float64)
	lat, _ := props[keyLat].(float64)
	geometry, err := geomjson.Marshal(geom.NewPointFlat(geom.XY, []float64{lng, lat}))
	if err != nil {
		a.log.Error("assemble: encode point geometry",
			zap.Float64("lng", lng),
			zap.Float64("lat", lat),
			zap.Error(err),
		)
		geometry = []byte("null")
	}
	f.Geometry = geometry

	if bb, ok := props[keyBoundingBox].(document.BoundingBox); ok {
		f.BBox = []float64{bb.MinLon, bb.MinLat, bb.MaxLon, bb.MaxLat}
	}
	delete(props, keyBoundingBox)

	code, _ := props[keyCountryA].(string)
	if code == "" {
		code, _ = props[keyDependencyA].(string)
	}
	if code != "" {
		if alpha2, ok := countrycode.Alpha2(code); ok {
			props[keyCountryCode] = alpha2
		}
	}

	return f
}
