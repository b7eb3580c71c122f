package geojson

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/place-export/internal/addendum"
	"github.com/sells-group/place-export/internal/details"
	"github.com/sells-group/place-export/internal/document"
	"github.com/sells-group/place-export/internal/fields"
	"github.com/sells-group/place-export/internal/gid"
)

// Transformer converts one raw document into one flat feature-properties
// record. No failure at this level is fatal: bad identifiers, missing names,
// and undecodable addendum namespaces all degrade to omission.
type Transformer struct {
	details *details.Collector
	log     *zap.Logger
}

// NewTransformer returns a Transformer. A nil logger falls back to the
// process-wide zap logger.
func NewTransformer(collector *details.Collector, log *zap.Logger) *Transformer {
	if log == nil {
		log = zap.L()
	}
	if collector == nil {
		collector = details.NewCollector(details.DefaultSchema())
	}
	return &Transformer{details: collector, log: log}
}

// Transform builds the flat property record for doc. The caller guarantees
// doc carries a center point.
func (t *Transformer) Transform(doc *document.Document) Properties {
	props := Properties{}

	parts, err := gid.Parse(doc.ID)
	if err != nil {
		// Fall back to the document's own source/layer fields so the record
		// still carries usable identity.
		t.log.Warn("transform: unresolvable compound id",
			zap.String("_id", doc.ID),
			zap.Error(err),
		)
		parts = gid.Parts{Source: doc.Source, Layer: doc.Layer, ID: doc.ID}
	}
	props[keyID] = parts.ID
	props[keyGID] = parts.String()
	props[keyLayer] = parts.Layer
	props[keySource] = parts.Source
	props[keySourceID] = parts.ID

	// Copied verbatim; edge ordering is not validated here.
	if doc.BoundingBox != nil {
		props[keyBoundingBox] = *doc.BoundingBox
	}

	if doc.CenterPoint != nil {
		props[keyLat] = doc.CenterPoint.Lat.Float()
		props[keyLng] = doc.CenterPoint.Lon.Float()
	}

	name, ok := "", false
	if doc.Name != nil {
		name, ok = fields.First(doc.Name.Default)
	}
	if ok {
		props[keyName] = name
	} else {
		t.log.Warn("transform: document has no name", zap.String("gid", parts.String()))
	}

	for k, v := range t.details.Collect(doc) {
		props[k] = v
	}

	if decoded := t.decodeAddendum(doc, parts.String()); len(decoded) > 0 {
		props[keyAddendum] = decoded
	}

	if doc.Debug != nil {
		props[keyDebug] = doc.Debug
	}

	return props
}

// decodeAddendum decodes each addendum namespace independently. Namespaces
// that fail to decode are dropped with a diagnostic; the addendum map is
// attached only when at least one namespace survived.
func (t *Transformer) decodeAddendum(doc *document.Document, gidStr string) map[string]any {
	if len(doc.Addendum) == 0 {
		return nil
	}

	namespaces := make([]string, 0, len(doc.Addendum))
	for ns := range doc.Addendum {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	decoded := make(map[string]any, len(namespaces))
	for _, ns := range namespaces {
		value, err := addendum.Decode(doc.Addendum[ns])
		if err != nil {
			t.log.Warn("transform: skipping undecodable addendum namespace",
				zap.String("gid", gidStr),
				zap.String("namespace", ns),
				zap.Error(err),
			)
			continue
		}
		decoded[ns] = value
	}
	return decoded
}
