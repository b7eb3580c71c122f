// Package details collects extra, schema-listed properties from raw place
// documents into the output feature properties.
package details

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/place-export/internal/document"
	"github.com/sells-group/place-export/internal/fields"
)

// reserved lists property keys owned by the core transform. The collector
// never emits these, whatever the schema says.
var reserved = map[string]bool{
	"id":           true,
	"gid":          true,
	"layer":        true,
	"source":       true,
	"source_id":    true,
	"lat":          true,
	"lng":          true,
	"bounding_box": true,
}

// Schema lists the document keys the collector copies through.
type Schema struct {
	Keys []string `yaml:"keys"`
}

// DefaultSchema returns the standard set of place properties exposed to
// clients.
func DefaultSchema() Schema {
	return Schema{Keys: []string{
		"housenumber",
		"street",
		"postalcode",
		"neighbourhood",
		"borough",
		"locality",
		"county",
		"region",
		"region_a",
		"country",
		"country_a",
		"dependency",
		"dependency_a",
		"continent",
		"label",
		"confidence",
		"match_type",
		"distance",
		"accuracy",
		"population",
		"popularity",
	}}
}

// LoadSchema reads a schema from a YAML file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, eris.Wrap(err, "details: read schema")
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, eris.Wrap(err, "details: parse schema")
	}
	if len(s.Keys) == 0 {
		return Schema{}, eris.New("details: schema lists no keys")
	}
	return s, nil
}

// Collector copies schema-listed document fields into feature properties.
type Collector struct {
	schema Schema
}

// NewCollector returns a Collector for the given schema.
func NewCollector(schema Schema) *Collector {
	return &Collector{schema: schema}
}

// Collect extracts the schema-listed keys present on doc. String values are
// normalized (trimmed, first-of-array); numeric and boolean values pass
// through. Reserved core keys are always skipped.
func (c *Collector) Collect(doc *document.Document) map[string]any {
	out := make(map[string]any)
	for _, key := range c.schema.Keys {
		if reserved[key] {
			continue
		}
		raw, ok := doc.Field(key)
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case string, []string, []any:
			if s, ok := fields.First(v); ok {
				out[key] = s
			}
		case float64, int, int64, bool:
			out[key] = v
		}
	}
	return out
}
