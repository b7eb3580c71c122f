package details

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/place-export/internal/document"
)

func decodeDoc(t *testing.T, raw string) *document.Document {
	t.Helper()
	var doc document.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func TestCollect_SchemaKeys(t *testing.T) {
	doc := decodeDoc(t, `{
		"_id": "wof:locality:1",
		"center_point": {"lat": 1, "lon": 2},
		"locality": "Berlin",
		"country": "Germany",
		"country_a": "DEU",
		"confidence": 0.9,
		"population": 3600000
	}`)

	out := NewCollector(DefaultSchema()).Collect(doc)
	assert.Equal(t, "Berlin", out["locality"])
	assert.Equal(t, "Germany", out["country"])
	assert.Equal(t, "DEU", out["country_a"])
	assert.Equal(t, 0.9, out["confidence"])
	assert.Equal(t, float64(3600000), out["population"])
}

func TestCollect_SkipsAbsentKeys(t *testing.T) {
	doc := decodeDoc(t, `{"_id":"a:b:c","locality":"Oslo"}`)
	out := NewCollector(DefaultSchema()).Collect(doc)
	assert.Equal(t, map[string]any{"locality": "Oslo"}, out)
}

func TestCollect_FirstOfArray(t *testing.T) {
	doc := decodeDoc(t, `{"_id":"a:b:c","region":["Bavaria","Bayern"]}`)
	out := NewCollector(DefaultSchema()).Collect(doc)
	assert.Equal(t, "Bavaria", out["region"])
}

func TestCollect_ReservedKeysNeverEmitted(t *testing.T) {
	doc := decodeDoc(t, `{"_id":"a:b:c","lat":99,"gid":"evil","locality":"Lyon"}`)
	schema := Schema{Keys: []string{"lat", "gid", "locality"}}
	out := NewCollector(schema).Collect(doc)
	assert.Equal(t, map[string]any{"locality": "Lyon"}, out)
}

func TestLoadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keys:\n  - locality\n  - country_a\n"), 0o644))

	schema, err := LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"locality", "country_a"}, schema.Keys)
}

func TestLoadSchema_MissingFile(t *testing.T) {
	_, err := LoadSchema(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSchema_EmptyKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keys: []\n"), 0o644))

	_, err := LoadSchema(path)
	assert.Error(t, err)
}
