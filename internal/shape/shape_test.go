package shape

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestShapefile(t *testing.T, points [][2]float64, names []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.shp")

	w, err := shp.Create(path, shp.POINT)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{shp.StringField("NAME", 25)}))

	for i, p := range points {
		w.Write(&shp.Point{X: p[0], Y: p[1]})
		require.NoError(t, w.WriteAttribute(i, 0, names[i]))
	}
	w.Close()

	// go-shp's Writer saves attributes to "<base>dbf" while its Reader opens
	// "<base>.dbf"; rename so the attributes are readable.
	base := strings.TrimSuffix(path, ".shp")
	require.NoError(t, os.Rename(base+"dbf", base+".dbf"))
	return path
}

func TestDocuments(t *testing.T) {
	path := writeTestShapefile(t,
		[][2]float64{{-73.6, 45.5}, {-0.12, 51.5}},
		[]string{"Montreal", "London"},
	)

	bodies, err := Documents(path, "shapefile", "locality")
	require.NoError(t, err)
	require.Len(t, bodies, 2)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(bodies[0], &doc))

	assert.Equal(t, "shapefile:locality:1", doc["_id"])
	assert.Equal(t, "shapefile", doc["source"])
	assert.Equal(t, "locality", doc["layer"])

	center, ok := doc["center_point"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 45.5, center["lat"], 1e-9)
	assert.InDelta(t, -73.6, center["lon"], 1e-9)

	name, ok := doc["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Montreal", name["default"])
}

func TestDocuments_MissingFile(t *testing.T) {
	_, err := Documents(filepath.Join(t.TempDir(), "nope.shp"), "s", "l")
	assert.Error(t, err)
}
