// Package shape converts point shapefiles into raw place-document bodies for
// seeding the document store.
package shape

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/place-export/internal/gid"
)

// nameAttributes are tried in order when picking the document name from
// shapefile attributes.
var nameAttributes = []string{"name", "fullname", "namelsad"}

// Documents reads point records from a shapefile and builds one raw document
// body per record, attributed to the given source and layer. Non-point
// shapes are skipped with a diagnostic.
func Documents(path, source, layer string) ([][]byte, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "shape: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	fieldNames := make([]string, len(fields))
	for i, f := range fields {
		name := strings.TrimRight(f.String(), "\x00")
		fieldNames[i] = strings.ToLower(name)
	}

	var bodies [][]byte
	var skipped int
	row := 0

	for reader.Next() {
		row++
		_, s := reader.Shape()
		point, ok := s.(*shp.Point)
		if !ok {
			skipped++
			continue
		}

		body := map[string]any{
			"_id":    gid.Build(source, layer, fmt.Sprintf("%d", row)),
			"source": source,
			"layer":  layer,
			"center_point": map[string]float64{
				"lat": point.Y,
				"lon": point.X,
			},
		}

		for i, name := range fieldNames {
			val := strings.TrimSpace(strings.TrimRight(reader.Attribute(i), "\x00"))
			if val == "" {
				continue
			}
			body[name] = val
		}

		for _, attr := range nameAttributes {
			if val, ok := body[attr].(string); ok {
				body["name"] = map[string]any{"default": val}
				break
			}
		}

		encoded, err := json.Marshal(body)
		if err != nil {
			skipped++
			continue
		}
		bodies = append(bodies, encoded)
	}

	if skipped > 0 {
		zap.L().Debug("shape: skipped shapefile records",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	return bodies, nil
}
