package geojson

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/place-export/internal/document"
)

// ExtentPoint is a bare lng/lat pair used only for bounding-rectangle math;
// it never appears in output.
type ExtentPoint struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// extentPoints flattens per-record extent contributions into one ordered
// sequence: two opposite bounding-box corners when the record carries a
// bounding box, the center point otherwise.
func extentPoints(records []Properties) []ExtentPoint {
	points := make([]ExtentPoint, 0, len(records))
	for _, props := range records {
		if bb, ok := props[keyBoundingBox].(document.BoundingBox); ok {
			points = append(points,
				ExtentPoint{Lng: bb.MinLon, Lat: bb.MinLat},
				ExtentPoint{Lng: bb.MaxLon, Lat: bb.MaxLat},
			)
			continue
		}
		lng, lngOK := props[keyLng].(float64)
		lat, latOK := props[keyLat].(float64)
		if !lngOK || !latOK {
			continue
		}
		points = append(points, ExtentPoint{Lng: lng, Lat: lat})
	}
	return points
}

// computeBBox returns the [min_lon, min_lat, max_lon, max_lat] rectangle
// enclosing every point. Empty or non-finite input is an error; the caller
// treats that as "omit the collection bbox", never as a hard failure.
func computeBBox(points []ExtentPoint) ([]float64, error) {
	if len(points) == 0 {
		return nil, eris.New("geojson: no extent points")
	}

	bounds := geom.NewBounds(geom.XY)
	for _, p := range points {
		if !finite(p.Lng) || !finite(p.Lat) {
			return nil, eris.Errorf("geojson: non-finite extent point (%v, %v)", p.Lng, p.Lat)
		}
		bounds = bounds.Extend(geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat}))
	}

	return []float64{bounds.Min(0), bounds.Min(1), bounds.Max(0), bounds.Max(1)}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
