package document

import (
	"encoding/json"
	"math"
	"strconv"
)

// Coordinate decodes a JSON coordinate that may arrive as a number or a
// numeric string. Unparseable values decode to NaN rather than failing the
// whole document.
type Coordinate float64

// UnmarshalJSON implements json.Unmarshaler.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*c = Coordinate(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, perr := strconv.ParseFloat(s, 64); perr == nil {
			*c = Coordinate(parsed)
			return nil
		}
	}
	*c = Coordinate(math.NaN())
	return nil
}

// Float returns the coordinate as a float64.
func (c Coordinate) Float() float64 { return float64(c) }

// CenterPoint is a document's geographic center.
type CenterPoint struct {
	Lat Coordinate `json:"lat"`
	Lon Coordinate `json:"lon"`
}

// Valid reports whether both coordinates parsed to finite numbers.
func (p CenterPoint) Valid() bool {
	lat, lon := float64(p.Lat), float64(p.Lon)
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) && !math.IsNaN(lon) && !math.IsInf(lon, 0)
}

// BoundingBox is a document-supplied bounding box. Edge ordering is not
// validated here; downstream bbox math must tolerate degenerate boxes.
type BoundingBox struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// Name holds a document's name variants. Default may be a string or an array
// of strings depending on the source.
type Name struct {
	Default any `json:"default,omitempty"`
}

// Document is one raw place-search result. Optional sections are pointers so
// presence can be tested directly.
type Document struct {
	ID          string                     `json:"_id"`
	Source      string                     `json:"source,omitempty"`
	Layer       string                     `json:"layer,omitempty"`
	CenterPoint *CenterPoint               `json:"center_point,omitempty"`
	Name        *Name                      `json:"name,omitempty"`
	BoundingBox *BoundingBox               `json:"bounding_box,omitempty"`
	Addendum    map[string]json.RawMessage `json:"addendum,omitempty"`
	Debug       any                        `json:"debug,omitempty"`

	raw map[string]any
}

// UnmarshalJSON decodes the typed fields and additionally retains the full
// object so schema-driven property collection can see source-specific keys.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = Document(p)
	d.raw = raw
	return nil
}

// HasCenter reports whether the document carries a center point at all.
func (d *Document) HasCenter() bool {
	return d.CenterPoint != nil
}

// Field returns an arbitrary top-level field from the decoded document.
func (d *Document) Field(key string) (any, bool) {
	if d.raw == nil {
		return nil, false
	}
	v, ok := d.raw[key]
	return v, ok
}
