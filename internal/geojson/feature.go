// Package geojson converts raw place-search documents into GeoJSON
// FeatureCollections. Every failure mode degrades to omission plus a
// diagnostic; assembly never fails as a whole.
package geojson

import "encoding/json"

// Properties is the flat property record carried by one output feature.
type Properties map[string]any

// Feature is one GeoJSON feature with Point geometry.
type Feature struct {
	Type       string          `json:"type"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties Properties      `json:"properties"`
	BBox       []float64       `json:"bbox,omitempty"`
}

// FeatureCollection is the final output document.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
	BBox     []float64 `json:"bbox,omitempty"`
}

// Property keys owned by the core transform.
const (
	keyID          = "id"
	keyGID         = "gid"
	keyLayer       = "layer"
	keySource      = "source"
	keySourceID    = "source_id"
	keyLat         = "lat"
	keyLng         = "lng"
	keyName        = "name"
	keyBoundingBox = "bounding_box"
	keyCountryCode = "country_code"
	keyCountryA    = "country_a"
	keyDependencyA = "dependency_a"
	keyAddendum    = "addendum"
	keyDebug       = "debug"
)
