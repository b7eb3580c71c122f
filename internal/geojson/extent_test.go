package geojson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/place-export/internal/document"
)

func TestExtentPoints_CenterOnly(t *testing.T) {
	records := []Properties{
		{keyLng: 1.0, keyLat: 2.0},
		{keyLng: -3.0, keyLat: 4.0},
	}
	points := extentPoints(records)
	assert.Equal(t, []ExtentPoint{{Lng: 1, Lat: 2}, {Lng: -3, Lat: 4}}, points)
}

func TestExtentPoints_BoundingBoxCorners(t *testing.T) {
	records := []Properties{
		{
			keyLng: 0.0, keyLat: 0.0,
			keyBoundingBox: document.BoundingBox{MinLon: -10, MinLat: -5, MaxLon: 10, MaxLat: 5},
		},
	}
	points := extentPoints(records)
	assert.Equal(t, []ExtentPoint{{Lng: -10, Lat: -5}, {Lng: 10, Lat: 5}}, points)
}

func TestExtentPoints_MixedLength(t *testing.T) {
	records := []Properties{
		{keyLng: 1.0, keyLat: 1.0},
		{
			keyLng: 2.0, keyLat: 2.0,
			keyBoundingBox: document.BoundingBox{MinLon: 0, MinLat: 0, MaxLon: 4, MaxLat: 4},
		},
		{keyLng: 3.0, keyLat: 3.0},
	}
	points := extentPoints(records)
	assert.Len(t, points, 4)
}

func TestComputeBBox(t *testing.T) {
	bbox, err := computeBBox([]ExtentPoint{
		{Lng: 0, Lat: 0},
		{Lng: 10, Lat: 10},
		{Lng: -5, Lat: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{-5, 0, 10, 10}, bbox)
}

func TestComputeBBox_SinglePoint(t *testing.T) {
	bbox, err := computeBBox([]ExtentPoint{{Lng: 7, Lat: -3}})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, -3, 7, -3}, bbox)
}

func TestComputeBBox_Empty(t *testing.T) {
	_, err := computeBBox(nil)
	assert.Error(t, err)
}

func TestComputeBBox_NonFinite(t *testing.T) {
	_, err := computeBBox([]ExtentPoint{{Lng: math.NaN(), Lat: 0}})
	assert.Error(t, err)

	_, err = computeBBox([]ExtentPoint{{Lng: 0, Lat: math.Inf(1)}})
	assert.Error(t, err)
}

func TestComputeBBox_DegenerateBoxTolerated(t *testing.T) {
	// Inverted edges still produce a rectangle; ordering is not validated
	// upstream.
	bbox, err := computeBBox([]ExtentPoint{
		{Lng: 10, Lat: 5},
		{Lng: -10, Lat: -5},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{-10, -5, 10, 5}, bbox)
}
