package gid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Simple(t *testing.T) {
	p, err := Parse("openstreetmap:venue:node/123")
	require.NoError(t, err)
	assert.Equal(t, "openstreetmap", p.Source)
	assert.Equal(t, "venue", p.Layer)
	assert.Equal(t, "node/123", p.ID)
}

func TestParse_IDWithColons(t *testing.T) {
	p, err := Parse("whosonfirst:locality:101748479:extra")
	require.NoError(t, err)
	assert.Equal(t, "whosonfirst", p.Source)
	assert.Equal(t, "locality", p.Layer)
	assert.Equal(t, "101748479:extra", p.ID)
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"", "justone", "two:parts", "::", "a::c", ":layer:id"} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestBuild(t *testing.T) {
	assert.Equal(t, "geonames:locality:42", Build("geonames", "locality", "42"))
}

func TestParts_String(t *testing.T) {
	p := Parts{Source: "osm", Layer: "venue", ID: "7"}
	assert.Equal(t, "osm:venue:7", p.String())
}

func TestParse_RoundTrip(t *testing.T) {
	in := "openaddresses:address:us/ny/city_of_new_york:1a2b"
	p, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, in, p.String())
}
