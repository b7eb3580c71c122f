package countrycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlpha2_Alpha2Input(t *testing.T) {
	code, ok := Alpha2("US")
	assert.True(t, ok)
	assert.Equal(t, "US", code)
}

func TestAlpha2_Alpha3Input(t *testing.T) {
	for in, want := range map[string]string{
		"USA": "US",
		"GBR": "GB",
		"DEU": "DE",
		"NZL": "NZ",
	} {
		code, ok := Alpha2(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, want, code, "input %q", in)
	}
}

func TestAlpha2_CaseAndWhitespace(t *testing.T) {
	code, ok := Alpha2("  fra ")
	assert.True(t, ok)
	assert.Equal(t, "FR", code)
}

func TestAlpha2_NumericInput(t *testing.T) {
	code, ok := Alpha2("276")
	assert.True(t, ok)
	assert.Equal(t, "DE", code)
}

func TestAlpha2_Dependency(t *testing.T) {
	code, ok := Alpha2("PRI")
	assert.True(t, ok)
	assert.Equal(t, "PR", code)
}

func TestAlpha2_Unknown(t *testing.T) {
	for _, in := range []string{"", "   ", "1", "ABCD", "not a code", "??"} {
		_, ok := Alpha2(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestAlpha2_WellFormedButNotACountry(t *testing.T) {
	// These parse as regions but are unassigned or user-assigned and must
	// never yield a country code.
	for _, in := range []string{"ZZ", "QZ", "XX", "XXX", "001"} {
		_, ok := Alpha2(in)
		assert.False(t, ok, "input %q", in)
	}
}
