// Package countrycode canonicalizes country and dependency codes to ISO
// 3166-1 alpha-2.
package countrycode

import (
	"strings"

	"golang.org/x/text/language"
)

// Alpha2 maps an arbitrary country or dependency code (alpha-2, alpha-3, or
// UN M49 numeric) to its canonical two-letter code. Unknown or malformed
// codes return ok=false; this never fails hard.
func Alpha2(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}

	region, err := language.ParseRegion(code)
	if err != nil {
		return "", false
	}
	if !region.IsCountry() {
		// Well-formed but unassigned or user-assigned codes (ZZ, QZ, XX)
		// parse successfully; they must not produce a country code.
		return "", false
	}

	alpha := region.String()
	if len(alpha) != 2 {
		// Region parsed but has no alpha-2 form (private use, numeric-only).
		return "", false
	}
	return alpha, true
}
