package addendum

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// Decode parses one opaque addendum blob for a single namespace. Values are
// stored as JSON-encoded strings; some sources write the JSON object inline
// instead, so both forms are accepted.
func Decode(encoded json.RawMessage) (any, error) {
	var s string
	if err := json.Unmarshal(encoded, &s); err == nil {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, eris.Wrap(err, "addendum: decode string blob")
		}
		return decoded, nil
	}

	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, eris.Wrap(err, "addendum: decode blob")
	}
	return decoded, nil
}
