package gid

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Parts is a decomposed compound record identifier.
type Parts struct {
	Source string
	Layer  string
	ID     string
}

// Parse splits a compound identifier of the form "source:layer:id" into its
// parts. The id segment may itself contain colons.
func Parse(compound string) (Parts, error) {
	segs := strings.SplitN(compound, ":", 3)
	if len(segs) < 3 || segs[0] == "" || segs[1] == "" || segs[2] == "" {
		return Parts{}, eris.Errorf("gid: malformed compound id %q", compound)
	}
	return Parts{Source: segs[0], Layer: segs[1], ID: segs[2]}, nil
}

// Build composes the canonical global identifier string.
func Build(source, layer, id string) string {
	return fmt.Sprintf("%s:%s:%s", source, layer, id)
}

// String returns the canonical global identifier for p.
func (p Parts) String() string {
	return Build(p.Source, p.Layer, p.ID)
}
