// Package builder implements the two HouseBuilder variants.
//
// SimpleBuilder stores every count as given. FancyBuilder reinforces the
// walls (two extra) and doubles the windows for better light. Both share
// the garage and garden behavior and the detach-and-reset semantics of
// Build.
package builder

import (
	"fmt"

	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

// kinds lists the builder kinds in menu order.
var kinds = []string{types.BuilderSimple, types.BuilderFancy}

// Kinds returns the known builder kinds in menu order.
func Kinds() []string {
	out := make([]string, len(kinds))
	copy(out, kinds)
	return out
}

// New returns a fresh builder of the given kind.
// Returns a wrapped types.ErrBuilderUnknown for unrecognized kinds.
func New(kind string) (types.HouseBuilder, error) {
	switch kind {
	case types.BuilderSimple:
		return NewSimple(), nil
	case types.BuilderFancy:
		return NewFancy(), nil
	default:
		return nil, fmt.Errorf("%w %q", types.ErrBuilderUnknown, kind)
	}
}

// draft holds the house under construction. It is embedded by value in
// each builder so the builder owns it exclusively.
type draft struct {
	house types.House
}

// take hands the current house to the caller and starts a new one.
func (d *draft) take() types.House {
	h := d.house
	d.house = types.House{}
	return h
}

// titles maps builder kinds to display names.
var titles = map[string]string{
	types.BuilderSimple: "Simple Builder",
	types.BuilderFancy:  "Fancy Builder",
}

// Title returns the display name for kind, or kind itself if unknown.
func Title(kind string) string {
	if t, ok := titles[kind]; ok {
		return t
	}
	return kind
}
