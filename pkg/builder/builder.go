// Package builder provides the public API for creating house builders.
// It exposes the factory functions while keeping the builder
// implementations internal.
package builder

import (
	"github.com/mesh-intelligence/housebuilder/internal/builder"
	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

// New returns a fresh builder of the given kind (types.BuilderSimple or
// types.BuilderFancy). Unknown kinds return a wrapped types.ErrBuilderUnknown.
//
// Example:
//
//	b, err := builder.New(types.BuilderFancy)
//	if err != nil {
//	    return err
//	}
//	house := b.SetWalls(4).SetDoors(1).SetWindows(4).Build()
func New(kind string) (types.HouseBuilder, error) {
	return builder.New(kind)
}

// Kinds returns the known builder kinds in menu order.
func Kinds() []string {
	return builder.Kinds()
}
