package types

import "errors"

// Builder kinds accepted by builder.New.
const (
	BuilderSimple = "simple"
	BuilderFancy  = "fancy"
)

// knownBuilders lists the builder kinds that Config.Validate accepts.
var knownBuilders = map[string]bool{
	BuilderSimple: true,
	BuilderFancy:  true,
}

// IsValidBuilder reports whether kind names a known builder.
func IsValidBuilder(kind string) bool {
	return knownBuilders[kind]
}

// HouseBuilder accumulates attribute values into a House and hands it off.
// Every mutator returns the same builder so calls chain left to right.
// Fields never set keep their zero value.
type HouseBuilder interface {
	// SetWalls records the wall count, subject to the builder's rules.
	SetWalls(count int) HouseBuilder

	// SetDoors records the door count, subject to the builder's rules.
	SetDoors(count int) HouseBuilder

	// SetWindows records the window count, subject to the builder's rules.
	SetWindows(count int) HouseBuilder

	// AddGarage marks the house as having a garage.
	AddGarage() HouseBuilder

	// AddGarden marks the house as having a garden.
	AddGarden() HouseBuilder

	// Build detaches the house under construction and returns it. The
	// builder starts over with an empty house and may be reused at once.
	// Build never validates; any integer given to a setter is kept.
	Build() House
}

// Lookup errors for builders and plans.
var (
	ErrBuilderUnknown = errors.New("unknown builder")
	ErrPlanUnknown    = errors.New("unknown plan")
)
