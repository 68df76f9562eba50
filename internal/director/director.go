// Package director drives a HouseBuilder through fixed, named plans.
// A Director holds no state; the same plan applied to different builders
// yields different houses because each builder applies its own rules.
package director

import (
	"fmt"

	"github.com/mesh-intelligence/housebuilder/internal/builder"
	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

// Plan is a named, fixed sequence of builder calls.
type Plan struct {
	Name    string // Lookup key (types.PlanBasic, types.PlanFamily).
	Title   string // Human-readable name, e.g. "Basic House".
	Summary string // Menu description of the literal arguments.
	steps   func(types.HouseBuilder) types.HouseBuilder
}

// plans lists the available plans in menu order.
var plans = []Plan{
	{
		Name:    types.PlanBasic,
		Title:   "Basic House",
		Summary: "4 walls, 1 door, 4 windows",
		steps: func(b types.HouseBuilder) types.HouseBuilder {
			return b.SetWalls(4).SetDoors(1).SetWindows(4)
		},
	},
	{
		Name:    types.PlanFamily,
		Title:   "Family House",
		Summary: "6 walls, 2 doors, 8 windows + garage + garden",
		steps: func(b types.HouseBuilder) types.HouseBuilder {
			return b.SetWalls(6).SetDoors(2).SetWindows(8).AddGarage().AddGarden()
		},
	},
}

// Plans returns the available plans in menu order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// Lookup returns the plan with the given name.
// Returns a wrapped types.ErrPlanUnknown if no such plan exists.
func Lookup(name string) (Plan, error) {
	for _, p := range plans {
		if p.Name == name {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w %q", types.ErrPlanUnknown, name)
}

// Director applies plans to builders.
type Director struct{}

// New returns a Director.
func New() Director {
	return Director{}
}

// Apply runs the plan's steps on b and returns the finished house.
func (Director) Apply(p Plan, b types.HouseBuilder) types.House {
	return p.steps(b).Build()
}

// BuildBasicHouse builds 4 walls, 1 door, and 4 windows.
func (d Director) BuildBasicHouse(b types.HouseBuilder) types.House {
	return d.Apply(plans[0], b)
}

// BuildFamilyHouse builds 6 walls, 2 doors, 8 windows, a garage, and a garden.
func (d Director) BuildFamilyHouse(b types.HouseBuilder) types.House {
	return d.Apply(plans[1], b)
}

// Comparison is the house one builder kind produced for a plan.
type Comparison struct {
	Builder string
	House   types.House
}

// Compare applies p to a fresh builder of every known kind, in menu order.
func (d Director) Compare(p Plan) []Comparison {
	kinds := builder.Kinds()
	out := make([]Comparison, 0, len(kinds))
	for _, kind := range kinds {
		b, err := builder.New(kind)
		if err != nil {
			// Kinds only lists constructible builders.
			panic(err)
		}
		out = append(out, Comparison{Builder: kind, House: d.Apply(p, b)})
	}
	return out
}
