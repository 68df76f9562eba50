package builder

import "github.com/mesh-intelligence/housebuilder/pkg/types"

// Extra walls added by FancyBuilder.SetWalls and the window multiplier
// applied by FancyBuilder.SetWindows.
const (
	reinforcedWalls  = 2
	windowMultiplier = 2
)

// FancyBuilder builds luxury houses. Walls are reinforced with two extra,
// windows are doubled, and doors are stored as given.
type FancyBuilder struct {
	draft
}

var _ types.HouseBuilder = (*FancyBuilder)(nil)

// NewFancy returns a FancyBuilder with an empty house.
func NewFancy() *FancyBuilder {
	return &FancyBuilder{}
}

// SetWalls stores count plus the reinforced walls.
func (b *FancyBuilder) SetWalls(count int) types.HouseBuilder {
	b.house.Walls = count + reinforcedWalls
	return b
}

// SetDoors stores count as given.
func (b *FancyBuilder) SetDoors(count int) types.HouseBuilder {
	b.house.Doors = count
	return b
}

// SetWindows stores count times the window multiplier.
func (b *FancyBuilder) SetWindows(count int) types.HouseBuilder {
	b.house.Windows = count * windowMultiplier
	return b
}

func (b *FancyBuilder) AddGarage() types.HouseBuilder {
	b.house.HasGarage = true
	return b
}

func (b *FancyBuilder) AddGarden() types.HouseBuilder {
	b.house.HasGarden = true
	return b
}

func (b *FancyBuilder) Build() types.House {
	return b.take()
}
