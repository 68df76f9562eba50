package builder

import "github.com/mesh-intelligence/housebuilder/pkg/types"

// SimpleBuilder builds ordinary houses: every count is stored as given.
type SimpleBuilder struct {
	draft
}

var _ types.HouseBuilder = (*SimpleBuilder)(nil)

// NewSimple returns a SimpleBuilder with an empty house.
func NewSimple() *SimpleBuilder {
	return &SimpleBuilder{}
}

func (b *SimpleBuilder) SetWalls(count int) types.HouseBuilder {
	b.house.Walls = count
	return b
}

func (b *SimpleBuilder) SetDoors(count int) types.HouseBuilder {
	b.house.Doors = count
	return b
}

func (b *SimpleBuilder) SetWindows(count int) types.HouseBuilder {
	b.house.Windows = count
	return b
}

func (b *SimpleBuilder) AddGarage() types.HouseBuilder {
	b.house.HasGarage = true
	return b
}

func (b *SimpleBuilder) AddGarden() types.HouseBuilder {
	b.house.HasGarden = true
	return b
}

func (b *SimpleBuilder) Build() types.House {
	return b.take()
}
