package types

import (
	"fmt"
	"strings"
)

// House is the composite record assembled by a HouseBuilder.
// The zero value is an empty house with no walls, doors, windows,
// garage, or garden.
type House struct {
	Walls     int  `json:"walls" yaml:"walls"`
	Doors     int  `json:"doors" yaml:"doors"`
	Windows   int  `json:"windows" yaml:"windows"`
	HasGarage bool `json:"has_garage" yaml:"has_garage"`
	HasGarden bool `json:"has_garden" yaml:"has_garden"`
}

// Describe returns a one-line summary of the house. Optional features are
// appended in a fixed order: garage first, then garden.
func (h House) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "House with %d walls, %d doors, %d windows", h.Walls, h.Doors, h.Windows)
	if h.HasGarage {
		b.WriteString(", garage")
	}
	if h.HasGarden {
		b.WriteString(", garden")
	}
	return b.String()
}
