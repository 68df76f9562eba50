package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

func TestSimpleBuilder_StoresCountsAsGiven(t *testing.T) {
	tests := []struct {
		walls, doors, windows int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{4, 1, 4},
		{10, 5, 20},
		{123, 45, 678},
	}
	for _, tt := range tests {
		got := NewSimple().SetWalls(tt.walls).SetDoors(tt.doors).SetWindows(tt.windows).Build()
		want := types.House{Walls: tt.walls, Doors: tt.doors, Windows: tt.windows}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("simple(%d,%d,%d) mismatch (-want +got):\n%s", tt.walls, tt.doors, tt.windows, diff)
		}
	}
}

func TestFancyBuilder_AppliesRules(t *testing.T) {
	tests := []struct {
		walls, doors, windows int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{4, 1, 4},
		{6, 2, 8},
		{10, 5, 20},
	}
	for _, tt := range tests {
		got := NewFancy().SetWalls(tt.walls).SetDoors(tt.doors).SetWindows(tt.windows).Build()
		want := types.House{Walls: tt.walls + 2, Doors: tt.doors, Windows: tt.windows * 2}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("fancy(%d,%d,%d) mismatch (-want +got):\n%s", tt.walls, tt.doors, tt.windows, diff)
		}
	}
}

func TestBuilders_GarageAndGarden(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			b, err := New(kind)
			require.NoError(t, err)

			h := b.AddGarage().Build()
			assert.True(t, h.HasGarage)
			assert.False(t, h.HasGarden)

			h = b.AddGarden().Build()
			assert.False(t, h.HasGarage)
			assert.True(t, h.HasGarden)

			h = b.AddGarden().AddGarage().Build()
			assert.True(t, h.HasGarage)
			assert.True(t, h.HasGarden)
		})
	}
}

func TestBuilders_OmittedFieldsKeepZeroValue(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			b, err := New(kind)
			require.NoError(t, err)

			h := b.SetDoors(3).Build()
			assert.Equal(t, types.House{Doors: 3}, h)

			assert.Equal(t, types.House{}, b.Build(), "build with no calls yields an empty house")
		})
	}
}

func TestBuilders_OrderDoesNotMatter(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			a, _ := New(kind)
			b, _ := New(kind)

			h1 := a.SetWalls(3).SetDoors(2).SetWindows(5).AddGarage().Build()
			h2 := b.AddGarage().SetWindows(5).SetDoors(2).SetWalls(3).Build()
			assert.Equal(t, h1, h2)
		})
	}
}

func TestBuilders_BuildDetachesHouse(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			b, err := New(kind)
			require.NoError(t, err)

			first := b.SetWalls(3).AddGarage().Build()
			b.SetWalls(9).AddGarden()

			second := b.Build()

			// The first house must not observe mutations made after Build.
			assert.False(t, first.HasGarden)
			assert.True(t, first.HasGarage)
			assert.NotEqual(t, first.Walls, second.Walls)
			assert.False(t, second.HasGarage, "reset builder must not carry the garage over")
			assert.True(t, second.HasGarden)
		})
	}
}

func TestSimpleBuilder_DetachmentKeepsWallCount(t *testing.T) {
	s := NewSimple()
	r1 := s.SetWalls(3).Build()
	s.SetWalls(9)
	assert.Equal(t, 3, r1.Walls)
}

func TestBuilders_AcceptNegativeValues(t *testing.T) {
	simple := NewSimple().SetWalls(-3).SetDoors(-1).SetWindows(-2).Build()
	assert.Equal(t, types.House{Walls: -3, Doors: -1, Windows: -2}, simple)

	fancy := NewFancy().SetWalls(-3).SetDoors(-1).SetWindows(-2).Build()
	assert.Equal(t, types.House{Walls: -1, Doors: -1, Windows: -4}, fancy)
}

func TestBuilders_ChainReturnsSameInstance(t *testing.T) {
	s := NewSimple()
	assert.Same(t, s, s.SetWalls(1))
	assert.Same(t, s, s.AddGarden())

	f := NewFancy()
	assert.Same(t, f, f.SetWindows(1))
	assert.Same(t, f, f.AddGarage())
}

func TestNew(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		b, err := New(types.BuilderSimple)
		require.NoError(t, err)
		assert.IsType(t, &SimpleBuilder{}, b)
	})

	t.Run("fancy", func(t *testing.T) {
		b, err := New(types.BuilderFancy)
		require.NoError(t, err)
		assert.IsType(t, &FancyBuilder{}, b)
	})

	t.Run("unknown kind", func(t *testing.T) {
		b, err := New("wooden")
		assert.Nil(t, b)
		require.ErrorIs(t, err, types.ErrBuilderUnknown)
		assert.Contains(t, err.Error(), `"wooden"`)
	})
}

func TestKinds_ReturnsCopy(t *testing.T) {
	k := Kinds()
	require.Equal(t, []string{types.BuilderSimple, types.BuilderFancy}, k)
	k[0] = "mutated"
	assert.Equal(t, types.BuilderSimple, Kinds()[0])
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Simple Builder", Title(types.BuilderSimple))
	assert.Equal(t, "Fancy Builder", Title(types.BuilderFancy))
	assert.Equal(t, "wooden", Title("wooden"))
}
