package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddDeduplicates(t *testing.T) {
	p := New()
	stone := BlockState{Name: "minecraft:stone"}
	air := BlockState{Name: "minecraft:air"}

	i1 := p.Add(stone)
	i2 := p.Add(air)
	i3 := p.Add(BlockState{Name: "minecraft:stone"})

	require.Equal(t, i1, i3, "identical block states must dedup to the same index")
	require.NotEqual(t, i1, i2)
	require.Equal(t, 2, p.Len())
}

func TestAddDistinguishesProperties(t *testing.T) {
	p := New()
	i1 := p.Add(BlockState{Name: "minecraft:furnace", Properties: map[string]string{"facing": "north"}})
	i2 := p.Add(BlockState{Name: "minecraft:furnace", Properties: map[string]string{"facing": "south"}})
	require.NotEqual(t, i1, i2)
}

func TestPropertyKeyOrderIndependence(t *testing.T) {
	a := BlockState{Name: "x", Properties: map[string]string{"a": "1", "b": "2"}}
	b := BlockState{Name: "x", Properties: map[string]string{"b": "2", "a": "1"}}
	require.Equal(t, a.key(), b.key())
}

func TestBitsPerEntryGrowsWithLog2(t *testing.T) {
	require.Equal(t, MinBits, bitsFor(1))
	require.Equal(t, MinBits, bitsFor(16))
	require.Equal(t, 5, bitsFor(17))
	require.Equal(t, 5, bitsFor(32))
	require.Equal(t, 6, bitsFor(33))
}

func TestStorageWidensOnPaletteGrowth(t *testing.T) {
	s := NewStorage(20)
	require.Equal(t, MinBits, s.Indices().BitsPerEntry())

	for i := 0; i < 17; i++ {
		s.Set(i, BlockState{Name: "block" + string(rune('a'+i))})
	}
	require.Equal(t, 5, s.Indices().BitsPerEntry(), "17 distinct entries must widen past 4 bits")

	for i := 0; i < 17; i++ {
		got, ok := s.Get(i)
		require.True(t, ok)
		require.Equal(t, "block"+string(rune('a'+i)), got.Name)
	}
}
