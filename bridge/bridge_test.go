package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanforge/nbtgo/tag"
)

type Inner struct {
	Facing string
}

type Player struct {
	Name    string
	Health  int16
	Flying  bool
	Pos     []float64
	Inv     []int32
	Bytes   []int8
	Nested  Inner
	Tags    map[string]string
	Skipped string `nbt:"-"`
}

func TestMarshalStructRoundTrip(t *testing.T) {
	p := Player{
		Name:   "Steve",
		Health: 20,
		Flying: true,
		Pos:    []float64{1.5, 64.0, -2.25},
		Inv:    []int32{1, 2, 3},
		Bytes:  []int8{1, 2, 3},
		Nested: Inner{Facing: "north"},
		Tags:   map[string]string{"team": "red"},
	}

	v, err := Marshal(p)
	require.NoError(t, err)
	require.Equal(t, tag.Compound, v.Tag())

	var out Player
	require.NoError(t, Unmarshal(v, &out))

	require.Equal(t, p, out)
}

func TestMarshalChoosesSpecializedArrayTags(t *testing.T) {
	type S struct {
		B []int8
		I []int32
		L []int64
	}
	v, err := Marshal(S{B: []int8{1}, I: []int32{2}, L: []int64{3}})
	require.NoError(t, err)

	byName := map[string]tag.Tag{}
	for _, e := range v.Compound {
		byName[e.Name] = e.Tag()
	}
	require.Equal(t, tag.ByteArray, byName["B"])
	require.Equal(t, tag.IntArray, byName["I"])
	require.Equal(t, tag.LongArray, byName["L"])
}

func TestMarshalRejectsScalarRoot(t *testing.T) {
	_, err := Marshal(42)
	require.Error(t, err)
}

func TestMarshalRejectsNonStringMapKey(t *testing.T) {
	_, err := Marshal(map[int]int{1: 2})
	require.Error(t, err)
}

func TestMarshalMap(t *testing.T) {
	v, err := Marshal(map[string]int32{"a": 1, "b": 2})
	require.NoError(t, err)
	require.Equal(t, tag.Compound, v.Tag())
	require.Len(t, v.Compound, 2)
}

func TestMarshalOmitemptyPointerField(t *testing.T) {
	type S struct {
		Name *string `nbt:"name,omitempty"`
	}
	v, err := Marshal(S{})
	require.NoError(t, err)
	require.Empty(t, v.Compound)
}
