package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenario6(t *testing.T) {
	p := New(5, 20)
	require.Len(t, p.Words(), 2, "ceil(20 / (64/5)) = ceil(20/12) = 2")

	p.Set(0, 17)
	p.Set(1, 3)
	p.Set(19, 31)

	v, ok := p.Get(0)
	require.True(t, ok)
	require.Equal(t, uint64(17), v)

	v, ok = p.Get(1)
	require.True(t, ok)
	require.Equal(t, uint64(3), v)

	v, ok = p.Get(2)
	require.True(t, ok)
	require.Equal(t, uint64(0), v)

	v, ok = p.Get(19)
	require.True(t, ok)
	require.Equal(t, uint64(31), v)

	_, ok = p.Get(20)
	require.False(t, ok, "out-of-range index must report the sentinel")
}

func TestSetMasksOverflowBits(t *testing.T) {
	p := New(4, 4)
	p.Set(0, 0xFF) // only the low 4 bits should survive
	v, _ := p.Get(0)
	require.Equal(t, uint64(0xF), v)
}

func TestSetDoesNotDisturbNeighbors(t *testing.T) {
	p := New(4, 4)
	p.Set(0, 0xA)
	p.Set(1, 0xB)
	p.Set(2, 0xC)

	v0, _ := p.Get(0)
	v1, _ := p.Get(1)
	v2, _ := p.Get(2)
	require.Equal(t, uint64(0xA), v0)
	require.Equal(t, uint64(0xB), v1)
	require.Equal(t, uint64(0xC), v2)
}

func TestResizeRebuildsAtNewWidth(t *testing.T) {
	p := New(4, 5)
	for i := 0; i < 5; i++ {
		p.Set(i, uint64(i))
	}

	p.Resize(8)
	require.Equal(t, 8, p.BitsPerEntry())
	for i := 0; i < 5; i++ {
		v, ok := p.Get(i)
		require.True(t, ok)
		require.Equal(t, uint64(i), v)
	}
}

func TestFromWordsValidatesLength(t *testing.T) {
	_, err := FromWords(5, 20, make([]uint64, 1))
	require.Error(t, err, "wrong word count for the declared length must be rejected")

	p, err := FromWords(5, 20, make([]uint64, 2))
	require.NoError(t, err)
	require.Equal(t, 20, p.Len())
}
