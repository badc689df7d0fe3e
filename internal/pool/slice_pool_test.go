package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInt32Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetInt32Slice(100)
		defer cleanup()

		require.Equal(t, 100, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("reuses pooled slice when capacity sufficient", func(t *testing.T) {
		slice1, cleanup1 := GetInt32Slice(50)
		ptr1 := &slice1[0]
		cleanup1()

		slice2, cleanup2 := GetInt32Slice(50)
		defer cleanup2()
		ptr2 := &slice2[0]

		require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetInt32Slice(10)
		cleanup1()

		slice2, cleanup2 := GetInt32Slice(1000)
		defer cleanup2()

		require.Equal(t, 1000, len(slice2))
	})
}

func TestGetInt64Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetInt64Slice(100)
		defer cleanup()

		require.Equal(t, 100, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("reuses pooled slice when capacity sufficient", func(t *testing.T) {
		slice1, cleanup1 := GetInt64Slice(50)
		ptr1 := &slice1[0]
		cleanup1()

		slice2, cleanup2 := GetInt64Slice(50)
		defer cleanup2()
		ptr2 := &slice2[0]

		require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetInt64Slice(10)
		cleanup1()

		slice2, cleanup2 := GetInt64Slice(1000)
		defer cleanup2()

		require.Equal(t, 1000, len(slice2))
	})
}

func TestGetNameScratch(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		buf, cleanup := GetNameScratch()
		defer cleanup()

		require.Equal(t, 0, len(buf))
	})

	t.Run("cleanup clears before returning to pool", func(t *testing.T) {
		buf, cleanup := GetNameScratch()
		buf = append(buf, "cpu.usage"...)
		require.Equal(t, "cpu.usage", string(buf))
		cleanup()

		buf2, cleanup2 := GetNameScratch()
		defer cleanup2()
		require.Equal(t, 0, len(buf2), "scratch must be cleared across reuse")
	})
}
