package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_MustWriteAndBytes(t *testing.T) {
	bb := newByteBuffer(64)

	bb.MustWrite([]byte("hello"))
	bb.MustWrite([]byte(" world"))

	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := newByteBuffer(64)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := newByteBuffer(64)
	bb.MustWrite([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_GrowSufficientCapacity(t *testing.T) {
	bb := newByteBuffer(DocumentBufferDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(100)

	require.Equal(t, originalCap, cap(bb.B), "should not reallocate when capacity is sufficient")
}

func TestByteBuffer_GrowPreservesData(t *testing.T) {
	bb := newByteBuffer(DocumentBufferDefaultSize)
	testData := []byte("important data that must be preserved")
	bb.MustWrite(testData)

	bb.Grow(DocumentBufferDefaultSize * 2) // force reallocation

	require.Equal(t, testData, bb.Bytes())
}

func TestByteBuffer_GrowLargeBuffer(t *testing.T) {
	bb := newByteBuffer(DocumentBufferDefaultSize)
	bb.B = make([]byte, 4*DocumentBufferDefaultSize+1024)

	bb.Grow(2048)

	require.GreaterOrEqual(t, cap(bb.B), 4*DocumentBufferDefaultSize+1024+2048)
}

func TestGetPutDocumentBuffer(t *testing.T) {
	bb := GetDocumentBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), DocumentBufferDefaultSize)

	bb.MustWrite([]byte("test data"))
	PutDocumentBuffer(bb)
	require.Equal(t, 0, bb.Len(), "Put should reset the buffer")
}

func TestPutDocumentBuffer_NilBuffer(t *testing.T) {
	require.NotPanics(t, func() {
		PutDocumentBuffer(nil)
	})
}

func TestGetPutRegionBuffer(t *testing.T) {
	bb := GetRegionBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), RegionBufferDefaultSize)

	bb.MustWrite([]byte("test data"))
	PutRegionBuffer(bb)
	require.Equal(t, 0, bb.Len(), "Put should reset the buffer")
}

func TestRegionBuffer_DiscardsOverThreshold(t *testing.T) {
	bb := GetRegionBuffer()
	bb.Grow(RegionBufferMaxThreshold * 2)
	require.Greater(t, cap(bb.B), RegionBufferMaxThreshold)

	PutRegionBuffer(bb)

	bb2 := GetRegionBuffer()
	require.LessOrEqual(t, cap(bb2.B), RegionBufferMaxThreshold, "should not reuse an overly large buffer")
}

func TestDefaultPools_Independence(t *testing.T) {
	docBuf := GetDocumentBuffer()
	regionBuf := GetRegionBuffer()

	require.GreaterOrEqual(t, cap(docBuf.B), DocumentBufferDefaultSize)
	require.GreaterOrEqual(t, cap(regionBuf.B), RegionBufferDefaultSize)

	PutDocumentBuffer(docBuf)
	PutRegionBuffer(regionBuf)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				bb := GetDocumentBuffer()
				bb.MustWrite([]byte("data"))
				require.Equal(t, 4, bb.Len())
				PutDocumentBuffer(bb)
			}
		}()
	}

	wg.Wait()
}
