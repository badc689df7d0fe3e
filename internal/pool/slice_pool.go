package pool

import "sync"

// Slice pools for efficient reuse of typed slices when decoding specialized
// primitive arrays (ByteArray/IntArray/LongArray) and the bridge's
// name-buffer scratch space.
var (
	int32SlicePool = sync.Pool{
		New: func() any { return &[]int32{} },
	}
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
)

// GetInt32Slice retrieves and resizes an int32 slice from the pool.
//
// The returned slice will have the exact length specified by size. If the
// pooled slice has insufficient capacity, a new slice is allocated. The
// caller must call the returned cleanup function to return the slice.
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int32SlicePool.Put(ptr) }
}

// GetInt64Slice retrieves and resizes an int64 slice from the pool.
//
// The returned slice will have the exact length specified by size. If the
// pooled slice has insufficient capacity, a new slice is allocated. The
// caller must call the returned cleanup function to return the slice.
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int64SlicePool.Put(ptr) }
}

// GetNameScratch retrieves a reusable []byte scratch buffer for staging a
// compound entry's name during decode. The buffer starts empty, and the
// returned cleanup function truncates it to length zero before handing
// it back to the pool. Nothing in this module calls it at present; the
// bridge decodes names from an already-built value.Value tree.
func GetNameScratch() ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	return slice, func() { *ptr = slice[:0]; byteSlicePool.Put(ptr) }
}
