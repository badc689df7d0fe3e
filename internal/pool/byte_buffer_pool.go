package pool

import "sync"

// DocumentBufferDefaultSize is the default size of the ByteBuffer obtained
// from the pool for one encode/decode pass over a single NBT document
// (player data, a single chunk's payload).
const (
	DocumentBufferDefaultSize  = 1024 * 16       // 16KiB
	DocumentBufferMaxThreshold = 1024 * 128      // 128KiB
	RegionBufferDefaultSize    = 1024 * 1024     // 1MiB, 256 sectors of 4KiB
	RegionBufferMaxThreshold   = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a reusable byte-slice owner, borrowed from a pool for the
// lifetime of one document/chunk write and returned afterward.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

func newByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers, grow by DocumentBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	// Calculate growth size based on current buffer size
	growBy := DocumentBufferDefaultSize
	if cap(bb.B) > 4*DocumentBufferDefaultSize {
		// For larger buffers, grow by 25% to balance memory and reallocation cost
		growBy = cap(bb.B) / 4
	}

	// Ensure we grow enough for at least the required bytes
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	// Allocate new buffer with increased capacity
	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
// This satisfies io.Writer, so a ByteBuffer can be passed directly to
// stream.WriteValue.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// byteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers. The pool can be
// configured with a maximum size threshold to avoid retaining overly large
// buffers that could lead to memory bloat.
type byteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

func newByteBufferPool(defaultSize, maxThreshold int) *byteBufferPool {
	return &byteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return newByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *byteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *byteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	documentDefaultPool = newByteBufferPool(DocumentBufferDefaultSize, DocumentBufferMaxThreshold)
	regionDefaultPool   = newByteBufferPool(RegionBufferDefaultSize, RegionBufferMaxThreshold)
)

// GetDocumentBuffer retrieves a ByteBuffer from the default document pool,
// used while serializing one NBT document before compression.
func GetDocumentBuffer() *ByteBuffer {
	return documentDefaultPool.Get()
}

// PutDocumentBuffer returns a ByteBuffer to the default document pool.
func PutDocumentBuffer(bb *ByteBuffer) {
	documentDefaultPool.Put(bb)
}

// GetRegionBuffer retrieves a ByteBuffer from the default region pool, used
// by Region.WriteChunk while assembling a sector-aligned chunk payload.
func GetRegionBuffer() *ByteBuffer {
	return regionDefaultPool.Get()
}

// PutRegionBuffer returns a ByteBuffer to the default region pool.
func PutRegionBuffer(bb *ByteBuffer) {
	regionDefaultPool.Put(bb)
}
