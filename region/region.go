package region

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/rowanforge/nbtgo/compress"
	"github.com/rowanforge/nbtgo/errs"
	"github.com/rowanforge/nbtgo/internal/pool"
	"github.com/rowanforge/nbtgo/stream"
	"github.com/rowanforge/nbtgo/value"
	"github.com/rowanforge/nbtgo/wire"
)

// Storage is the random-access backing a Region needs: an *os.File
// satisfies this directly. Region never assumes a particular size
// up front — WriteAt past the current end is how sector allocation
// grows the file, exactly as it would on disk.
type Storage interface {
	io.ReaderAt
	io.WriterAt
}

// Region is an open .mca container: a Header plus the backing storage
// and an append-only sector allocator. At most one writer per region
// file is assumed, per spec.md §5.
type Region struct {
	storage    Storage
	header     *Header
	nextSector uint32
}

// Open reads the 8 KiB header from the start of s when size (the
// current length of s) is large enough to hold one, or initializes a
// fresh empty Header otherwise (a brand new region file). The append cursor is seeded from the
// furthest sector any existing chunk occupies.
func Open(s Storage, size int64) (*Region, error) {
	reg := &Region{storage: s, nextSector: 2}

	if size >= 2*sectorSize {
		h, err := ReadHeader(io.NewSectionReader(s, 0, 2*sectorSize))
		if err != nil {
			return nil, err
		}
		reg.header = h

		for _, loc := range h.Locations {
			if end := loc.SectorOffset + uint32(loc.SectorCount); end > reg.nextSector {
				reg.nextSector = end
			}
		}
	} else {
		reg.header = &Header{}
	}

	return reg, nil
}

// ReadChunk returns the decoded NBT document at chunk-local (x, z). ok
// is false when the chunk has never been written — spec.md §4.9 treats
// an absent chunk as a normal outcome, not an error.
func (reg *Region) ReadChunk(x, z int) (v value.Value, ok bool, err error) {
	idx := ChunkIndex(x, z)
	loc := reg.header.Locations[idx]
	if !loc.present() {
		return value.Value{}, false, nil
	}

	byteOffset := int64(loc.SectorOffset) * sectorSize
	lenBuf := make([]byte, 4)
	if _, err := reg.storage.ReadAt(lenBuf, byteOffset); err != nil {
		return value.Value{}, false, fmt.Errorf("%w: chunk length: %v", errs.ErrInvalidChunkHeader, err)
	}
	length := wire.Engine.Uint32(lenBuf)
	if length == 0 {
		return value.Value{}, false, fmt.Errorf("%w: zero-length chunk header", errs.ErrInvalidChunkHeader)
	}

	body := make([]byte, length)
	if _, err := reg.storage.ReadAt(body, byteOffset+4); err != nil {
		return value.Value{}, false, fmt.Errorf("%w: chunk body: %v", errs.ErrInvalidChunkHeader, err)
	}

	codec, err := compress.GetCodec(compress.CompressionType(body[0]))
	if err != nil {
		return value.Value{}, false, err
	}

	raw, err := codec.Decompress(body[1:])
	if err != nil {
		return value.Value{}, false, err
	}

	v, err = stream.ReadValue(bytes.NewReader(raw))
	if err != nil {
		return value.Value{}, false, err
	}

	return v, true, nil
}

// WriteChunk compresses v with ct and appends it as the payload for
// chunk-local (x, z), sector-aligning and allocating new sectors at the
// end of the file — spec.md §4.6's simplest, fragmentation-free
// allocation policy.
func (reg *Region) WriteChunk(x, z int, v value.Value, ct compress.CompressionType) error {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return err
	}

	doc := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(doc)
	if err := stream.WriteValue(doc, v); err != nil {
		return err
	}

	compressed, err := codec.Compress(doc.Bytes())
	if err != nil {
		return err
	}

	payloadLen := 1 + len(compressed) // compression byte + body
	total := 4 + payloadLen
	sectorsNeeded := uint32(ceilDiv(total, sectorSize))
	if sectorsNeeded > 255 {
		return fmt.Errorf("%w: chunk (%d, %d) needs %d sectors", errs.ErrChunkTooLarge, x, z, sectorsNeeded)
	}
	padded := int(sectorsNeeded) * sectorSize

	staging := pool.GetRegionBuffer()
	defer pool.PutRegionBuffer(staging)
	staging.Grow(padded)

	lenField := make([]byte, 4)
	wire.Engine.PutUint32(lenField, uint32(payloadLen))
	staging.MustWrite(lenField)
	staging.MustWrite([]byte{byte(ct)})
	staging.MustWrite(compressed)
	staging.MustWrite(make([]byte, padded-staging.Len())) // zero-pad to the sector boundary

	offset := reg.nextSector
	reg.nextSector += sectorsNeeded

	byteOffset := int64(offset) * sectorSize
	if _, err := reg.storage.WriteAt(staging.Bytes(), byteOffset); err != nil {
		return err
	}

	idx := ChunkIndex(x, z)
	reg.header.Locations[idx] = LocationEntry{SectorOffset: offset, SectorCount: uint8(sectorsNeeded)}
	reg.header.Timestamps[idx] = uint32(time.Now().Unix())

	return reg.flushHeader()
}

func (reg *Region) flushHeader() error {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, reg.header); err != nil {
		return err
	}
	_, err := reg.storage.WriteAt(buf.Bytes(), 0)
	return err
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
