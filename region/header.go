// Package region implements the .mca region-file container: a fixed
// 8 KiB header (location + timestamp tables) followed by 4096-byte
// sector-aligned chunk payloads, as spec.md §4.6 describes. Header
// parsing follows the same "read a whole fixed-size structure, then
// validate" shape as the teacher's blob.NumericDecoder.parseHeader,
// adapted from a length-prefixed in-memory blob to two constant-size
// on-disk tables.
package region

import (
	"fmt"
	"io"

	"github.com/rowanforge/nbtgo/errs"
	"github.com/rowanforge/nbtgo/wire"
)

// ChunksPerRegion is the fixed 32x32 chunk grid every region file holds.
const ChunksPerRegion = 1024

// sectorSize is the on-disk allocation unit; both header tables are
// exactly one sector each.
const sectorSize = 4096

// LocationEntry is one entry of the region header's location table: the
// sector offset (24 bits) and sector count (8 bits) for one chunk's
// payload. A zero SectorOffset means the chunk has never been written.
type LocationEntry struct {
	SectorOffset uint32 // stored on the wire as a big-endian u24
	SectorCount  uint8
}

func (e LocationEntry) present() bool { return e.SectorOffset != 0 }

// Header is the region file's two header sectors: 1024 location entries
// followed by 1024 big-endian u32 timestamps.
type Header struct {
	Locations  [ChunksPerRegion]LocationEntry
	Timestamps [ChunksPerRegion]uint32
}

// ChunkIndex maps chunk-local coordinates to a header table slot, per
// spec.md §4.6: (x mod 32) + (z mod 32) * 32.
func ChunkIndex(x, z int) int {
	return mod32(x) + mod32(z)*32
}

func mod32(v int) int {
	m := v % 32
	if m < 0 {
		m += 32
	}
	return m
}

// ReadHeader reads both 4 KiB header sectors from the start of r.
func ReadHeader(r io.Reader) (*Header, error) {
	h := &Header{}

	locBuf := make([]byte, sectorSize)
	if _, err := io.ReadFull(r, locBuf); err != nil {
		return nil, fmt.Errorf("%w: region location table: %v", errs.ErrInvalidChunkHeader, err)
	}
	for i := range h.Locations {
		off := i * 4
		h.Locations[i] = LocationEntry{
			SectorOffset: uint32(locBuf[off])<<16 | uint32(locBuf[off+1])<<8 | uint32(locBuf[off+2]),
			SectorCount:  locBuf[off+3],
		}
	}

	tsBuf := make([]byte, sectorSize)
	if _, err := io.ReadFull(r, tsBuf); err != nil {
		return nil, fmt.Errorf("%w: region timestamp table: %v", errs.ErrInvalidChunkHeader, err)
	}
	for i := range h.Timestamps {
		h.Timestamps[i] = wire.Engine.Uint32(tsBuf[i*4:])
	}

	return h, nil
}

// WriteHeader writes both 4 KiB header sectors to the start of w.
func WriteHeader(w io.Writer, h *Header) error {
	locBuf := make([]byte, sectorSize)
	for i, e := range h.Locations {
		off := i * 4
		locBuf[off] = byte(e.SectorOffset >> 16)
		locBuf[off+1] = byte(e.SectorOffset >> 8)
		locBuf[off+2] = byte(e.SectorOffset)
		locBuf[off+3] = e.SectorCount
	}
	if _, err := w.Write(locBuf); err != nil {
		return err
	}

	tsBuf := make([]byte, sectorSize)
	for i, ts := range h.Timestamps {
		wire.Engine.PutUint32(tsBuf[i*4:], ts)
	}
	_, err := w.Write(tsBuf)
	return err
}
