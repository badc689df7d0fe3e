// Package bitpack implements PackedBitArray: a dense []uint64 backing
// store holding fixed-width entries that never straddle a 64-bit word
// boundary, used by palette-compressed block/biome storage.
package bitpack

import "github.com/rowanforge/nbtgo/errs"

// PackedBitArray packs Length logical entries of BitsPerEntry width each
// into a dense []uint64, one-word-per-entry-group, never straddling a
// word boundary.
type PackedBitArray struct {
	bitsPerEntry int
	length       int
	words        []uint64
}

// New allocates a PackedBitArray holding length entries of bitsPerEntry
// width each, all initialized to zero. bitsPerEntry must be in 1..64.
func New(bitsPerEntry, length int) *PackedBitArray {
	if bitsPerEntry < 1 || bitsPerEntry > 64 {
		panic("bitpack: bitsPerEntry must be in 1..64")
	}

	vpw := valuesPerWord(bitsPerEntry)
	wordCount := ceilDiv(length, vpw)

	return &PackedBitArray{
		bitsPerEntry: bitsPerEntry,
		length:       length,
		words:        make([]uint64, wordCount),
	}
}

// BitsPerEntry reports the fixed entry width.
func (p *PackedBitArray) BitsPerEntry() int { return p.bitsPerEntry }

// Len reports the logical entry count.
func (p *PackedBitArray) Len() int { return p.length }

// Words exposes the dense backing store, e.g. for writing it out as NBT's
// LongArray payload.
func (p *PackedBitArray) Words() []uint64 { return p.words }

func (p *PackedBitArray) mask() uint64 {
	if p.bitsPerEntry == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(p.bitsPerEntry)) - 1
}

// Get returns the entry at index i, and ok=false if i is out of range.
func (p *PackedBitArray) Get(i int) (uint64, bool) {
	if i < 0 || i >= p.length {
		return 0, false
	}

	vpw := valuesPerWord(p.bitsPerEntry)
	word := i / vpw
	offset := uint((i % vpw) * p.bitsPerEntry)

	return (p.words[word] >> offset) & p.mask(), true
}

// Set stores v & mask at index i. It panics if i is out of range — a
// caller writing past Len is a caller bug, not a recoverable condition.
func (p *PackedBitArray) Set(i int, v uint64) {
	if i < 0 || i >= p.length {
		panic("bitpack: index out of range")
	}

	vpw := valuesPerWord(p.bitsPerEntry)
	word := i / vpw
	offset := uint((i % vpw) * p.bitsPerEntry)
	mask := p.mask()

	p.words[word] = (p.words[word] &^ (mask << offset)) | ((v & mask) << offset)
}

// Resize rebuilds the array at a new bit width, copying every entry
// value-by-value. The packed layout is not bit-compatible across widths,
// so this cannot be a simple word reinterpretation.
func (p *PackedBitArray) Resize(newBitsPerEntry int) {
	if newBitsPerEntry < 1 || newBitsPerEntry > 64 {
		panic("bitpack: bitsPerEntry must be in 1..64")
	}

	rebuilt := New(newBitsPerEntry, p.length)
	for i := 0; i < p.length; i++ {
		v, _ := p.Get(i)
		rebuilt.Set(i, v)
	}

	p.bitsPerEntry = rebuilt.bitsPerEntry
	p.words = rebuilt.words
}

// FromWords reconstructs a PackedBitArray from an already-decoded word
// slice (e.g. a chunk section's raw LongArray payload), trusting the
// caller's bitsPerEntry/length. The word count must equal what New would
// allocate for that width and length, else ErrInvalidChunkHeader.
func FromWords(bitsPerEntry, length int, words []uint64) (*PackedBitArray, error) {
	if bitsPerEntry < 1 || bitsPerEntry > 64 || length < 0 {
		return nil, errs.ErrInvalidChunkHeader
	}

	vpw := valuesPerWord(bitsPerEntry)
	want := ceilDiv(length, vpw)
	if len(words) != want {
		return nil, errs.ErrInvalidChunkHeader
	}

	return &PackedBitArray{bitsPerEntry: bitsPerEntry, length: length, words: words}, nil
}

func valuesPerWord(bitsPerEntry int) int {
	return 64 / bitsPerEntry
}

func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}
