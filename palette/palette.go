// Package palette implements chunk block-state palette compression: an
// ordered, deduplicated table of distinct block descriptors plus a
// PackedBitArray of indices into that table, as spec.md §4.8 describes
// for chunk section storage.
package palette

import (
	"math/bits"
	"sort"
	"strings"

	"github.com/rowanforge/nbtgo/bitpack"
	"github.com/rowanforge/nbtgo/internal/hash"
)

// MinBits is the narrowest index width a palette storage ever uses, even
// for a palette of one or two entries.
const MinBits = 4

// BlockState is a block descriptor: a namespaced name (e.g.
// "minecraft:stone") plus an optional property map (e.g.
// {"facing":"north"}).
type BlockState struct {
	Name       string
	Properties map[string]string
}

// key canonicalizes a BlockState into a deterministic string independent
// of map iteration order, suitable for hashing.
func (b BlockState) key() string {
	if len(b.Properties) == 0 {
		return b.Name
	}

	keys := make([]string, 0, len(b.Properties))
	for k := range b.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(b.Name)
	for _, k := range keys {
		sb.WriteByte('\x00')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(b.Properties[k])
	}
	return sb.String()
}

// Palette is an ordered, deduplicated table of BlockStates. New entries
// are appended; Add is idempotent for a BlockState already present,
// returning its existing index, deduplicated via an xxHash64-keyed
// bucket map. A bare hash->index map would silently merge two distinct
// block states that happen to collide under xxHash64 the way a metric
// ID collision would silently merge two distinct metrics; instead each
// hash bucket keeps every colliding entry's index and Add falls back to
// an exact key comparison within the bucket, the same collision-aware
// shape as the teacher's metric-name collision tracker.
type Palette struct {
	entries []BlockState
	byHash  map[uint64][]int
}

// New returns an empty Palette.
func New() *Palette {
	return &Palette{byHash: make(map[uint64][]int)}
}

// Add returns b's index in the palette, appending it if not already
// present.
func (p *Palette) Add(b BlockState) int {
	key := b.key()
	h := hash.ID(key)

	for _, idx := range p.byHash[h] {
		if p.entries[idx].key() == key {
			return idx
		}
	}

	idx := len(p.entries)
	p.entries = append(p.entries, b)
	p.byHash[h] = append(p.byHash[h], idx)
	return idx
}

// Len reports the number of distinct entries.
func (p *Palette) Len() int { return len(p.entries) }

// Get returns the entry at idx, and ok=false if out of range.
func (p *Palette) Get(idx int) (BlockState, bool) {
	if idx < 0 || idx >= len(p.entries) {
		return BlockState{}, false
	}
	return p.entries[idx], true
}

// BitsPerEntry returns the index width required for the palette's
// current size: max(MinBits, ceil(log2(len))).
func (p *Palette) BitsPerEntry() int {
	return bitsFor(len(p.entries))
}

func bitsFor(n int) int {
	if n <= 1 {
		return MinBits
	}

	b := bits.Len(uint(n - 1))
	if b < MinBits {
		return MinBits
	}
	return b
}

// Storage pairs a Palette with a PackedBitArray of indices into it,
// widening the indices array whenever the palette outgrows the current
// bit width.
type Storage struct {
	palette *Palette
	indices *bitpack.PackedBitArray
}

// NewStorage allocates a Storage for length entries, backed by a fresh
// Palette.
func NewStorage(length int) *Storage {
	return &Storage{
		palette: New(),
		indices: bitpack.New(MinBits, length),
	}
}

// Palette exposes the backing palette, e.g. to serialize it alongside
// the indices as the wire's (palette, indices) pair.
func (s *Storage) Palette() *Palette { return s.palette }

// Indices exposes the backing PackedBitArray.
func (s *Storage) Indices() *bitpack.PackedBitArray { return s.indices }

// Set stores b at logical position i, growing the palette (and, if that
// pushes BitsPerEntry past the current width, widening the indices
// array) as needed.
func (s *Storage) Set(i int, b BlockState) {
	idx := s.palette.Add(b)

	if want := s.palette.BitsPerEntry(); want > s.indices.BitsPerEntry() {
		s.indices.Resize(want)
	}

	s.indices.Set(i, uint64(idx))
}

// Get returns the BlockState stored at logical position i.
func (s *Storage) Get(i int) (BlockState, bool) {
	idx, ok := s.indices.Get(i)
	if !ok {
		return BlockState{}, false
	}
	return s.palette.Get(int(idx))
}
