// Package uuidpack implements the UUID<->four-i32 packing Minecraft's NBT
// format uses for entity/player UUID fields: the 16 big-endian bytes of a
// UUID, read as four sequential big-endian i32 words.
package uuidpack

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Packed is a UUID expressed as the four big-endian i32 words NBT stores
// it as (an IntArray of length 4 on the wire).
type Packed [4]int32

// Pack converts u's 16 big-endian bytes into four sequential big-endian
// i32 words.
func Pack(u uuid.UUID) Packed {
	b := u // [16]byte
	var p Packed
	for i := range p {
		p[i] = int32(binary.BigEndian.Uint32(b[i*4 : i*4+4]))
	}
	return p
}

// Unpack is the inverse of Pack.
func (p Packed) Unpack() uuid.UUID {
	var b [16]byte
	for i, word := range p {
		binary.BigEndian.PutUint32(b[i*4:i*4+4], uint32(word))
	}
	return uuid.UUID(b)
}
