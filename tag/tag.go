// Package tag enumerates the thirteen NBT tag kinds and their fixed-width
// wire sizes.
//
// Tag is a closed, stable enumeration: its wire id (0..12) is part of the
// binary format and must never be renumbered.
package tag

import "fmt"

// Tag is the one-byte type discriminator that precedes every named NBT
// entry.
type Tag uint8

const (
	End       Tag = 0
	Byte      Tag = 1
	Short     Tag = 2
	Int       Tag = 3
	Long      Tag = 4
	Float     Tag = 5
	Double    Tag = 6
	ByteArray Tag = 7
	String    Tag = 8
	List      Tag = 9
	Compound  Tag = 10
	IntArray  Tag = 11
	LongArray Tag = 12
)

var names = [...]string{
	End:       "TAG_End",
	Byte:      "TAG_Byte",
	Short:     "TAG_Short",
	Int:       "TAG_Int",
	Long:      "TAG_Long",
	Float:     "TAG_Float",
	Double:    "TAG_Double",
	ByteArray: "TAG_Byte_Array",
	String:    "TAG_String",
	List:      "TAG_List",
	Compound:  "TAG_Compound",
	IntArray:  "TAG_Int_Array",
	LongArray: "TAG_Long_Array",
}

// String returns the canonical NBT name of the tag, e.g. "TAG_Compound".
func (t Tag) String() string {
	if int(t) < len(names) {
		return names[t]
	}

	return fmt.Sprintf("TAG_Unknown(0x%02x)", uint8(t))
}

// Valid reports whether id falls within the closed 0..12 wire range.
func Valid(id uint8) bool {
	return id <= uint8(LongArray)
}

// FromByte converts a raw wire byte to a Tag, reporting ok=false for any
// value outside 0..12.
func FromByte(id uint8) (Tag, bool) {
	if !Valid(id) {
		return 0, false
	}

	return Tag(id), true
}

// FixedSize returns the byte size of a scalar tag's payload, and ok=false
// for variable-width or container tags (String, List, Compound, and the
// three *Array kinds all have no fixed size).
func (t Tag) FixedSize() (size int, ok bool) {
	switch t {
	case End, Byte:
		return 1, true
	case Short:
		return 2, true
	case Int, Float:
		return 4, true
	case Long, Double:
		return 8, true
	default:
		return 0, false
	}
}

// IsScalar reports whether t is one of the fixed-width numeric tags
// (Byte, Short, Int, Long, Float, Double). End is excluded since it never
// carries a payload.
func (t Tag) IsScalar() bool {
	switch t {
	case Byte, Short, Int, Long, Float, Double:
		return true
	default:
		return false
	}
}

// ListKind distinguishes a homogeneous primitive array (ByteArray,
// IntArray, LongArray — one fewer byte on the wire, no element-type
// prefix) from a generic List of a given element Tag.
type ListKind struct {
	// Array is one of ByteArray, IntArray, LongArray, or List.
	// It is never any other Tag value.
	Array Tag
	// Elem is only meaningful when Array == List; it names the element
	// tag written once in the list header.
	Elem Tag
}

// KindByteArray, KindIntArray, and KindLongArray are the three specialized
// primitive-array kinds.
var (
	KindByteArray = ListKind{Array: ByteArray}
	KindIntArray  = ListKind{Array: IntArray}
	KindLongArray = ListKind{Array: LongArray}
)

// KindList builds a generic List kind carrying the given element tag.
func KindList(elem Tag) ListKind {
	return ListKind{Array: List, Elem: elem}
}

// WireTag returns the tag actually written on the wire for the list
// header: ByteArray/IntArray/LongArray for the specialized kinds, or List
// for a generic list.
func (k ListKind) WireTag() Tag {
	return k.Array
}

// ElementTag returns the tag of each element the list carries: Byte, Int,
// or Long for the specialized kinds, or the stored element tag for a
// generic List.
func (k ListKind) ElementTag() Tag {
	switch k.Array {
	case ByteArray:
		return Byte
	case IntArray:
		return Int
	case LongArray:
		return Long
	default:
		return k.Elem
	}
}

// KindForElement chooses the most specialized ListKind for a homogeneous
// sequence of the given element tag: ByteArray for Byte, IntArray for
// Int, LongArray for Long, and a generic List for everything else.
func KindForElement(elem Tag) ListKind {
	switch elem {
	case Byte:
		return KindByteArray
	case Int:
		return KindIntArray
	case Long:
		return KindLongArray
	default:
		return KindList(elem)
	}
}
