// Package value implements the in-memory Value tree: an isomorphic pair of
// sum types over tag.Tag, holding owned scalars, owned primitive sequences,
// and recursively nested lists/compounds.
//
// Value carries a name (the compound-entry form); NamelessValue drops it
// (the list-element form). Neither is mutated in place once built — a
// reader constructs one in a single pass and a writer consumes it in one.
package value

import "github.com/rowanforge/nbtgo/tag"

// Value is a named NBT payload, as it appears as a compound entry.
type Value struct {
	Name string
	Kind tag.Tag

	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	Boolean   bool
	Str       string
	ByteArray []int8
	IntArray  []int32
	LongArray []int64
	List      []NamelessValue
	Compound  []Value
}

// NamelessValue is the anonymous sibling of Value, used for list elements
// and as the top-level payload once a name has been read or stripped.
type NamelessValue struct {
	Kind tag.Tag

	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	Boolean   bool
	Str       string
	ByteArray []int8
	IntArray  []int32
	LongArray []int64
	List      []NamelessValue
	Compound  []Value
}

// Tag reports the wire tag this value would be written as. The Boolean
// variant reports tag.Byte: it has no wire id of its own, it is a Go-side
// distinction that collapses to Byte the moment bytes are written.
func (v Value) Tag() tag.Tag {
	if v.Kind == KindBoolean {
		return tag.Byte
	}
	return v.Kind
}

// Tag reports the wire tag this value would be written as.
func (v NamelessValue) Tag() tag.Tag {
	if v.Kind == KindBoolean {
		return tag.Byte
	}
	return v.Kind
}

// KindBoolean is a sentinel Kind distinct from every real tag.Tag id,
// marking a value that must round-trip as a Go bool even though it writes
// as tag.Byte on the wire. tag.Tag's valid range is 0..12; this sits just
// outside it.
const KindBoolean tag.Tag = 13

// Nameless strips the name, converting a Value into its NamelessValue
// twin. The two forms share every other field.
func (v Value) Nameless() NamelessValue {
	return NamelessValue{
		Kind:      v.Kind,
		Byte:      v.Byte,
		Short:     v.Short,
		Int:       v.Int,
		Long:      v.Long,
		Float:     v.Float,
		Double:    v.Double,
		Boolean:   v.Boolean,
		Str:       v.Str,
		ByteArray: v.ByteArray,
		IntArray:  v.IntArray,
		LongArray: v.LongArray,
		List:      v.List,
		Compound:  v.Compound,
	}
}

// Named attaches a name, converting a NamelessValue into a Value.
func (v NamelessValue) Named(name string) Value {
	return Value{
		Name:      name,
		Kind:      v.Kind,
		Byte:      v.Byte,
		Short:     v.Short,
		Int:       v.Int,
		Long:      v.Long,
		Float:     v.Float,
		Double:    v.Double,
		Boolean:   v.Boolean,
		Str:       v.Str,
		ByteArray: v.ByteArray,
		IntArray:  v.IntArray,
		LongArray: v.LongArray,
		List:      v.List,
		Compound:  v.Compound,
	}
}

// Constructors. Each names the field it populates so call sites read like
// the variant they build, e.g. value.Int("x", 7) rather than a bare
// composite literal with every other field left zero.

func Byte(name string, v int8) Value   { return Value{Name: name, Kind: tag.Byte, Byte: v} }
func Short(name string, v int16) Value { return Value{Name: name, Kind: tag.Short, Short: v} }
func Int(name string, v int32) Value   { return Value{Name: name, Kind: tag.Int, Int: v} }
func Long(name string, v int64) Value  { return Value{Name: name, Kind: tag.Long, Long: v} }
func Float(name string, v float32) Value {
	return Value{Name: name, Kind: tag.Float, Float: v}
}
func Double(name string, v float64) Value {
	return Value{Name: name, Kind: tag.Double, Double: v}
}
func Bool(name string, v bool) Value {
	return Value{Name: name, Kind: KindBoolean, Boolean: v}
}
func String(name string, v string) Value { return Value{Name: name, Kind: tag.String, Str: v} }
func ByteArray(name string, v []int8) Value {
	return Value{Name: name, Kind: tag.ByteArray, ByteArray: v}
}
func IntArray(name string, v []int32) Value {
	return Value{Name: name, Kind: tag.IntArray, IntArray: v}
}
func LongArray(name string, v []int64) Value {
	return Value{Name: name, Kind: tag.LongArray, LongArray: v}
}
func List(name string, v []NamelessValue) Value {
	return Value{Name: name, Kind: tag.List, List: v}
}
func Compound(name string, v []Value) Value {
	return Value{Name: name, Kind: tag.Compound, Compound: v}
}

// ElementTag returns the tag new list elements should carry, and whether
// the list is non-empty enough to know one: an empty list has no
// canonical element tag on the Go side either.
func (v Value) ElementTag() (tag.Tag, bool) {
	if len(v.List) == 0 {
		return tag.End, false
	}
	return v.List[0].Tag(), true
}
