// Package listcodec replaces the list-style derive macro spec.md
// treats as an external collaborator: given a record of N homogeneous
// scalar fields in declared order, it builds an encoder that emits a
// sequence of N unnamed elements and a decoder that reads exactly N
// elements, rejecting any other length, populating fields in
// declaration order. Go has no derive macros, so the fixed arity is
// expressed as an explicit list of accessor/setter pairs supplied to a
// constructor function — the teacher's own preference for named
// constructors (NewNumericEncoder, NewZstdCompressor) over
// reflection-driven magic, generalized here since mebo has no
// analogous fixed-arity derive to port directly.
package listcodec

import (
	"fmt"

	"github.com/rowanforge/nbtgo/errs"
	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
)

// Field binds one record field to its NBT element representation: Get
// extracts the value to encode, Set applies a decoded element back.
type Field[T any] struct {
	Get func(T) value.NamelessValue
	Set func(*T, value.NamelessValue) error
}

// Codec encodes/decodes T as a fixed-length sequence of N elements, one
// per Field, in the order they were supplied to New.
type Codec[T any] struct {
	fields []Field[T]
}

// New builds a Codec enforcing exactly len(fields) elements.
func New[T any](fields ...Field[T]) *Codec[T] {
	return &Codec[T]{fields: fields}
}

// Arity is the fixed element count this codec encodes/decodes.
func (c *Codec[T]) Arity() int { return len(c.fields) }

// Encode produces exactly Arity() unnamed elements, one per field in
// declaration order.
func (c *Codec[T]) Encode(v T) []value.NamelessValue {
	out := make([]value.NamelessValue, len(c.fields))
	for i, f := range c.fields {
		out[i] = f.Get(v)
	}
	return out
}

// Decode populates a T from exactly Arity() elements, rejecting any
// other length.
func (c *Codec[T]) Decode(elems []value.NamelessValue) (T, error) {
	var out T
	if len(elems) != len(c.fields) {
		return out, fmt.Errorf("%w: expected %d elements, got %d", errs.ErrUnrepresentableValue, len(c.fields), len(elems))
	}

	for i, f := range c.fields {
		if err := f.Set(&out, elems[i]); err != nil {
			return out, err
		}
	}

	return out, nil
}

// Float32Field builds a Field over a float32 accessor/setter pair, the
// common case for flat floating-point records (e.g. 4-float armor
// trim/rotation packs).
func Float32Field[T any](get func(T) float32, set func(*T, float32)) Field[T] {
	return Field[T]{
		Get: func(v T) value.NamelessValue {
			return value.NamelessValue{Kind: tag.Float, Float: get(v)}
		},
		Set: func(v *T, nv value.NamelessValue) error {
			if nv.Tag() != tag.Float {
				return fmt.Errorf("%w: expected Float element, got %s", errs.ErrUnrepresentableValue, nv.Tag())
			}
			set(v, nv.Float)
			return nil
		},
	}
}

// Int32Field builds a Field over an int32 accessor/setter pair, the
// common case for fixed-arity integer packs (e.g. the 4-int UUID pack
// in uuidpack).
func Int32Field[T any](get func(T) int32, set func(*T, int32)) Field[T] {
	return Field[T]{
		Get: func(v T) value.NamelessValue {
			return value.NamelessValue{Kind: tag.Int, Int: get(v)}
		},
		Set: func(v *T, nv value.NamelessValue) error {
			if nv.Tag() != tag.Int {
				return fmt.Errorf("%w: expected Int element, got %s", errs.ErrUnrepresentableValue, nv.Tag())
			}
			set(v, nv.Int)
			return nil
		},
	}
}
