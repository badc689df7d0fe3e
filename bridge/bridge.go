// Package bridge maps arbitrary Go values (structs, maps, slices, scalars)
// onto the value.Value tree, in both directions, the way
// original_source/nbt/src/serde_impl drives NBT (de)serialization off a
// generic visitor rather than per-type hand-written code. Go has no
// serde-style derive macros, so the walk is driven by reflect.Value
// instead of a trait object. Sequence headers are chosen from the Go
// slice's static element type rather than by peeking at a serialized
// first element (choose header, then emit the fixed-length body), and
// the record/map root restriction is kept.
package bridge

import "github.com/rowanforge/nbtgo/errs"

// maxDepth bounds compound/sequence nesting, guarding against unbounded
// recursion on adversarial or self-referential input.
const maxDepth = 512

func depthExceeded(depth int) error {
	if depth > maxDepth {
		return errs.ErrRecursionLimit
	}
	return nil
}
