// Package errs centralizes the sentinel errors returned by every layer of
// nbtgo: the primitive codec, the streaming reader/writer, the reflection
// bridge, the SNBT parser, and the region container.
//
// Callers should compare with errors.Is against the sentinels here rather
// than against formatted error strings, since call sites wrap these with
// additional context via fmt.Errorf("%w: ...", ...).
package errs

import (
	"errors"
	"fmt"

	"github.com/rowanforge/nbtgo/tag"
)

var (
	// ErrInvalidTag is returned when a byte read where a tag was expected
	// does not fall in 0..12.
	ErrInvalidTag = errors.New("nbtgo: invalid tag id")

	// ErrUnexpectedEnd is returned when a TAG_End is consumed where a
	// value was required (e.g. inside a compound entry or a non-empty
	// list).
	ErrUnexpectedEnd = errors.New("nbtgo: unexpected TAG_End")

	// ErrNotAString is returned when a string payload is not valid UTF-8.
	ErrNotAString = errors.New("nbtgo: payload is not valid utf-8")

	// ErrKeyMustBeString is returned by the bridge encoder when a map key
	// serializes to anything other than a bare string.
	ErrKeyMustBeString = errors.New("nbtgo: map key must serialize as a string")

	// ErrUnrepresentableValue is returned by the bridge encoder for values
	// NBT has no wire representation for: unknown-length sequences, a
	// naked scalar at the document root, tuple/struct enum variants.
	ErrUnrepresentableValue = errors.New("nbtgo: value cannot be represented in NBT")

	// ErrInvalidChunkHeader is returned when a region header does not
	// contain exactly 1024 location/timestamp entries, or a chunk header
	// length is inconsistent with the sector it was read from.
	ErrInvalidChunkHeader = errors.New("nbtgo: invalid region or chunk header")

	// ErrUnexpectedToken is returned by the SNBT lexer/parser for any
	// token the grammar does not accept at the current parse position.
	ErrUnexpectedToken = errors.New("nbtgo: unexpected SNBT token")

	// ErrMissingName is returned by the SNBT parser when a compound entry
	// value appears without a preceding "name:" prefix.
	ErrMissingName = errors.New("nbtgo: missing SNBT tag name")

	// ErrUnsupportedCompression is returned by the region reader when a
	// chunk's compression byte does not match any registered codec.
	ErrUnsupportedCompression = errors.New("nbtgo: unsupported chunk compression")

	// ErrRecursionLimit is returned by the bridge when nested
	// compounds/sequences exceed the configured depth limit, guarding
	// against unbounded stack growth on adversarial input.
	ErrRecursionLimit = errors.New("nbtgo: nesting depth limit exceeded")

	// ErrUnsupportedFormat is returned by stream.ForFormat for a
	// format.Format value that names no registered stream.Codec.
	ErrUnsupportedFormat = errors.New("nbtgo: unsupported stream format")

	// ErrChunkTooLarge is returned by Region.WriteChunk when a chunk's
	// compressed payload needs more than 255 sectors, the largest count
	// the region header's one-byte SectorCount field can hold.
	ErrChunkTooLarge = errors.New("nbtgo: chunk payload exceeds 255 sectors")
)

// ErrExpectedTag is the recoverable error reported by the compound reader
// when the caller asked to read a specific tag but the next tag on the
// wire is different. The reader restores its one-slot lookahead before
// returning this, so the caller may retry with the correct reader call.
type ErrExpectedTag struct {
	Want tag.Tag
	Got  tag.Tag
}

func (e *ErrExpectedTag) Error() string {
	return fmt.Sprintf("nbtgo: expected tag %s, got %s", e.Want, e.Got)
}

// Is allows errors.Is(err, &errs.ErrExpectedTag{}) style checks
// without caring about the specific Want/Got pair.
func (e *ErrExpectedTag) Is(target error) bool {
	_, ok := target.(*ErrExpectedTag)
	return ok
}
