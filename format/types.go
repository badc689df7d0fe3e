// Package format names the container formats stream.Codec can be
// selected for: Binary, the NBT wire encoding, and SNBT, its textual
// twin. A Format value is just a selector passed to stream.ForFormat;
// the codecs themselves live in the stream package.
package format

// Format selects which stream.Codec ForFormat returns.
type Format uint8

const (
	Binary Format = 0x1 // Binary is the big-endian NBT wire encoding.
	SNBT   Format = 0x2 // SNBT is the textual stringified-NBT encoding.
)

func (f Format) String() string {
	switch f {
	case Binary:
		return "Binary"
	case SNBT:
		return "SNBT"
	default:
		return "Unknown"
	}
}
