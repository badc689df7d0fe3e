// Package compress implements the region chunk compression registry:
// Gzip and Zlib (spec-mandated chunk compressions), Uncompressed, and
// three vendor-extension codecs — S2, Zstd, LZ4 — recognized only by
// this implementation; any other compression byte is Custom and
// rejected by GetCodec, preserving spec.md's default-reject contract.
package compress

import (
	"fmt"

	"github.com/rowanforge/nbtgo/errs"
)

// CompressionType is the one-byte tag stored in a chunk header.
type CompressionType uint8

const (
	Gzip         CompressionType = 1
	Zlib         CompressionType = 2
	Uncompressed CompressionType = 3
	S2           CompressionType = 4
	Zstd         CompressionType = 5
	LZ4          CompressionType = 6
)

func (c CompressionType) String() string {
	switch c {
	case Gzip:
		return "Gzip"
	case Zlib:
		return "Zlib"
	case Uncompressed:
		return "Uncompressed"
	case S2:
		return "S2"
	case Zstd:
		return "Zstd"
	case LZ4:
		return "LZ4"
	default:
		return fmt.Sprintf("Custom(%d)", uint8(c))
	}
}

// Compressor compresses a chunk payload.
//
// Memory management: the input slice is never modified. The returned
// slice is owned by the caller; it is newly allocated for every codec
// except Uncompressed, which returns the input slice itself.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a chunk payload previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; every registered compression type
// provides one.
type Codec interface {
	Compressor
	Decompressor
}

// GetCodec retrieves the registered Codec for a compression type.
// Values outside 1..6 (Custom, per spec.md §3/§9.4.6) are reported as
// errs.ErrUnsupportedCompression.
func GetCodec(t CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, t)
}

var builtinCodecs = map[CompressionType]Codec{
	Gzip:         gzipCodec{},
	Zlib:         zlibCodec{},
	Uncompressed: noOpCodec{},
	S2:           s2Codec{},
	Zstd:         zstdCodec{},
	LZ4:          lz4Codec{},
}
