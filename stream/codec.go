package stream

import (
	"fmt"
	"io"

	"github.com/rowanforge/nbtgo/errs"
	"github.com/rowanforge/nbtgo/format"
	"github.com/rowanforge/nbtgo/snbt"
	"github.com/rowanforge/nbtgo/value"
)

// Codec reads and writes a complete top-level value.Value in one
// container format, mirroring compress.Codec's one-interface,
// many-implementations shape: callers that only know which format.Format
// they want don't need to call stream.ReadValue/snbt.Parse by name.
type Codec interface {
	Read(r io.Reader) (value.Value, error)
	Write(w io.Writer, v value.Value) error
}

type binaryCodec struct{}

func (binaryCodec) Read(r io.Reader) (value.Value, error)  { return ReadValue(r) }
func (binaryCodec) Write(w io.Writer, v value.Value) error { return WriteValue(w, v) }

type snbtCodec struct{}

func (snbtCodec) Read(r io.Reader) (value.Value, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return value.Value{}, err
	}
	return snbt.Parse(string(b))
}

func (snbtCodec) Write(w io.Writer, v value.Value) error {
	_, err := io.WriteString(w, snbt.Format(v))
	return err
}

// Binary is the big-endian NBT wire codec.
var Binary Codec = binaryCodec{}

// SNBT is the textual stringified-NBT codec.
var SNBT Codec = snbtCodec{}

var builtinFormats = map[format.Format]Codec{
	format.Binary: Binary,
	format.SNBT:   SNBT,
}

// ForFormat looks up the registered Codec for f.
func ForFormat(f format.Format) (Codec, error) {
	c, ok := builtinFormats[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedFormat, f)
	}
	return c, nil
}
