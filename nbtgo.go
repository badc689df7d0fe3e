// Package nbtgo provides convenient top-level wrappers around the
// bridge and stream packages for the most common use case: marshaling a
// Go struct or map to/from an NBT document in a chosen container format
// (format.Binary or format.SNBT). For advanced usage — streaming large
// documents, driving the reader/writer primitives directly, or working
// with a region file — use the bridge/stream/region packages directly.
package nbtgo

import (
	"bytes"

	"github.com/rowanforge/nbtgo/bridge"
	"github.com/rowanforge/nbtgo/format"
	"github.com/rowanforge/nbtgo/stream"
)

// Marshal converts v (a struct or map, per bridge.Marshal's contract)
// into a single f-encoded document.
func Marshal(v any, f format.Format) ([]byte, error) {
	doc, err := bridge.Marshal(v)
	if err != nil {
		return nil, err
	}

	codec, err := stream.ForFormat(f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := codec.Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes an f-encoded document from data into out (a pointer
// to a struct or map, per bridge.Unmarshal's contract).
func Unmarshal(data []byte, f format.Format, out any) error {
	codec, err := stream.ForFormat(f)
	if err != nil {
		return err
	}

	doc, err := codec.Read(bytes.NewReader(data))
	if err != nil {
		return err
	}

	return bridge.Unmarshal(doc, out)
}
