package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// zlibCodec implements Zlib (tag 2), the default compression region
// files use for chunk sections.
type zlibCodec struct{}

var _ Codec = zlibCodec{}

func (c zlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c zlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
