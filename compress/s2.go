package compress

import "github.com/klauspost/compress/s2"

// s2Codec implements S2 (tag 4), a vendor extension favoring
// compression/decompression speed over ratio.
type s2Codec struct{}

var _ Codec = s2Codec{}

func (c s2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c s2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
