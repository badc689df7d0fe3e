package listcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
)

type armorTrim struct {
	R, G, B, A float32
}

func armorCodec() *Codec[armorTrim] {
	return New(
		Float32Field(func(v armorTrim) float32 { return v.R }, func(v *armorTrim, f float32) { v.R = f }),
		Float32Field(func(v armorTrim) float32 { return v.G }, func(v *armorTrim, f float32) { v.G = f }),
		Float32Field(func(v armorTrim) float32 { return v.B }, func(v *armorTrim, f float32) { v.B = f }),
		Float32Field(func(v armorTrim) float32 { return v.A }, func(v *armorTrim, f float32) { v.A = f }),
	)
}

func TestEncodeProducesFixedArity(t *testing.T) {
	c := armorCodec()
	elems := c.Encode(armorTrim{R: 1, G: 2, B: 3, A: 4})
	require.Len(t, elems, 4)
	require.Equal(t, tag.Float, elems[0].Tag())
}

func TestDecodeRoundTrip(t *testing.T) {
	c := armorCodec()
	in := armorTrim{R: 0.1, G: 0.2, B: 0.3, A: 0.4}

	out, err := c.Decode(c.Encode(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDecodeRejectsWrongArity(t *testing.T) {
	c := armorCodec()
	_, err := c.Decode(c.Encode(armorTrim{})[:2])
	require.Error(t, err)
}

func TestDecodeRejectsWrongElementTag(t *testing.T) {
	c := New(
		Int32Field(func(v [1]int32) int32 { return v[0] }, func(v *[1]int32, i int32) { v[0] = i }),
	)

	_, err := c.Decode([]value.NamelessValue{{Kind: tag.Float, Float: 1.5}})
	require.Error(t, err)
}
