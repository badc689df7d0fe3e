package stream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
)

func TestScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := value.Int("x", 42)

	require.NoError(t, WriteValue(&buf, in))

	out, err := ReadValue(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEmptyCompoundRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := value.Compound("root", nil)

	require.NoError(t, WriteValue(&buf, in))

	out, err := ReadValue(&buf)
	require.NoError(t, err)
	require.Equal(t, tag.Compound, out.Kind)
	require.Empty(t, out.Compound)
}

func TestNestedCompoundRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := value.Compound("root", []value.Value{
		value.Int("x", 7),
		value.String("label", "hi"),
		value.Compound("inner", []value.Value{
			value.Long("big", 123456789),
		}),
	})

	require.NoError(t, WriteValue(&buf, in))

	out, err := ReadValue(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestIntArrayRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := value.IntArray("nums", []int32{1, -2, 3})

	require.NoError(t, WriteValue(&buf, in))

	out, err := ReadValue(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestGenericListRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := value.List("names", []value.NamelessValue{
		{Kind: tag.String, Str: "a"},
		{Kind: tag.String, Str: "b"},
	})

	require.NoError(t, WriteValue(&buf, in))

	out, err := ReadValue(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEmptyListRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := value.List("empty", nil)

	require.NoError(t, WriteValue(&buf, in))

	out, err := ReadValue(&buf)
	require.NoError(t, err)
	require.Equal(t, tag.List, out.Kind)
	require.Empty(t, out.List)
}

func TestCompoundReaderExpectedTagMismatchRecovers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteValue(&buf, value.Int("x", 5)))
	require.NoError(t, writeTag(&buf, tag.End))

	cr := NewCompoundReader(&buf)
	_, _, err := cr.ReadNextNamed(tag.String)
	require.Error(t, err)

	peeked, perr := cr.PeekTag()
	require.NoError(t, perr)
	require.Equal(t, tag.Int, peeked, "lookahead must be restored after a tag mismatch")

	name, v, err := cr.ReadNextNamed(tag.Int)
	require.NoError(t, err)
	require.Equal(t, "x", name)
	require.Equal(t, int32(5), v.Int)
}

func TestCompoundWriterStreaming(t *testing.T) {
	var buf bytes.Buffer
	cw, err := WriteCompoundStart(&buf, "root")
	require.NoError(t, err)
	require.NoError(t, cw.WriteNext("a", value.NamelessValue{Kind: tag.Byte, Byte: 1}))
	require.NoError(t, cw.End())

	out, err := ReadValue(&buf)
	require.NoError(t, err)
	require.Equal(t, value.Compound("root", []value.Value{value.Byte("a", 1)}), out)
}
