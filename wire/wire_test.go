package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteByte(&buf, -42))
	require.NoError(t, WriteShort(&buf, -1000))
	require.NoError(t, WriteInt(&buf, -70000))
	require.NoError(t, WriteLong(&buf, -5000000000))

	b, err := ReadByte(&buf)
	require.NoError(t, err)
	require.Equal(t, int8(-42), b)

	s, err := ReadShort(&buf)
	require.NoError(t, err)
	require.Equal(t, int16(-1000), s)

	i, err := ReadInt(&buf)
	require.NoError(t, err)
	require.Equal(t, int32(-70000), i)

	l, err := ReadLong(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(-5000000000), l)
}

func TestFloatRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteFloat(&buf, 4.5))
	require.NoError(t, WriteDouble(&buf, 3.14159265358979))

	f, err := ReadFloat(&buf)
	require.NoError(t, err)
	require.Equal(t, float32(4.5), f)

	d, err := ReadDouble(&buf)
	require.NoError(t, err)
	require.Equal(t, 3.14159265358979, d)
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "hello, é"))

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "hello, é", s)
}

func TestReadStringRejectsInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteShort(&buf, 2))
	buf.Write([]byte{0xff, 0xfe})

	_, err := ReadString(&buf)
	require.Error(t, err)
}

func TestBoolModes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteByte(&buf, 5))

	liberal, err := ReadBoolLiberal(&buf)
	require.NoError(t, err)
	require.True(t, liberal, "any nonzero byte is true in liberal mode")

	buf.Reset()
	require.NoError(t, WriteByte(&buf, 5))
	_, err = ReadBoolStrict(&buf)
	require.Error(t, err, "strict mode only accepts 0 or 1")
}

func TestEmptyStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, ""))

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "", s)
}
