// Package wire implements the primitive NBT codec: big-endian read/write
// of the scalar tag payloads and length-prefixed UTF-8 strings.
//
// Everything here is a pure byte-level transform over an io.Reader /
// io.Writer — it knows nothing about compounds, lists, or names beyond
// the bare "u16 length, then that many bytes" shape tag names share with
// strings. stream.Binary is built directly on top of this package.
package wire

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/rowanforge/nbtgo/endian"
	"github.com/rowanforge/nbtgo/errs"
)

// Engine is the byte order every NBT document is written in. The format
// has no little-endian variant; this is exposed as a variable (rather
// than calling binary.BigEndian directly everywhere) so the rest of the
// codec reads as engine-parameterized, matching the teacher's
// endian.EndianEngine idiom.
var Engine = endian.GetBigEndianEngine()

// ReadByte reads a signed 8-bit integer.
func ReadByte(r io.Reader) (int8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return int8(buf[0]), nil
}

// WriteByte writes a signed 8-bit integer.
func WriteByte(w io.Writer, v int8) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

// ReadShort reads a signed 16-bit big-endian integer.
func ReadShort(r io.Reader) (int16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return int16(Engine.Uint16(buf[:])), nil
}

// WriteShort writes a signed 16-bit big-endian integer.
func WriteShort(w io.Writer, v int16) error {
	var buf [2]byte
	Engine.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadInt reads a signed 32-bit big-endian integer.
func ReadInt(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return int32(Engine.Uint32(buf[:])), nil
}

// WriteInt writes a signed 32-bit big-endian integer.
func WriteInt(w io.Writer, v int32) error {
	var buf [4]byte
	Engine.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadLong reads a signed 64-bit big-endian integer.
func ReadLong(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return int64(Engine.Uint64(buf[:])), nil
}

// WriteLong writes a signed 64-bit big-endian integer.
func WriteLong(w io.Writer, v int64) error {
	var buf [8]byte
	Engine.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadFloat reads a 32-bit IEEE-754 big-endian float.
func ReadFloat(r io.Reader) (float32, error) {
	bits, err := ReadInt(r)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(bits)), nil
}

// WriteFloat writes a 32-bit IEEE-754 big-endian float.
func WriteFloat(w io.Writer, v float32) error {
	return WriteInt(w, int32(math.Float32bits(v)))
}

// ReadDouble reads a 64-bit IEEE-754 big-endian float.
func ReadDouble(r io.Reader) (float64, error) {
	bits, err := ReadLong(r)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(uint64(bits)), nil
}

// WriteDouble writes a 64-bit IEEE-754 big-endian float.
func WriteDouble(w io.Writer, v float64) error {
	return WriteLong(w, int64(math.Float64bits(v)))
}

// ReadBoolLiberal reads a Byte and treats any nonzero value as true.
func ReadBoolLiberal(r io.Reader) (bool, error) {
	b, err := ReadByte(r)
	if err != nil {
		return false, err
	}

	return b != 0, nil
}

// ReadBoolStrict reads a Byte and accepts only 0 or 1, matching
// deserialize_bool's strict contract.
func ReadBoolStrict(r io.Reader) (bool, error) {
	b, err := ReadByte(r)
	if err != nil {
		return false, err
	}
	if b != 0 && b != 1 {
		return false, errs.ErrUnrepresentableValue
	}

	return b != 0, nil
}

// WriteBool writes a bool as a Byte of value 0 or 1.
func WriteBool(w io.Writer, v bool) error {
	if v {
		return WriteByte(w, 1)
	}

	return WriteByte(w, 0)
}

// ReadString reads a u16 big-endian byte count followed by that many
// bytes, validated as UTF-8. Tag names use the exact same wire shape.
func ReadString(r io.Reader) (string, error) {
	n, err := readU16(r)
	if err != nil {
		return "", err
	}

	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
	}

	if !utf8.Valid(buf) {
		return "", errs.ErrNotAString
	}

	return string(buf), nil
}

// WriteString writes a string as a u16 byte-count prefix followed by its
// UTF-8 bytes. The prefix counts bytes, not code points.
func WriteString(w io.Writer, s string) error {
	if len(s) > 0xFFFF {
		return errs.ErrUnrepresentableValue
	}
	if err := WriteShort(w, int16(uint16(len(s)))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(buf[:]), nil
}
