// Package stream implements the streaming reader/writer drivers described
// in spec.md §4.2 for Binary, the NBT wire codec: CompoundReader,
// CompoundWriter, ListReader and ListWriter over the value.Value /
// value.NamelessValue tree. SNBT, its textual twin, lives in the snbt
// package and offers only whole-document Parse/Format, without these
// four streaming types.
//
// The original design parameterizes a generic NBTType trait with
// associated reader/writer types so a single serde-style bridge compiles
// against either format. Go has no associated types and no compile-time
// trait dispatch, so this port collapses that polymorphism to two
// concrete whole-document codecs, Binary and SNBT (codec.go), chosen by
// a format.Format value through ForFormat rather than by generic
// parameter.
package stream

import (
	"fmt"
	"io"

	"github.com/rowanforge/nbtgo/errs"
	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
	"github.com/rowanforge/nbtgo/wire"
)

// ReadValue reads one named top-level entry: a tag id, then (unless it is
// End) a name and the tag's payload.
func ReadValue(r io.Reader) (value.Value, error) {
	t, err := readTag(r)
	if err != nil {
		return value.Value{}, err
	}
	if t == tag.End {
		return value.Value{Kind: tag.End}, nil
	}

	name, err := wire.ReadString(r)
	if err != nil {
		return value.Value{}, err
	}

	nameless, err := readNameless(r, t)
	if err != nil {
		return value.Value{}, err
	}

	return nameless.Named(name), nil
}

// WriteValue writes v as a top-level named entry.
func WriteValue(w io.Writer, v value.Value) error {
	if v.Kind == tag.End {
		return errs.ErrUnexpectedEnd
	}
	if err := writeTag(w, v.Tag()); err != nil {
		return err
	}
	if err := wire.WriteString(w, v.Name); err != nil {
		return err
	}

	return writeNamelessPayload(w, v.Nameless())
}

// readNameless reads the payload for a value already known to carry tag t
// (the tag id itself has already been consumed by the caller).
func readNameless(r io.Reader, t tag.Tag) (value.NamelessValue, error) {
	switch t {
	case tag.End:
		return value.NamelessValue{}, errs.ErrUnexpectedEnd
	case tag.Byte:
		b, err := wire.ReadByte(r)
		return value.NamelessValue{Kind: tag.Byte, Byte: b}, err
	case tag.Short:
		s, err := wire.ReadShort(r)
		return value.NamelessValue{Kind: tag.Short, Short: s}, err
	case tag.Int:
		i, err := wire.ReadInt(r)
		return value.NamelessValue{Kind: tag.Int, Int: i}, err
	case tag.Long:
		l, err := wire.ReadLong(r)
		return value.NamelessValue{Kind: tag.Long, Long: l}, err
	case tag.Float:
		f, err := wire.ReadFloat(r)
		return value.NamelessValue{Kind: tag.Float, Float: f}, err
	case tag.Double:
		d, err := wire.ReadDouble(r)
		return value.NamelessValue{Kind: tag.Double, Double: d}, err
	case tag.String:
		s, err := wire.ReadString(r)
		return value.NamelessValue{Kind: tag.String, Str: s}, err
	case tag.ByteArray:
		return readByteArray(r)
	case tag.IntArray:
		return readIntArray(r)
	case tag.LongArray:
		return readLongArray(r)
	case tag.List:
		return readList(r)
	case tag.Compound:
		return readCompound(r)
	default:
		return value.NamelessValue{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidTag, uint8(t))
	}
}

func readByteArray(r io.Reader) (value.NamelessValue, error) {
	n, err := wire.ReadInt(r)
	if err != nil {
		return value.NamelessValue{}, err
	}
	buf := make([]int8, n)
	for i := range buf {
		b, err := wire.ReadByte(r)
		if err != nil {
			return value.NamelessValue{}, err
		}
		buf[i] = b
	}
	return value.NamelessValue{Kind: tag.ByteArray, ByteArray: buf}, nil
}

func readIntArray(r io.Reader) (value.NamelessValue, error) {
	n, err := wire.ReadInt(r)
	if err != nil {
		return value.NamelessValue{}, err
	}
	buf := make([]int32, n)
	for i := range buf {
		v, err := wire.ReadInt(r)
		if err != nil {
			return value.NamelessValue{}, err
		}
		buf[i] = v
	}
	return value.NamelessValue{Kind: tag.IntArray, IntArray: buf}, nil
}

func readLongArray(r io.Reader) (value.NamelessValue, error) {
	n, err := wire.ReadInt(r)
	if err != nil {
		return value.NamelessValue{}, err
	}
	buf := make([]int64, n)
	for i := range buf {
		v, err := wire.ReadLong(r)
		if err != nil {
			return value.NamelessValue{}, err
		}
		buf[i] = v
	}
	return value.NamelessValue{Kind: tag.LongArray, LongArray: buf}, nil
}

func readList(r io.Reader) (value.NamelessValue, error) {
	elemTag, err := readTag(r)
	if err != nil {
		return value.NamelessValue{}, err
	}
	n, err := wire.ReadInt(r)
	if err != nil {
		return value.NamelessValue{}, err
	}

	elems := make([]value.NamelessValue, n)
	for i := range elems {
		v, err := readNameless(r, elemTag)
		if err != nil {
			return value.NamelessValue{}, err
		}
		elems[i] = v
	}
	return value.NamelessValue{Kind: tag.List, List: elems}, nil
}

func readCompound(r io.Reader) (value.NamelessValue, error) {
	cr := NewCompoundReader(r)
	entries, err := cr.ReadToEnd()
	if err != nil {
		return value.NamelessValue{}, err
	}
	return value.NamelessValue{Kind: tag.Compound, Compound: entries}, nil
}

func writeNamelessPayload(w io.Writer, v value.NamelessValue) error {
	switch v.Kind {
	case tag.End:
		return errs.ErrUnexpectedEnd
	case value.KindBoolean:
		return wire.WriteBool(w, v.Boolean)
	case tag.Byte:
		return wire.WriteByte(w, v.Byte)
	case tag.Short:
		return wire.WriteShort(w, v.Short)
	case tag.Int:
		return wire.WriteInt(w, v.Int)
	case tag.Long:
		return wire.WriteLong(w, v.Long)
	case tag.Float:
		return wire.WriteFloat(w, v.Float)
	case tag.Double:
		return wire.WriteDouble(w, v.Double)
	case tag.String:
		return wire.WriteString(w, v.Str)
	case tag.ByteArray:
		if err := wire.WriteInt(w, int32(len(v.ByteArray))); err != nil {
			return err
		}
		for _, b := range v.ByteArray {
			if err := wire.WriteByte(w, b); err != nil {
				return err
			}
		}
		return nil
	case tag.IntArray:
		if err := wire.WriteInt(w, int32(len(v.IntArray))); err != nil {
			return err
		}
		for _, i := range v.IntArray {
			if err := wire.WriteInt(w, i); err != nil {
				return err
			}
		}
		return nil
	case tag.LongArray:
		if err := wire.WriteInt(w, int32(len(v.LongArray))); err != nil {
			return err
		}
		for _, l := range v.LongArray {
			if err := wire.WriteLong(w, l); err != nil {
				return err
			}
		}
		return nil
	case tag.List:
		return writeList(w, v.List)
	case tag.Compound:
		return writeCompoundEntries(w, v.Compound)
	default:
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidTag, uint8(v.Kind))
	}
}

// writeList emits the element-tag header then each element untagged. An
// empty list has no canonical element tag: the writer falls back to
// End/length-0, matching the reader's liberal acceptance of any tag when
// length is zero.
func writeList(w io.Writer, elems []value.NamelessValue) error {
	elemTag := tag.End
	if len(elems) > 0 {
		elemTag = elems[0].Tag()
	}
	if err := writeTag(w, elemTag); err != nil {
		return err
	}
	if err := wire.WriteInt(w, int32(len(elems))); err != nil {
		return err
	}
	for _, e := range elems {
		if err := writeNamelessPayload(w, e); err != nil {
			return err
		}
	}
	return nil
}

func writeCompoundEntries(w io.Writer, entries []value.Value) error {
	for _, e := range entries {
		if err := WriteValue(w, e); err != nil {
			return err
		}
	}
	return writeTag(w, tag.End)
}

func readTag(r io.Reader) (tag.Tag, error) {
	b, err := wire.ReadByte(r)
	if err != nil {
		return 0, err
	}
	t, ok := tag.FromByte(byte(b))
	if !ok {
		return 0, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidTag, byte(b))
	}
	return t, nil
}

func writeTag(w io.Writer, t tag.Tag) error {
	return wire.WriteByte(w, int8(t))
}

// CompoundReader drives the one-slot-lookahead compound entry protocol:
// PeekTag inspects the next entry's tag without consuming it, so a caller
// (typically the bridge, matching a Go struct field by name-less
// position) can decide how to read the entry's name and payload. Once a
// wrong tag is requested via ReadNextNamed, the peeked tag is restored so
// the caller can retry with the correct reader — recoverable via
// errs.ErrExpectedTag.
type CompoundReader struct {
	r       io.Reader
	peeked  bool
	nextTag tag.Tag
}

// NewCompoundReader begins reading compound entries from r. The Compound
// tag id itself must already have been consumed by the caller.
func NewCompoundReader(r io.Reader) *CompoundReader {
	return &CompoundReader{r: r}
}

// PeekTag returns the next entry's tag without consuming it. It returns
// tag.End once the compound's terminator has been reached.
func (c *CompoundReader) PeekTag() (tag.Tag, error) {
	if c.peeked {
		return c.nextTag, nil
	}
	t, err := readTag(c.r)
	if err != nil {
		return 0, err
	}
	c.nextTag = t
	c.peeked = true
	return t, nil
}

// ReadNextNamed consumes the next entry, asserting it carries want. On a
// tag mismatch the peeked tag is restored (so the caller may inspect it
// via PeekTag and route accordingly) and errs.ErrExpectedTag is returned.
func (c *CompoundReader) ReadNextNamed(want tag.Tag) (name string, v value.NamelessValue, err error) {
	t, err := c.PeekTag()
	if err != nil {
		return "", value.NamelessValue{}, err
	}
	if t == tag.End {
		return "", value.NamelessValue{}, errs.ErrUnexpectedEnd
	}
	if t != want {
		return "", value.NamelessValue{}, &errs.ErrExpectedTag{Want: want, Got: t}
	}
	c.peeked = false

	name, err = wire.ReadString(c.r)
	if err != nil {
		return "", value.NamelessValue{}, err
	}
	v, err = readNameless(c.r, want)
	return name, v, err
}

// ReadToEnd reads every remaining entry as Values, stopping at and
// consuming the terminating End tag.
func (c *CompoundReader) ReadToEnd() ([]value.Value, error) {
	var out []value.Value
	for {
		t, err := c.PeekTag()
		if err != nil {
			return nil, err
		}
		if t == tag.End {
			c.peeked = false
			return out, nil
		}
		c.peeked = false

		name, err := wire.ReadString(c.r)
		if err != nil {
			return nil, err
		}
		v, err := readNameless(c.r, t)
		if err != nil {
			return nil, err
		}
		out = append(out, v.Named(name))
	}
}

// CompoundWriter writes a compound's Tag+name header once, then each
// entry, then the terminating End — mirroring BinaryCompoundWriter's
// write_start/write_next_tag/end split so the bridge can stream fields
// one at a time instead of building a []value.Value up front.
type CompoundWriter struct {
	w io.Writer
}

// WriteCompoundStart writes the Compound tag id and name, returning a
// CompoundWriter to stream its entries.
func WriteCompoundStart(w io.Writer, name string) (*CompoundWriter, error) {
	if err := writeTag(w, tag.Compound); err != nil {
		return nil, err
	}
	if err := wire.WriteString(w, name); err != nil {
		return nil, err
	}
	return &CompoundWriter{w: w}, nil
}

// WriteNext writes one named entry.
func (cw *CompoundWriter) WriteNext(name string, v value.NamelessValue) error {
	if err := writeTag(cw.w, v.Tag()); err != nil {
		return err
	}
	if err := wire.WriteString(cw.w, name); err != nil {
		return err
	}
	return writeNamelessPayload(cw.w, v)
}

// End writes the terminating End tag.
func (cw *CompoundWriter) End() error {
	return writeTag(cw.w, tag.End)
}

// ListReader drives reading a homogeneous sequence whose header (element
// tag where applicable, plus an i32 length) has already been consumed by
// the caller — mirroring BinaryListReader, constructed via NewListReader
// for both a top-level named list/array and a nested element with no
// name of its own.
type ListReader struct {
	r      io.Reader
	kind   tag.ListKind
	length int32
	read   int32
}

// NewListReader begins reading a ByteArray/IntArray/LongArray/List whose
// wire tag (and, for List, element tag) is kind, and whose length has
// already been read as length.
func NewListReader(r io.Reader, kind tag.ListKind, length int32) *ListReader {
	return &ListReader{r: r, kind: kind, length: length}
}

// Kind reports the sequence's wire kind.
func (lr *ListReader) Kind() tag.ListKind { return lr.kind }

// Len reports the total element count.
func (lr *ListReader) Len() int { return int(lr.length) }

// Next reads the next element. It returns io.EOF once Len elements have
// been read.
func (lr *ListReader) Next() (value.NamelessValue, error) {
	if lr.read >= lr.length {
		return value.NamelessValue{}, io.EOF
	}
	lr.read++
	return readNameless(lr.r, lr.kind.ElementTag())
}

// ListWriter mirrors BinaryListWriter: construct with the header already
// chosen (WriteListHeader for a named top-level list/array,
// WriteSubListHeader for a nested element with no name), then stream
// each untagged element.
type ListWriter struct {
	w io.Writer
}

// WriteListHeader writes a top-level list/array's tag, name, (element tag
// if generic List,) and length.
func WriteListHeader(w io.Writer, kind tag.ListKind, name string, length int32) (*ListWriter, error) {
	if err := writeTag(w, kind.WireTag()); err != nil {
		return nil, err
	}
	if err := wire.WriteString(w, name); err != nil {
		return nil, err
	}
	if kind.Array == tag.List {
		if err := writeTag(w, kind.Elem); err != nil {
			return nil, err
		}
	}
	if err := wire.WriteInt(w, length); err != nil {
		return nil, err
	}
	return &ListWriter{w: w}, nil
}

// WriteSubListHeader writes a nested list/array's header with no name: an
// element tag (for generic List) followed by the length.
func WriteSubListHeader(w io.Writer, kind tag.ListKind, length int32) (*ListWriter, error) {
	if kind.Array == tag.List {
		if err := writeTag(w, kind.Elem); err != nil {
			return nil, err
		}
	}
	if err := wire.WriteInt(w, length); err != nil {
		return nil, err
	}
	return &ListWriter{w: w}, nil
}

// WriteNext writes one untagged element.
func (lw *ListWriter) WriteNext(v value.NamelessValue) error {
	return writeNamelessPayload(lw.w, v)
}
