package bridge

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/rowanforge/nbtgo/errs"
	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
)

// Marshal encodes v into a named Compound value.Value. v must be a
// struct or a map — NBT requires the outer value to be a named
// Compound, so a naked scalar at the root is rejected with
// errs.ErrUnrepresentableValue, matching spec.md §4.4's root
// restriction.
func Marshal(v any) (value.Value, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return value.Value{}, fmt.Errorf("%w: nil pointer at document root", errs.ErrUnrepresentableValue)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		entries, err := encodeStructFields(rv, 0)
		if err != nil {
			return value.Value{}, err
		}
		return value.Compound(rv.Type().Name(), entries), nil
	case reflect.Map:
		entries, err := encodeMapEntries(rv, 0)
		if err != nil {
			return value.Value{}, err
		}
		return value.Compound("", entries), nil
	default:
		return value.Value{}, fmt.Errorf("%w: document root must be a struct or map, got %s", errs.ErrUnrepresentableValue, rv.Kind())
	}
}

// encodeNamed dispatches a single named field/entry: the NamedValueEncoder
// role from spec.md §4.4, writing tag+name+payload for scalars and
// recursing for nested compounds and sequences.
func encodeNamed(name string, rv reflect.Value, depth int) (value.Value, error) {
	nv, err := encodeValue(rv, depth)
	if err != nil {
		return value.Value{}, err
	}
	return nv.Named(name), nil
}

func encodeValue(rv reflect.Value, depth int) (value.NamelessValue, error) {
	if err := depthExceeded(depth); err != nil {
		return value.NamelessValue{}, err
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return value.NamelessValue{}, fmt.Errorf("%w: nil value in sequence or map", errs.ErrUnrepresentableValue)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Bool:
		return value.NamelessValue{Kind: value.KindBoolean, Boolean: rv.Bool()}, nil
	case reflect.Int8:
		return value.NamelessValue{Kind: tag.Byte, Byte: int8(rv.Int())}, nil
	case reflect.Int16:
		return value.NamelessValue{Kind: tag.Short, Short: int16(rv.Int())}, nil
	case reflect.Int32, reflect.Int:
		return value.NamelessValue{Kind: tag.Int, Int: int32(rv.Int())}, nil
	case reflect.Int64:
		return value.NamelessValue{Kind: tag.Long, Long: rv.Int()}, nil
	case reflect.Float32:
		return value.NamelessValue{Kind: tag.Float, Float: float32(rv.Float())}, nil
	case reflect.Float64:
		return value.NamelessValue{Kind: tag.Double, Double: rv.Float()}, nil
	case reflect.String:
		return value.NamelessValue{Kind: tag.String, Str: rv.String()}, nil
	case reflect.Struct:
		entries, err := encodeStructFields(rv, depth+1)
		if err != nil {
			return value.NamelessValue{}, err
		}
		return value.NamelessValue{Kind: tag.Compound, Compound: entries}, nil
	case reflect.Map:
		entries, err := encodeMapEntries(rv, depth+1)
		if err != nil {
			return value.NamelessValue{}, err
		}
		return value.NamelessValue{Kind: tag.Compound, Compound: entries}, nil
	case reflect.Slice, reflect.Array:
		return encodeSequence(rv, depth+1)
	default:
		return value.NamelessValue{}, fmt.Errorf("%w: %s", errs.ErrUnrepresentableValue, rv.Kind())
	}
}

// encodeSequence implements spec.md §4.4's three-layer sequence
// encoding: the static element kind of the slice or array (empty or
// not) picks the wire shape — ByteArray/IntArray/LongArray for int8/
// int32/int64 elements, a generic List otherwise. Fixed-size arrays
// such as [4]int32 and slices are both sequences; uint8 (byte) elements
// have no NBT mapping and are rejected. The length is always known up
// front in Go, so the "unknown length" UnrepresentableValue case spec'd
// for streaming sources never arises here.
func encodeSequence(rv reflect.Value, depth int) (value.NamelessValue, error) {
	n := rv.Len()

	switch rv.Type().Elem().Kind() {
	case reflect.Int8:
		out := make([]int8, n)
		for i := 0; i < n; i++ {
			out[i] = int8(rv.Index(i).Int())
		}
		return value.NamelessValue{Kind: tag.ByteArray, ByteArray: out}, nil
	case reflect.Int32:
		out := make([]int32, n)
		for i := 0; i < n; i++ {
			out[i] = int32(rv.Index(i).Int())
		}
		return value.NamelessValue{Kind: tag.IntArray, IntArray: out}, nil
	case reflect.Int64:
		out := make([]int64, n)
		for i := 0; i < n; i++ {
			out[i] = rv.Index(i).Int()
		}
		return value.NamelessValue{Kind: tag.LongArray, LongArray: out}, nil
	}

	elems := make([]value.NamelessValue, n)
	for i := 0; i < n; i++ {
		nv, err := encodeValue(rv.Index(i), depth)
		if err != nil {
			return value.NamelessValue{}, err
		}
		elems[i] = nv
	}
	return value.NamelessValue{Kind: tag.List, List: elems}, nil
}

func encodeStructFields(rv reflect.Value, depth int) ([]value.Value, error) {
	t := rv.Type()
	entries := make([]value.Value, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitempty, skip := fieldTag(field)
		if skip {
			continue
		}

		fv := rv.Field(i)
		if omitempty && fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}

		entry, err := encodeNamed(name, fv, depth)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// encodeMapEntries requires string-kind keys: NBT compound entries are
// keyed by name, so a map key must serialize as exactly a string, else
// errs.ErrKeyMustBeString per spec.md §4.4.
func encodeMapEntries(rv reflect.Value, depth int) ([]value.Value, error) {
	entries := make([]value.Value, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key kind %s", errs.ErrKeyMustBeString, k.Kind())
		}

		entry, err := encodeNamed(k.String(), iter.Value(), depth)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// fieldTag resolves a struct field's wire name from an `nbt:"..."` tag,
// falling back to the Go field name. "-" skips the field entirely.
func fieldTag(field reflect.StructField) (name string, omitempty, skip bool) {
	raw, ok := field.Tag.Lookup("nbt")
	if !ok {
		return field.Name, false, false
	}

	parts := strings.Split(raw, ",")
	name = parts[0]
	if name == "-" {
		return "", false, true
	}
	if name == "" {
		name = field.Name
	}

	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}

	return name, omitempty, false
}
