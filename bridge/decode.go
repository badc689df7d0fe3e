package bridge

import (
	"fmt"
	"reflect"

	"github.com/rowanforge/nbtgo/errs"
	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
)

// Unmarshal decodes a Compound value.Value into out, which must be a
// non-nil pointer to a struct or a map. This is the CompoundMap visitor
// from spec.md §4.4: it walks name/value entry pairs and dispatches each
// value by its stashed wire tag to the matching InnerDecoder branch
// below.
func Unmarshal(v value.Value, out any) error {
	if v.Tag() != tag.Compound {
		return fmt.Errorf("%w: document root must be a Compound, got %s", errs.ErrUnrepresentableValue, v.Tag())
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: Unmarshal target must be a non-nil pointer", errs.ErrUnrepresentableValue)
	}

	return decodeCompoundInto(v.Compound, rv.Elem(), 0)
}

func decodeCompoundInto(entries []value.Value, rv reflect.Value, depth int) error {
	if err := depthExceeded(depth); err != nil {
		return err
	}

	switch rv.Kind() {
	case reflect.Struct:
		return decodeStructFields(entries, rv, depth)
	case reflect.Map:
		return decodeMapEntries(entries, rv, depth)
	default:
		return fmt.Errorf("%w: cannot decode a Compound into %s", errs.ErrUnrepresentableValue, rv.Kind())
	}
}

func decodeStructFields(entries []value.Value, rv reflect.Value, depth int) error {
	t := rv.Type()
	byName := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, skip := fieldTag(field)
		if skip {
			continue
		}
		byName[name] = i
	}

	for _, entry := range entries {
		fi, ok := byName[entry.Name]
		if !ok {
			continue
		}
		if err := decodeInto(entry.Nameless(), rv.Field(fi), depth+1); err != nil {
			return fmt.Errorf("field %q: %w", entry.Name, err)
		}
	}

	return nil
}

func decodeMapEntries(entries []value.Value, rv reflect.Value, depth int) error {
	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("%w: map key kind %s", errs.ErrKeyMustBeString, rv.Type().Key().Kind())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(rv.Type(), len(entries)))
	}

	elemType := rv.Type().Elem()
	for _, entry := range entries {
		ev := reflect.New(elemType).Elem()
		if err := decodeInto(entry.Nameless(), ev, depth+1); err != nil {
			return fmt.Errorf("key %q: %w", entry.Name, err)
		}
		rv.SetMapIndex(reflect.ValueOf(entry.Name).Convert(rv.Type().Key()), ev)
	}

	return nil
}

// decodeInto is the InnerDecoder: it dispatches on nv's wire tag to the
// scalar, sequence, or nested-compound branch matching rv's Go type.
func decodeInto(nv value.NamelessValue, rv reflect.Value, depth int) error {
	if err := depthExceeded(depth); err != nil {
		return err
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeInto(nv, rv.Elem(), depth)
	}

	switch nv.Tag() {
	case tag.Byte:
		if nv.Kind == value.KindBoolean {
			return setBool(rv, nv.Boolean)
		}
		return setInt(rv, int64(nv.Byte))
	case tag.Short:
		return setInt(rv, int64(nv.Short))
	case tag.Int:
		return setInt(rv, int64(nv.Int))
	case tag.Long:
		return setInt(rv, nv.Long)
	case tag.Float:
		return setFloat(rv, float64(nv.Float))
	case tag.Double:
		return setFloat(rv, nv.Double)
	case tag.String:
		return setString(rv, nv.Str)
	case tag.ByteArray:
		return decodeByteArray(nv.ByteArray, rv)
	case tag.IntArray:
		return decodeIntArray(nv.IntArray, rv)
	case tag.LongArray:
		return decodeLongArray(nv.LongArray, rv)
	case tag.List:
		return decodeList(nv.List, rv, depth)
	case tag.Compound:
		return decodeCompoundInto(nv.Compound, rv, depth)
	default:
		return fmt.Errorf("%w: tag %s", errs.ErrUnrepresentableValue, nv.Tag())
	}
}

func setBool(rv reflect.Value, v bool) error {
	if rv.Kind() != reflect.Bool {
		return typeMismatch(rv, "bool")
	}
	rv.SetBool(v)
	return nil
}

func setInt(rv reflect.Value, v int64) error {
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		rv.SetInt(v)
		return nil
	default:
		return typeMismatch(rv, "integer")
	}
}

func setFloat(rv reflect.Value, v float64) error {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(v)
		return nil
	default:
		return typeMismatch(rv, "float")
	}
}

func setString(rv reflect.Value, v string) error {
	if rv.Kind() != reflect.String {
		return typeMismatch(rv, "string")
	}
	rv.SetString(v)
	return nil
}

func decodeByteArray(src []int8, rv reflect.Value) error {
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Int8 {
		return typeMismatch(rv, "[]int8")
	}
	out := make([]int8, len(src))
	copy(out, src)
	rv.Set(reflect.ValueOf(out))
	return nil
}

func decodeIntArray(src []int32, rv reflect.Value) error {
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Int32 {
		return typeMismatch(rv, "[]int32")
	}
	out := make([]int32, len(src))
	copy(out, src)
	rv.Set(reflect.ValueOf(out))
	return nil
}

func decodeLongArray(src []int64, rv reflect.Value) error {
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Int64 {
		return typeMismatch(rv, "[]int64")
	}
	out := make([]int64, len(src))
	copy(out, src)
	rv.Set(reflect.ValueOf(out))
	return nil
}

func decodeList(elems []value.NamelessValue, rv reflect.Value, depth int) error {
	if rv.Kind() != reflect.Slice {
		return typeMismatch(rv, "slice")
	}

	out := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
	for i, e := range elems {
		if err := decodeInto(e, out.Index(i), depth+1); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

func typeMismatch(rv reflect.Value, want string) error {
	return fmt.Errorf("%w: expected %s, target is %s", errs.ErrUnrepresentableValue, want, rv.Type())
}
