package snbt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
)

// Format renders v's entries (its name is not emitted — the root has no
// text-form name, matching Parse) as SNBT text. This side has no
// original-source reference: the Rust library's SNBT writer is entirely
// unimplemented (todo!()) upstream, so this formatter is written fresh
// against the same grammar Parse accepts, not ported.
func Format(v value.Value) string {
	return formatNameless(v.Nameless())
}

func formatNameless(v value.NamelessValue) string {
	switch v.Kind {
	case value.KindBoolean:
		if v.Boolean {
			return "true"
		}
		return "false"
	case tag.Byte:
		return strconv.FormatInt(int64(v.Byte), 10) + "b"
	case tag.Short:
		return strconv.FormatInt(int64(v.Short), 10) + "s"
	case tag.Int:
		return strconv.FormatInt(int64(v.Int), 10)
	case tag.Long:
		return strconv.FormatInt(v.Long, 10) + "L"
	case tag.Float:
		return strconv.FormatFloat(float64(v.Float), 'g', -1, 32) + "f"
	case tag.Double:
		return strconv.FormatFloat(v.Double, 'g', -1, 64) + "d"
	case tag.String:
		return quote(v.Str)
	case tag.ByteArray:
		parts := make([]string, len(v.ByteArray))
		for i, b := range v.ByteArray {
			parts[i] = strconv.FormatInt(int64(b), 10) + "b"
		}
		return "[B;" + strings.Join(parts, ",") + "]"
	case tag.IntArray:
		parts := make([]string, len(v.IntArray))
		for i, n := range v.IntArray {
			parts[i] = strconv.FormatInt(int64(n), 10)
		}
		return "[I;" + strings.Join(parts, ",") + "]"
	case tag.LongArray:
		parts := make([]string, len(v.LongArray))
		for i, n := range v.LongArray {
			parts[i] = strconv.FormatInt(n, 10) + "L"
		}
		return "[L;" + strings.Join(parts, ",") + "]"
	case tag.List:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = formatNameless(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case tag.Compound:
		parts := make([]string, len(v.Compound))
		for i, e := range v.Compound {
			parts[i] = fmt.Sprintf("%s:%s", e.Name, formatNameless(e.Nameless()))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return ""
	}
}

// quote renders s as a double-quoted SNBT string literal, escaping
// backslashes and double quotes.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}
