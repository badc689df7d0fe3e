package snbt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanforge/nbtgo/tag"
	"github.com/rowanforge/nbtgo/value"
)

func TestParseWorkedExample(t *testing.T) {
	v, err := Parse(`{a:123,b:"hi",c:{d:4.5f}}`)
	require.NoError(t, err)

	want := value.Compound("", []value.Value{
		value.Int("a", 123),
		value.String("b", "hi"),
		value.Compound("c", []value.Value{
			value.Float("d", 4.5),
		}),
	})
	require.Equal(t, want, v)
}

func TestParseTypedArrays(t *testing.T) {
	v, err := Parse(`{xs:[I;1,2,3]}`)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, v.Compound[0].IntArray)
	require.Equal(t, tag.IntArray, v.Compound[0].Kind)
}

func TestParseBooleanAndTypedScalars(t *testing.T) {
	v, err := Parse(`{flag:true,small:5b,mid:7s,huge:9L,precise:1.5d}`)
	require.NoError(t, err)

	byName := map[string]value.Value{}
	for _, e := range v.Compound {
		byName[e.Name] = e
	}

	require.Equal(t, value.KindBoolean, byName["flag"].Kind)
	require.True(t, byName["flag"].Boolean)
	require.Equal(t, int8(5), byName["small"].Byte)
	require.Equal(t, int16(7), byName["mid"].Short)
	require.Equal(t, int64(9), byName["huge"].Long)
	require.Equal(t, 1.5, byName["precise"].Double)
}

func TestParseMissingName(t *testing.T) {
	_, err := Parse(`{123}`)
	require.Error(t, err)
}

func TestFormatParseRoundTrip(t *testing.T) {
	v := value.Compound("", []value.Value{
		value.Int("a", 123),
		value.String("b", "hi"),
		value.Compound("c", []value.Value{
			value.Float("d", 4.5),
		}),
		value.IntArray("xs", []int32{1, 2, 3}),
		value.ByteArray("bs", []int8{1, 2, 3}),
		value.LongArray("ls", []int64{1, 2, 3000000000}),
		value.Bool("flag", true),
	})

	text := Format(v)
	back, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, v, back)
}

func TestFormatEscapesQuotesAndBackslashes(t *testing.T) {
	v := value.Compound("", []value.Value{value.String("s", `a"b\c`)})
	text := Format(v)
	back, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, v, back)
}
