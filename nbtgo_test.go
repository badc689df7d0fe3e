package nbtgo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanforge/nbtgo/format"
)

type playerPos struct {
	Name    string
	X, Y, Z float64
}

func TestMarshalUnmarshalBinaryRoundTrip(t *testing.T) {
	in := playerPos{Name: "Steve", X: 1.5, Y: 64, Z: -3.25}

	data, err := Marshal(in, format.Binary)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var out playerPos
	require.NoError(t, Unmarshal(data, format.Binary, &out))
	require.Equal(t, in, out)
}

func TestMarshalUnmarshalSNBTRoundTrip(t *testing.T) {
	in := playerPos{Name: "Alex", X: 0, Y: 100, Z: 200}

	data, err := Marshal(in, format.SNBT)
	require.NoError(t, err)

	var out playerPos
	require.NoError(t, Unmarshal(data, format.SNBT, &out))
	require.Equal(t, in, out)
}

func TestMarshalRejectsUnsupportedFormat(t *testing.T) {
	_, err := Marshal(playerPos{}, format.Format(0xff))
	require.Error(t, err)
}
