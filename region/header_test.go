package region

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := &Header{}
	h.Locations[5] = LocationEntry{SectorOffset: 1234, SectorCount: 3}
	h.Timestamps[5] = 1690000000

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))
	require.Equal(t, 2*sectorSize, buf.Len())

	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, h.Locations[5], got.Locations[5])
	require.Equal(t, h.Timestamps[5], got.Timestamps[5])
	require.False(t, got.Locations[0].present())
}
