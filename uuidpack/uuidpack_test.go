package uuidpack

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPackMatchesSpecVector(t *testing.T) {
	u := uuid.MustParse("d087006b-d72c-4cdf-924d-6f903704d05c")

	got := Pack(u)
	want := Packed{-796458901, -684962593, -1840418928, 923062364}
	require.Equal(t, want, got)

	require.Equal(t, u, got.Unpack())
}

func TestPackUnpackRoundTrip(t *testing.T) {
	u := uuid.New()
	require.Equal(t, u, Pack(u).Unpack())
}
