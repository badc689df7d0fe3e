package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func allCodecs() map[string]CompressionType {
	return map[string]CompressionType{
		"Uncompressed": Uncompressed,
		"Gzip":         Gzip,
		"Zlib":         Zlib,
		"S2":           S2,
		"Zstd":         Zstd,
		"LZ4":          LZ4,
	}
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "Gzip", Gzip.String())
	require.Equal(t, "Zlib", Zlib.String())
	require.Equal(t, "Uncompressed", Uncompressed.String())
	require.Equal(t, "S2", S2.String())
	require.Equal(t, "Zstd", Zstd.String())
	require.Equal(t, "LZ4", LZ4.String())
	require.Equal(t, "Custom(200)", CompressionType(200).String())
}

func TestGetCodecRejectsCustom(t *testing.T) {
	_, err := GetCodec(CompressionType(42))
	require.Error(t, err)
}

func TestAllCodecsRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"empty":      {},
		"small_text": []byte("Hello, Minecraft!"),
		"repeated":   bytes.Repeat([]byte("ABCD"), 200),
		"binary":     {0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD},
	}

	for name, ct := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			for pname, data := range payloads {
				t.Run(pname, func(t *testing.T) {
					compressed, err := codec.Compress(data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.True(t, bytes.Equal(data, decompressed), "round-trip mismatch for %s", pname)
				})
			}
		})
	}
}

func TestUncompressedIsIdentity(t *testing.T) {
	codec, err := GetCodec(Uncompressed)
	require.NoError(t, err)

	data := []byte("no compression here")
	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)
}

func TestAllCodecsCompressHighlyCompressibleData(t *testing.T) {
	data := make([]byte, 256*1024)

	for name, ct := range allCodecs() {
		if ct == Uncompressed {
			continue
		}

		t.Run(name, func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(data)/4, fmt.Sprintf("%s should shrink a block of zeros", name))
		})
	}
}
