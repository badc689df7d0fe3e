// Command nbtdump dumps a .dat/.nbt/.mca file's Value tree as SNBT, for
// manual verification while developing against nbtgo — the CLI
// counterpart to the teacher's examples/ demos, but driven by a real
// file on disk instead of synthetic in-memory data.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rowanforge/nbtgo/compress"
	"github.com/rowanforge/nbtgo/region"
	"github.com/rowanforge/nbtgo/snbt"
	"github.com/rowanforge/nbtgo/stream"
	"github.com/rowanforge/nbtgo/value"
)

func main() {
	chunkX := flag.Int("x", 0, "chunk-local x coordinate (.mca files only)")
	chunkZ := flag.Int("z", 0, "chunk-local z coordinate (.mca files only)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-x N -z N] <file.dat|file.nbt|file.mca>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	v, err := dump(path, *chunkX, *chunkZ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nbtdump: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(snbt.Format(v))
}

// dump reads path and returns its top-level Value tree. A .mca file is
// read as a region container and one chunk (chunkX, chunkZ) is
// extracted; any other extension is read as a single NBT document,
// transparently un-gzipping it first if it carries a gzip magic header
// the way vanilla player/level .dat files always do.
func dump(path string, chunkX, chunkZ int) (value.Value, error) {
	if strings.EqualFold(filepath.Ext(path), ".mca") {
		return dumpRegionChunk(path, chunkX, chunkZ)
	}
	return dumpDocument(path)
}

func dumpRegionChunk(path string, chunkX, chunkZ int) (value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return value.Value{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return value.Value{}, err
	}

	reg, err := region.Open(f, info.Size())
	if err != nil {
		return value.Value{}, err
	}

	v, ok, err := reg.ReadChunk(chunkX, chunkZ)
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return value.Value{}, fmt.Errorf("no chunk at (%d, %d)", chunkX, chunkZ)
	}
	return v, nil
}

func dumpDocument(path string) (value.Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return value.Value{}, err
	}

	raw, err = maybeGunzip(raw)
	if err != nil {
		return value.Value{}, err
	}

	return stream.ReadValue(bytes.NewReader(raw))
}

// maybeGunzip decompresses raw when it carries a gzip magic header
// (0x1f 0x8b), the compression vanilla Minecraft always applies to
// standalone .dat files; otherwise raw is assumed to already be a bare
// NBT document.
func maybeGunzip(raw []byte) ([]byte, error) {
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		return raw, nil
	}

	codec, err := compress.GetCodec(compress.Gzip)
	if err != nil {
		return nil, err
	}
	return codec.Decompress(raw)
}
