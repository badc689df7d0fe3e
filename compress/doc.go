// Package compress documents the region chunk compression registry in
// more depth than codec.go's godoc comments.
//
// # Algorithm selection
//
// Region files on disk almost always use Gzip or Zlib (the two
// compressions vanilla Minecraft ever writes); S2, Zstd, and LZ4 are
// vendor extensions this implementation recognizes for its own writes
// but that no other NBT reader will understand.
//
//	Gzip         | standard, slower than Zlib to decompress        | vanilla default for player data
//	Zlib         | standard, region-file chunk default             | vanilla default for chunk sections
//	Uncompressed | no compression                                  | debugging, already-compressed payloads
//	S2           | fast, moderate ratio, vendor-only                | hot-path rewrite tools
//	Zstd         | best ratio, moderate speed, vendor-only          | archival/cold-storage rewrites
//	LZ4          | fastest decompression, vendor-only                | read-heavy tooling
//
// Writing with a vendor extension trades interoperability for speed or
// ratio; only do so for region files this implementation (or another
// nbtgo-based tool) will be the sole reader of.
package compress
