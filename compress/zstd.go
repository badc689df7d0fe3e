package compress

// zstdCodec implements Zstd (tag 5), a vendor extension offering the
// best compression ratio of the registered codecs at the cost of
// encode speed — suited to archival rewrites of region files this
// implementation will be the sole reader of.
type zstdCodec struct{}

var _ Codec = zstdCodec{}
