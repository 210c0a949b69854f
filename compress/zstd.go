package compress

// ZstdCodec handles Zstandard-compressed input files (.csv.zst).
//
// Zstd offers the best compression ratio of the supported algorithms, making
// it the usual choice for archived datasets where the file is written once
// and loaded many times.
//
// Two implementations exist, selected at build time:
//   - Default: pure-Go klauspost/compress/zstd
//   - With the "gozstd" build tag: cgo valyala/gozstd binding
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
