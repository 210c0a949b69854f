package compress

import (
	"fmt"

	"github.com/statkit/linreg/errs"
	"github.com/statkit/linreg/format"
)

// Compressor compresses a complete in-memory payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete in-memory payload.
//
// The dataset loader decompresses whole files at once, so implementations
// operate on full byte slices rather than streams.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been produced by the matching algorithm; corrupted
	// or mismatched data returns an error.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCodec(),
	format.CompressionGzip:   NewGzipCodec(),
	format.CompressionZstd:   NewZstdCodec(),
	format.CompressionS2:     NewS2Codec(),
	format.CompressionLZ4:    NewLZ4Codec(),
	format.CompressionSnappy: NewSnappyCodec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns errs.ErrUnsupportedCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
