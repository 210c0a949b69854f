// Package compress provides decompression codecs for compressed input files.
//
// Tabular datasets are often stored compressed. The dataset loader reads the
// whole file into memory and, based on the file extension (see
// format.FromExtension), routes the raw bytes through one of the codecs in
// this package before parsing. Each codec also implements the compression
// direction, which the tests and tooling use to produce fixtures without
// shipping binary test data.
//
// # Supported algorithms
//
//   - None: pass-through (format.CompressionNone)
//   - Gzip: ubiquitous for .csv.gz exports (format.CompressionGzip)
//   - Zstd: best ratio for archived datasets (format.CompressionZstd)
//   - S2: fast Snappy-compatible superset (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//   - Snappy: block format (format.CompressionSnappy)
//
// Zstd has two implementations selected at build time: the pure-Go
// klauspost/compress encoder by default, and the cgo valyala/gozstd binding
// when building with the "gozstd" tag.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionGzip)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileBytes)
//
// All codecs are stateless or internally pooled and safe for concurrent use.
package compress
