package format

import (
	"path/filepath"
	"strings"
)

// CompressionType represents the compression applied to an input file.
type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip   CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd   CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x5 // CompressionLZ4 represents LZ4 block compression.
	CompressionSnappy CompressionType = 0x6 // CompressionSnappy represents Snappy block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// extCompression maps file name suffixes to compression types.
var extCompression = map[string]CompressionType{
	".gz":     CompressionGzip,
	".gzip":   CompressionGzip,
	".zst":    CompressionZstd,
	".zstd":   CompressionZstd,
	".s2":     CompressionS2,
	".lz4":    CompressionLZ4,
	".sz":     CompressionSnappy,
	".snappy": CompressionSnappy,
}

// FromExtension returns the compression type implied by the extension of path.
// Paths without a recognized compression suffix, including plain ".csv" files,
// map to CompressionNone.
func FromExtension(path string) CompressionType {
	if ct, ok := extCompression[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}

	return CompressionNone
}
