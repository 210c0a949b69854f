package compress

import "github.com/golang/snappy"

// SnappyCodec handles Snappy block-compressed input files (.sz).
//
// S2 decodes Snappy data as well, but files produced by Snappy writers are
// common enough to warrant the dedicated codec.
type SnappyCodec struct{}

var _ Codec = (*SnappyCodec)(nil)

// NewSnappyCodec creates a new Snappy codec.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

// Compress compresses the input data using the Snappy block format.
func (c SnappyCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, data), nil
}

// Decompress decompresses Snappy block-compressed data.
func (c SnappyCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Decode(nil, data)
}
