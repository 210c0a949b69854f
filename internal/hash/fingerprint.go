// Package hash computes content fingerprints for datasets.
//
// Fingerprints let callers record which data a model was fitted on and detect
// accidental changes between runs; they are not cryptographic.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint computes the xxHash64 of named float64 columns.
//
// Column names and values are folded into a single streaming digest in order,
// so two datasets fingerprint equally only when they have the same columns
// with the same values in the same row order. Each name is terminated with a
// NUL so that ("ab","c") and ("a","bc") cannot collide.
func Fingerprint(names []string, cols [][]float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for i, name := range names {
		_, _ = d.WriteString(name)
		_, _ = d.Write([]byte{0})

		for _, v := range cols[i] {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
