package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestSum64MatchesXXHash(t *testing.T) {
	data := []byte("loan_amount,lender_count\n1000,27\n")
	require.Equal(t, xxhash.Sum64(data), Sum64(data))
}

func TestFingerprintDeterministic(t *testing.T) {
	names := []string{"loan_amount", "lender_count"}
	cols := [][]float64{{1000, 525, 4000}, {27, 12, 91}}

	first := Fingerprint(names, cols)
	second := Fingerprint(names, cols)
	require.Equal(t, first, second)
}

func TestFingerprintSensitivity(t *testing.T) {
	names := []string{"loan_amount", "lender_count"}
	cols := [][]float64{{1000, 525, 4000}, {27, 12, 91}}
	base := Fingerprint(names, cols)

	t.Run("value change", func(t *testing.T) {
		changed := [][]float64{{1000, 525, 4001}, {27, 12, 91}}
		require.NotEqual(t, base, Fingerprint(names, changed))
	})

	t.Run("row order change", func(t *testing.T) {
		reordered := [][]float64{{525, 1000, 4000}, {12, 27, 91}}
		require.NotEqual(t, base, Fingerprint(names, reordered))
	})

	t.Run("name change", func(t *testing.T) {
		renamed := []string{"loan_amount", "lenders"}
		require.NotEqual(t, base, Fingerprint(renamed, cols))
	})

	t.Run("name boundary", func(t *testing.T) {
		// ("ab","c") vs ("a","bc") with identical values must differ.
		a := Fingerprint([]string{"ab", "c"}, [][]float64{{1}, {2}})
		b := Fingerprint([]string{"a", "bc"}, [][]float64{{1}, {2}})
		require.NotEqual(t, a, b)
	})
}
