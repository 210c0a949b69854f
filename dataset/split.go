package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/statkit/linreg/errs"
)

// SplitResult holds the outcome of a train/test partition.
//
// Train and Test are disjoint Datasets whose rows together recover the
// original dataset with no duplication and no omission. The fraction and seed
// are recorded so a partition can be reproduced or reported.
type SplitResult struct {
	// Train holds the rows not assigned to the test subset.
	Train *Dataset
	// Test holds approximately Fraction of the rows.
	Test *Dataset
	// Fraction is the requested test-set proportion.
	Fraction float64
	// Seed is the shuffle seed used for row assignment.
	Seed int64
}

// Split partitions the dataset into disjoint train and test subsets.
//
// The test subset receives round(testFraction * n) rows, clamped so that both
// subsets are non-empty. Assignment is a seeded shuffle: a fixed seed on the
// same dataset reproduces the identical partition. Rows keep their original
// relative order within each subset. The receiver is not modified.
//
// Parameters:
//   - testFraction: Test-set proportion, strictly between 0 and 1
//   - seed: Shuffle seed for reproducible assignment
//
// Returns:
//   - *SplitResult: The partition
//   - error: errs.ErrInvalidFraction for a fraction outside (0,1),
//     errs.ErrTooFewRows for datasets with fewer than 2 rows
//
// Example:
//
//	sp, err := ds.Split(0.2, 42)
//	if err != nil {
//	    return err
//	}
//	dz, _ := sp.Train.Design("loan_amount", "lender_count")
func (d *Dataset) Split(testFraction float64, seed int64) (*SplitResult, error) {
	if testFraction <= 0 || testFraction >= 1 || math.IsNaN(testFraction) {
		return nil, fmt.Errorf("%w: got %v", errs.ErrInvalidFraction, testFraction)
	}

	n := d.NumRows()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d, need at least 2", errs.ErrTooFewRows, n)
	}

	testSize := int(math.Round(testFraction * float64(n)))
	// Both subsets must remain non-empty.
	if testSize < 1 {
		testSize = 1
	}
	if testSize > n-1 {
		testSize = n - 1
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	testRows := append([]int(nil), perm[:testSize]...)
	trainRows := append([]int(nil), perm[testSize:]...)
	sort.Ints(testRows)
	sort.Ints(trainRows)

	return &SplitResult{
		Train:    d.subset(trainRows),
		Test:     d.subset(testRows),
		Fraction: testFraction,
		Seed:     seed,
	}, nil
}
