package dataset

import (
	"fmt"

	"github.com/statkit/linreg/errs"
	"github.com/statkit/linreg/internal/hash"
)

// Dataset is an immutable in-memory table of named numeric columns.
//
// All columns have the same length; rows keep the order they were loaded in.
// A Dataset is never mutated after construction, so it is safe for concurrent
// reads. Accessors return copies to preserve that guarantee.
type Dataset struct {
	names       []string
	index       map[string]int
	cols        [][]float64
	fingerprint uint64
}

// New creates a Dataset from named columns.
//
// The columns are copied, so the caller may reuse the input slices. This is
// the entry point for synthetic or programmatically built data; file input
// goes through Load or Read.
//
// Parameters:
//   - names: Column names, one per column
//   - cols: Column values; all columns must have equal length
//
// Returns:
//   - *Dataset: The constructed dataset
//   - error: errs.ErrSizeMismatch on unequal lengths, errs.ErrDuplicateColumn
//     on repeated names
func New(names []string, cols [][]float64) (*Dataset, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names for %d columns", errs.ErrSizeMismatch, len(names), len(cols))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: dataset needs at least one column", errs.ErrSizeMismatch)
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, name)
		}
		index[name] = i
	}

	rows := len(cols[0])
	copied := make([][]float64, len(cols))
	for i, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				errs.ErrSizeMismatch, names[i], len(col), rows)
		}
		copied[i] = append([]float64(nil), col...)
	}

	return &Dataset{
		names:       append([]string(nil), names...),
		index:       index,
		cols:        copied,
		fingerprint: hash.Fingerprint(names, cols),
	}, nil
}

// NumRows returns the number of observations.
func (d *Dataset) NumRows() int {
	return len(d.cols[0])
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.cols)
}

// Names returns the column names in load order.
func (d *Dataset) Names() []string {
	return append([]string(nil), d.names...)
}

// Fingerprint returns the xxHash64 content fingerprint of the dataset.
//
// Two datasets with the same columns, values and row order share a
// fingerprint; any difference in content changes it. Use it to record which
// data a model was fitted on.
func (d *Dataset) Fingerprint() uint64 {
	return d.fingerprint
}

// Column returns a copy of the named column's values.
//
// Returns errs.ErrColumnNotFound for unknown names.
func (d *Dataset) Column(name string) ([]float64, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}

	return append([]float64(nil), d.cols[i]...), nil
}

// String returns a short human-readable summary of the dataset.
func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset{Rows: %d, Columns: %v, Fingerprint: %016x}",
		d.NumRows(), d.names, d.fingerprint)
}

// subset builds a new Dataset containing the given rows, in the given order.
// Row indices must be valid; callers produce them from permutations of [0,n).
func (d *Dataset) subset(rows []int) *Dataset {
	cols := make([][]float64, len(d.cols))
	for i, col := range d.cols {
		sub := make([]float64, len(rows))
		for j, r := range rows {
			sub[j] = col[r]
		}
		cols[i] = sub
	}

	index := make(map[string]int, len(d.names))
	for i, name := range d.names {
		index[name] = i
	}

	return &Dataset{
		names:       append([]string(nil), d.names...),
		index:       index,
		cols:        cols,
		fingerprint: hash.Fingerprint(d.names, cols),
	}
}
