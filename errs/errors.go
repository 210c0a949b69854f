// Package errs defines sentinel errors shared across linreg packages.
//
// Callers match these with errors.Is; call sites wrap them with
// fmt.Errorf("%w: ...") to add context.
package errs

import "errors"

// Fitting errors.
var (
	// ErrRankDeficient indicates the design matrix is singular or near-singular,
	// typically because explanatory columns are perfectly collinear.
	ErrRankDeficient = errors.New("design matrix is rank deficient")

	// ErrInsufficientData indicates fewer observations than model parameters.
	ErrInsufficientData = errors.New("insufficient observations for number of parameters")

	// ErrSizeMismatch indicates mismatched dimensions between related inputs,
	// e.g. a response vector whose length differs from the design matrix rows.
	ErrSizeMismatch = errors.New("mismatched input dimensions")

	// ErrInvalidConfidenceLevel indicates a confidence level outside (0, 1).
	ErrInvalidConfidenceLevel = errors.New("confidence level must be in (0, 1)")
)

// Dataset errors.
var (
	// ErrNoHeader indicates the input has no header row.
	ErrNoHeader = errors.New("input has no header row")

	// ErrColumnNotFound indicates a requested column is not in the dataset.
	ErrColumnNotFound = errors.New("column not found")

	// ErrDuplicateColumn indicates a column name appears more than once.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrNonNumericValue indicates a cell in a required column failed to parse
	// as a number.
	ErrNonNumericValue = errors.New("non-numeric value")

	// ErrMissingValue indicates an empty cell in a required column.
	ErrMissingValue = errors.New("missing value")

	// ErrRaggedRow indicates a row whose field count differs from the header.
	ErrRaggedRow = errors.New("row has wrong number of fields")

	// ErrUnsupportedCompression indicates an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// Partitioning errors.
var (
	// ErrInvalidFraction indicates a test fraction outside (0, 1).
	ErrInvalidFraction = errors.New("test fraction must be in (0, 1)")

	// ErrTooFewRows indicates a dataset too small to partition.
	ErrTooFewRows = errors.New("dataset has too few rows to split")
)
