package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/linreg/errs"
)

// Design holds the matrix form of a dataset prepared for regression.
type Design struct {
	// X is the n × k design matrix. Column 0 is the constant term, fixed at 1
	// for every observation; the remaining columns are the explanatory
	// variables in the requested order.
	X *mat.Dense
	// Y is the response vector, length n.
	Y *mat.VecDense
	// Names labels the columns of X: "const" first, then the explanatory
	// column names.
	Names []string
}

// Design builds the design matrix and response vector for a regression of
// the response column on the explanatory columns.
//
// A constant column fixed at 1 is prepended, so the fitted model has an
// intercept. The matrix copies the dataset's values; the dataset itself is
// not referenced afterwards.
//
// Parameters:
//   - response: Name of the response column
//   - explanatory: Names of one or more explanatory columns
//
// Returns:
//   - *Design: Design matrix, response vector, and column names
//   - error: errs.ErrColumnNotFound for unknown columns
func (d *Dataset) Design(response string, explanatory ...string) (*Design, error) {
	if len(explanatory) == 0 {
		return nil, errors.New("at least one explanatory column is required")
	}

	y, err := d.Column(response)
	if err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}

	n := d.NumRows()
	if n == 0 {
		return nil, fmt.Errorf("%w: dataset has no rows", errs.ErrTooFewRows)
	}

	k := 1 + len(explanatory)
	names := make([]string, 0, k)
	names = append(names, "const")

	data := make([]float64, n*k)
	for i := 0; i < n; i++ {
		data[i*k] = 1
	}

	for j, name := range explanatory {
		col, err := d.Column(name)
		if err != nil {
			return nil, fmt.Errorf("explanatory: %w", err)
		}
		names = append(names, name)
		for i := 0; i < n; i++ {
			data[i*k+j+1] = col[i]
		}
	}

	return &Design{
		X:     mat.NewDense(n, k, data),
		Y:     mat.NewVecDense(n, y),
		Names: names,
	}, nil
}
