package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statkit/linreg/errs"
)

// Evaluation holds predictions and aggregate error metrics for a model
// applied to a labeled design matrix, typically the held-out test set.
type Evaluation struct {
	// Predicted holds Xβ for each row of the evaluated design matrix.
	Predicted []float64
	// MSE is the mean squared error against the true responses.
	MSE float64
	// RMSE is the square root of MSE.
	RMSE float64
	// RSquared is the coefficient of determination on the evaluated data.
	// It can be negative when the model fits worse than the response mean.
	RSquared float64
}

// Predict returns the predicted responses Xβ for the given design matrix.
//
// The matrix must have the same column layout the model was fitted with,
// including the constant column.
//
// Returns errs.ErrSizeMismatch when the column count differs from the number
// of fitted parameters.
func (m *Model) Predict(x *mat.Dense) ([]float64, error) {
	n, k := x.Dims()
	if k != m.nparams {
		return nil, fmt.Errorf("%w: %d design matrix columns, model has %d parameters",
			errs.ErrSizeMismatch, k, m.nparams)
	}

	out := mat.NewVecDense(n, nil)
	out.MulVec(x, m.beta)

	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		predicted[i] = out.AtVec(i)
	}

	return predicted, nil
}

// Evaluate predicts responses for x and reduces them against the true
// responses y into aggregate error metrics.
//
// Parameters:
//   - x: Design matrix with the model's column layout
//   - y: True responses, one per row of x
//
// Returns:
//   - *Evaluation: Predictions plus MSE, RMSE and R²
//   - error: errs.ErrSizeMismatch on row-count or column-count mismatch
//
// Example:
//
//	ev, err := model.Evaluate(test.X, test.Y)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("held-out MSE: %.4f\n", ev.MSE)
func (m *Model) Evaluate(x *mat.Dense, y *mat.VecDense) (*Evaluation, error) {
	predicted, err := m.Predict(x)
	if err != nil {
		return nil, err
	}
	if y.Len() != len(predicted) {
		return nil, fmt.Errorf("%w: %d predictions, %d true responses",
			errs.ErrSizeMismatch, len(predicted), y.Len())
	}

	n := len(predicted)
	mean := mat.Sum(y) / float64(n)

	ssRes := 0.0
	ssTot := 0.0
	for i := 0; i < n; i++ {
		residual := y.AtVec(i) - predicted[i]
		ssRes += residual * residual
		diff := y.AtVec(i) - mean
		ssTot += diff * diff
	}

	rsquared := 0.0
	if ssTot > 0 {
		rsquared = 1 - ssRes/ssTot
	}

	mse := ssRes / float64(n)

	return &Evaluation{
		Predicted: predicted,
		MSE:       mse,
		RMSE:      math.Sqrt(mse),
		RSquared:  rsquared,
	}, nil
}
