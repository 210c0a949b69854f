package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/statkit/linreg/errs"
)

func TestPredict(t *testing.T) {
	model := fitKnownLine(t) // y = 1 + 2x

	x := designWithConst([]float64{5, 6, 10})
	predicted, err := model.Predict(x)
	require.NoError(t, err)

	require.Len(t, predicted, 3)
	require.InDelta(t, 11.0, predicted[0], 1e-9)
	require.InDelta(t, 13.0, predicted[1], 1e-9)
	require.InDelta(t, 21.0, predicted[2], 1e-9)
}

func TestPredictColumnMismatch(t *testing.T) {
	model := fitKnownLine(t)

	// Three columns against a two-parameter model.
	x := mat.NewDense(2, 3, []float64{1, 5, 2, 1, 6, 3})
	_, err := model.Predict(x)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}

func TestEvaluate(t *testing.T) {
	model := fitKnownLine(t) // y = 1 + 2x

	x := designWithConst([]float64{5, 6})
	// True responses offset by +1 and -1: MSE = (1 + 1) / 2 = 1.
	y := mat.NewVecDense(2, []float64{12, 12})

	ev, err := model.Evaluate(x, y)
	require.NoError(t, err)
	require.InDelta(t, 1.0, ev.MSE, 1e-9)
	require.InDelta(t, 1.0, ev.RMSE, 1e-9)
	require.Len(t, ev.Predicted, 2)
}

func TestEvaluatePerfect(t *testing.T) {
	model := fitKnownLine(t)

	x := designWithConst([]float64{7, 8, 9})
	y := mat.NewVecDense(3, []float64{15, 17, 19})

	ev, err := model.Evaluate(x, y)
	require.NoError(t, err)
	require.InDelta(t, 0.0, ev.MSE, 1e-12)
	require.InDelta(t, 1.0, ev.RSquared, 1e-12)
}

func TestEvaluateRowMismatch(t *testing.T) {
	model := fitKnownLine(t)

	x := designWithConst([]float64{5, 6})
	y := mat.NewVecDense(3, []float64{12, 12, 12})

	_, err := model.Evaluate(x, y)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}
