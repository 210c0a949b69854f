package linreg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statkit/linreg/errs"
)

// writeLoansCSV writes a small loans file where amount = 100 + 40*lenders
// exactly, so fits against it have a known closed-form answer.
func writeLoansCSV(t *testing.T) string {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("loan_amount,lender_count\n")
	for _, lenders := range []int{5, 8, 11, 14, 17, 20, 23, 26, 29, 32} {
		fmt.Fprintf(&sb, "%d,%d\n", 100+40*lenders, lenders)
	}

	path := filepath.Join(t.TempDir(), "loans.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))

	return path
}

func TestLoadCSVAndFitDataset(t *testing.T) {
	ds, err := LoadCSV(writeLoansCSV(t))
	require.NoError(t, err)
	require.Equal(t, 10, ds.NumRows())

	model, err := FitDataset(ds, "loan_amount", []string{"lender_count"})
	require.NoError(t, err)

	require.InDelta(t, 100.0, model.Intercept(), 1e-6)
	slope, ok := model.Coefficient("lender_count")
	require.True(t, ok)
	require.InDelta(t, 40.0, slope.Estimate, 1e-6)
}

func TestFitDatasetUnknownColumn(t *testing.T) {
	ds, err := LoadCSV(writeLoansCSV(t))
	require.NoError(t, err)

	_, err = FitDataset(ds, "loan_amount", []string{"installments"})
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestTrainTestFit(t *testing.T) {
	ds, err := LoadCSV(writeLoansCSV(t))
	require.NoError(t, err)

	model, eval, err := TrainTestFit(ds, "loan_amount", []string{"lender_count"}, 0.2, 42)
	require.NoError(t, err)

	// The relationship is exact, so the held-out error is numerically zero.
	require.InDelta(t, 40.0, model.Coefficients()[1].Estimate, 1e-6)
	require.InDelta(t, 0.0, eval.MSE, 1e-9)
	require.Len(t, eval.Predicted, 2)
}

func TestTrainTestFitReproducible(t *testing.T) {
	ds, err := LoadCSV(writeLoansCSV(t))
	require.NoError(t, err)

	m1, _, err := TrainTestFit(ds, "loan_amount", []string{"lender_count"}, 0.3, 7)
	require.NoError(t, err)
	m2, _, err := TrainTestFit(ds, "loan_amount", []string{"lender_count"}, 0.3, 7)
	require.NoError(t, err)

	require.Equal(t, m1.Coefficients(), m2.Coefficients())
}

func TestTrainTestFitInvalidFraction(t *testing.T) {
	ds, err := LoadCSV(writeLoansCSV(t))
	require.NoError(t, err)

	_, _, err = TrainTestFit(ds, "loan_amount", []string{"lender_count"}, 1.2, 7)
	require.ErrorIs(t, err, errs.ErrInvalidFraction)
}
