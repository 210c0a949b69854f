package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statkit/linreg/errs"
)

func TestDesign(t *testing.T) {
	ds, err := New(
		[]string{"amount", "lenders", "term"},
		[][]float64{{1000, 525, 4000}, {27, 12, 91}, {12, 8, 20}},
	)
	require.NoError(t, err)

	dz, err := ds.Design("amount", "lenders", "term")
	require.NoError(t, err)

	rows, cols := dz.X.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, []string{"const", "lenders", "term"}, dz.Names)

	// Leading constant column fixed at 1.
	for i := 0; i < rows; i++ {
		require.Equal(t, 1.0, dz.X.At(i, 0))
	}
	require.Equal(t, 27.0, dz.X.At(0, 1))
	require.Equal(t, 20.0, dz.X.At(2, 2))

	require.Equal(t, 3, dz.Y.Len())
	require.Equal(t, 525.0, dz.Y.AtVec(1))
}

func TestDesignErrors(t *testing.T) {
	ds, err := New([]string{"amount", "lenders"}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = ds.Design("amount")
	require.Error(t, err)

	_, err = ds.Design("nope", "lenders")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)

	_, err = ds.Design("amount", "nope")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestDesignCopiesData(t *testing.T) {
	ds, err := New([]string{"amount", "lenders"}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	dz, err := ds.Design("amount", "lenders")
	require.NoError(t, err)

	dz.X.Set(0, 1, 99)
	col, err := ds.Column("lenders")
	require.NoError(t, err)
	require.Equal(t, 3.0, col[0])
}
