package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/linreg/errs"
	"github.com/statkit/linreg/internal/options"
)

// Fit estimates an ordinary-least-squares model of y on the columns of x.
//
// The design matrix x must already contain the constant column (see
// dataset.Design, which prepends one). The coefficient vector is obtained
// from a QR factorization of x, so the normal equations are never formed for
// the estimate itself; XᵀX is inverted only for the coefficient covariance,
// after the factorization has established that the matrix is well
// conditioned.
//
// Parameters:
//   - x: n × k design matrix, full column rank
//   - y: Response vector of length n
//   - names: Column labels for x, or nil for generated labels
//   - opts: Optional configuration (WithConfidenceLevel)
//
// Returns:
//   - *Model: The fitted model
//   - error: errs.ErrInsufficientData when n ≤ k, errs.ErrRankDeficient when
//     x is singular or near-singular, errs.ErrSizeMismatch on inconsistent
//     input dimensions
//
// Example:
//
//	x := mat.NewDense(4, 2, []float64{1, 1, 1, 2, 1, 3, 1, 4})
//	y := mat.NewVecDense(4, []float64{3, 5, 7, 9})
//	model, err := regression.Fit(x, y, []string{"const", "x"})
//	// intercept ≈ 1, slope ≈ 2
func Fit(x *mat.Dense, y *mat.VecDense, names []string, opts ...FitOption) (*Model, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n, k := x.Dims()
	if y.Len() != n {
		return nil, fmt.Errorf("%w: %d design matrix rows, %d responses", errs.ErrSizeMismatch, n, y.Len())
	}
	if names != nil && len(names) != k {
		return nil, fmt.Errorf("%w: %d names for %d columns", errs.ErrSizeMismatch, len(names), k)
	}
	if n <= k {
		return nil, fmt.Errorf("%w: %d observations, %d parameters", errs.ErrInsufficientData, n, k)
	}

	// β = argmin ‖y − Xβ‖² via QR. SolveTo reports a condition error for
	// singular and near-singular factorizations, which covers perfectly
	// collinear explanatory columns.
	var qr mat.QR
	qr.Factorize(x)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, y); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrRankDeficient, err)
	}
	beta := mat.NewVecDense(k, nil)
	beta.CopyVec(sol.ColView(0))

	// Residuals e = y − Xβ and residual variance σ̂² = ‖e‖²/(n−k).
	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(x, beta)
	resid := mat.NewVecDense(n, nil)
	resid.SubVec(y, fitted)
	rss := mat.Dot(resid, resid)
	sigma2 := rss / float64(n-k)

	// Coefficient covariance σ̂²(XᵀX)⁻¹.
	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrRankDeficient, err)
	}

	dof := float64(n - k)
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	tcrit := tdist.Quantile(1 - (1-cfg.confidenceLevel)/2)

	coeffs := make([]Coefficient, k)
	for i := 0; i < k; i++ {
		name := defaultName(i)
		if names != nil {
			name = names[i]
		}

		est := beta.AtVec(i)
		se := math.Sqrt(sigma2 * xtxInv.At(i, i))
		tstat := est / se
		coeffs[i] = Coefficient{
			Name:     name,
			Estimate: est,
			StdErr:   se,
			TStat:    tstat,
			PValue:   2 * tdist.Survival(math.Abs(tstat)),
			ConfLow:  est - tcrit*se,
			ConfHigh: est + tcrit*se,
		}
	}

	mean := mat.Sum(y) / float64(n)
	tss := 0.0
	for i := 0; i < n; i++ {
		diff := y.AtVec(i) - mean
		tss += diff * diff
	}
	rsquared := 0.0
	if tss > 0 {
		rsquared = 1 - rss/tss
	}

	residuals := make([]float64, n)
	for i := 0; i < n; i++ {
		residuals[i] = resid.AtVec(i)
	}

	return &Model{
		coeffs:    coeffs,
		beta:      beta,
		residuals: residuals,
		nobs:      n,
		nparams:   k,
		sigma2:    sigma2,
		rss:       rss,
		rsquared:  rsquared,
		adjR2:     1 - (1-rsquared)*float64(n-1)/dof,
		rmse:      math.Sqrt(rss / float64(n)),
		confLevel: cfg.confidenceLevel,
	}, nil
}

// defaultName labels design-matrix columns when the caller passes nil names.
// Column 0 is the constant by convention.
func defaultName(i int) string {
	if i == 0 {
		return "const"
	}

	return fmt.Sprintf("x%d", i)
}
