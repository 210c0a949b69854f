package regression

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Coefficient holds one fitted coefficient and its inference statistics.
type Coefficient struct {
	// Name is the design-matrix column label ("const" for the intercept).
	Name string
	// Estimate is the fitted coefficient value.
	Estimate float64
	// StdErr is the standard error of the estimate.
	StdErr float64
	// TStat is Estimate divided by StdErr.
	TStat float64
	// PValue is the two-tailed p-value under the Student-t distribution with
	// the model's residual degrees of freedom.
	PValue float64
	// ConfLow and ConfHigh bound the confidence interval at the level the
	// model was fitted with (default 95%).
	ConfLow  float64
	ConfHigh float64
}

// Model is an immutable fitted ordinary-least-squares model.
//
// A Model is created once per Fit call and never modified afterwards;
// re-fitting produces a new, independent instance. It is safe for concurrent
// use.
type Model struct {
	coeffs    []Coefficient
	beta      *mat.VecDense
	residuals []float64

	nobs      int
	nparams   int
	sigma2    float64
	rss       float64
	rsquared  float64
	adjR2     float64
	rmse      float64
	confLevel float64
}

// Coefficients returns the fitted coefficients, constant term first.
func (m *Model) Coefficients() []Coefficient {
	return append([]Coefficient(nil), m.coeffs...)
}

// Coefficient returns the fitted coefficient with the given name and whether
// it exists.
func (m *Model) Coefficient(name string) (Coefficient, bool) {
	for _, c := range m.coeffs {
		if c.Name == name {
			return c, true
		}
	}

	return Coefficient{}, false
}

// Intercept returns the constant-term estimate.
func (m *Model) Intercept() float64 {
	return m.coeffs[0].Estimate
}

// Residuals returns a copy of the training residuals e = y − Xβ.
func (m *Model) Residuals() []float64 {
	return append([]float64(nil), m.residuals...)
}

// NumObservations returns n, the number of training observations.
func (m *Model) NumObservations() int {
	return m.nobs
}

// NumParameters returns k, the number of fitted parameters including the
// constant.
func (m *Model) NumParameters() int {
	return m.nparams
}

// DegreesOfFreedom returns the residual degrees of freedom n − k.
func (m *Model) DegreesOfFreedom() int {
	return m.nobs - m.nparams
}

// ResidualVariance returns σ̂² = ‖e‖² / (n − k).
func (m *Model) ResidualVariance() float64 {
	return m.sigma2
}

// RSquared returns the coefficient of determination on the training data.
func (m *Model) RSquared() float64 {
	return m.rsquared
}

// AdjRSquared returns the degrees-of-freedom-adjusted R².
func (m *Model) AdjRSquared() float64 {
	return m.adjR2
}

// RMSE returns the root mean square error on the training data.
func (m *Model) RMSE() float64 {
	return m.rmse
}

// formatTerm renders one formula term with its sign, e.g. " + 2.0134*lenders".
func formatTerm(v float64, name string) string {
	sign := " + "
	if v < 0 {
		sign = " - "
		v = -v
	}
	if name == "" {
		return fmt.Sprintf("%s%.4f", sign, v)
	}

	return fmt.Sprintf("%s%.4f*%s", sign, v, name)
}

// Formula returns the fitted equation as a human-readable string, e.g.
//
//	y = 1.0000 + 2.0000*x
func (m *Model) Formula() string {
	var sb strings.Builder
	sb.WriteString("y =")
	for _, c := range m.coeffs {
		if c.Name == "const" {
			sb.WriteString(formatTerm(c.Estimate, ""))
			continue
		}
		sb.WriteString(formatTerm(c.Estimate, c.Name))
	}

	// Trim the leading " +" of the first term.
	return strings.Replace(sb.String(), "= + ", "= ", 1)
}

// Summary returns a multi-line human-readable report of the fit: model-level
// statistics followed by one row per coefficient with its estimate, standard
// error, t-statistic, two-tailed p-value and confidence interval.
func (m *Model) Summary() string {
	alpha := 1 - m.confLevel
	var sb strings.Builder

	fmt.Fprintf(&sb, "OLS Regression Results\n")
	fmt.Fprintf(&sb, "Observations: %-8d R²:      %8.4f\n", m.nobs, m.rsquared)
	fmt.Fprintf(&sb, "Parameters:   %-8d Adj. R²: %8.4f\n", m.nparams, m.adjR2)
	fmt.Fprintf(&sb, "Df residuals: %-8d RMSE:    %8.4f\n", m.DegreesOfFreedom(), m.rmse)
	fmt.Fprintf(&sb, "\n")
	fmt.Fprintf(&sb, "%-14s %12s %12s %10s %10s %12s %12s\n",
		"", "coef", "std err", "t", "P>|t|",
		fmt.Sprintf("[%.3f", alpha/2), fmt.Sprintf("%.3f]", 1-alpha/2))
	for _, c := range m.coeffs {
		fmt.Fprintf(&sb, "%-14s %12.4f %12.4f %10.3f %10.3f %12.4f %12.4f\n",
			c.Name, c.Estimate, c.StdErr, c.TStat, c.PValue, c.ConfLow, c.ConfHigh)
	}

	return sb.String()
}

// String returns a short one-line representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{N: %d, K: %d, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.nobs, m.nparams, m.rsquared, m.rmse, m.Formula())
}
