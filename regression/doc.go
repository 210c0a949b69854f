// Package regression fits ordinary-least-squares linear models and derives
// per-coefficient inference statistics.
//
// Fit estimates the coefficient vector β minimizing ‖y − Xβ‖² for a design
// matrix X (n rows, k columns including the constant) and response vector y.
// The solve goes through a QR factorization rather than an explicit inverse
// of XᵀX, which keeps the estimate stable for poorly conditioned inputs.
// From the residuals it derives the residual variance σ̂² = ‖e‖²/(n−k), the
// coefficient covariance σ̂²(XᵀX)⁻¹, and per-coefficient standard errors,
// t-statistics and two-tailed p-values under the Student-t distribution with
// n−k degrees of freedom.
//
// # Basic usage
//
//	dz, err := ds.Design("loan_amount", "lender_count")
//	if err != nil {
//	    return err
//	}
//	model, err := regression.Fit(dz.X, dz.Y, dz.Names)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(model.Summary())
//
// A fitted Model is immutable; re-fitting produces a new, independent
// instance. Predict and Evaluate apply a model to new design matrices, e.g.
// a held-out test set:
//
//	ev, err := model.Evaluate(test.X, test.Y)
//	fmt.Printf("held-out MSE: %.2f\n", ev.MSE)
//
// # Error conditions
//
// Fit fails with errs.ErrInsufficientData when n ≤ k and with
// errs.ErrRankDeficient when the design matrix is singular or near-singular
// (perfectly collinear explanatory columns). Both are deterministic properties
// of the input; retrying reproduces the identical failure.
package regression
