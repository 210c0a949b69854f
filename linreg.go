// Package linreg provides ordinary-least-squares linear regression over
// delimited tabular datasets, with per-coefficient inference statistics.
//
// The library covers the full batch workflow: load a delimited file into an
// in-memory dataset, partition it reproducibly into train/test subsets, fit
// an OLS model of a response column on one or more explanatory columns, and
// evaluate predictions on the held-out rows.
//
// # Basic Usage
//
// Fitting a model directly on a loaded dataset:
//
//	ds, err := linreg.LoadCSV("loans.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model, err := linreg.FitDataset(ds, "loan_amount", []string{"lender_count"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Summary())
//
// The full train/test workflow in one call:
//
//	model, eval, err := linreg.TrainTestFit(ds, "loan_amount",
//	    []string{"lender_count"}, 0.2, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("held-out MSE: %.2f\n", eval.MSE)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the dataset and
// regression packages, simplifying the most common use cases. For
// fine-grained control (custom delimiters, column subsets, compressed input,
// confidence levels, direct design matrices), use those packages directly.
package linreg

import (
	"github.com/statkit/linreg/dataset"
	"github.com/statkit/linreg/regression"
)

// LoadCSV loads a delimited file with a header row into a Dataset.
//
// Compressed files (.gz, .zst, .s2, .lz4, .sz) are decompressed
// transparently. This is a thin wrapper over dataset.Load; see that package
// for options.
func LoadCSV(path string, opts ...dataset.LoadOption) (*dataset.Dataset, error) {
	return dataset.Load(path, opts...)
}

// FitDataset fits an OLS model of the response column on the explanatory
// columns of ds.
//
// A constant column is prepended automatically, so the model carries an
// intercept.
//
// Parameters:
//   - ds: The dataset to fit against
//   - response: Name of the response column
//   - explanatory: Names of one or more explanatory columns
//   - opts: Optional fit configuration (regression.WithConfidenceLevel)
//
// Returns:
//   - *regression.Model: The fitted model
//   - error: Column lookup or fitting error
func FitDataset(ds *dataset.Dataset, response string, explanatory []string, opts ...regression.FitOption) (*regression.Model, error) {
	dz, err := ds.Design(response, explanatory...)
	if err != nil {
		return nil, err
	}

	return regression.Fit(dz.X, dz.Y, dz.Names, opts...)
}

// TrainTestFit splits ds into train/test subsets, fits an OLS model on the
// training rows, and evaluates it on the held-out rows.
//
// The split is a seeded shuffle: a fixed seed reproduces the identical
// partition, and therefore identical coefficients and evaluation.
//
// Parameters:
//   - ds: The dataset to split and fit
//   - response: Name of the response column
//   - explanatory: Names of one or more explanatory columns
//   - testFraction: Test-set proportion, strictly between 0 and 1
//   - seed: Shuffle seed
//   - opts: Optional fit configuration
//
// Returns:
//   - *regression.Model: Model fitted on the training subset
//   - *regression.Evaluation: Predictions and error metrics on the test subset
//   - error: Split, column lookup or fitting error
func TrainTestFit(ds *dataset.Dataset, response string, explanatory []string, testFraction float64, seed int64, opts ...regression.FitOption) (*regression.Model, *regression.Evaluation, error) {
	sp, err := ds.Split(testFraction, seed)
	if err != nil {
		return nil, nil, err
	}

	model, err := FitDataset(sp.Train, response, explanatory, opts...)
	if err != nil {
		return nil, nil, err
	}

	dz, err := sp.Test.Design(response, explanatory...)
	if err != nil {
		return nil, nil, err
	}

	eval, err := model.Evaluate(dz.X, dz.Y)
	if err != nil {
		return nil, nil, err
	}

	return model, eval, nil
}
