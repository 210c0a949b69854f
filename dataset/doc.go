// Package dataset loads delimited tabular data into memory and shapes it for
// regression fitting.
//
// A Dataset is an immutable, fully in-memory table of named numeric columns.
// It is produced once by Load or Read (or assembled directly with New for
// synthetic data) and never mutated afterwards, so it is safe to share across
// goroutines and to fit against repeatedly.
//
// # Loading
//
// Load parses a delimited file with a header row:
//
//	ds, err := dataset.Load("loans.csv")
//	if err != nil {
//	    return err
//	}
//	amounts, _ := ds.Column("loan_amount")
//
// Files compressed with gzip, Zstd, S2, LZ4 or Snappy are decompressed
// transparently based on their extension (loans.csv.gz, loans.csv.zst, ...);
// see the compress package. Options control the delimiter, a column subset,
// and compression override:
//
//	ds, err := dataset.Load("loans.tsv",
//	    dataset.WithDelimiter('\t'),
//	    dataset.WithColumns("loan_amount", "lender_count"),
//	)
//
// Parsing fails fast: an empty cell, a non-numeric value, or a ragged row in
// a loaded column aborts the load with a row-numbered error. Missing values
// are never imputed.
//
// # Shaping and splitting
//
// Design assembles the gonum design matrix (with a leading constant column
// fixed at 1) and response vector for a fit:
//
//	dz, err := ds.Design("loan_amount", "lender_count")
//	model, err := regression.Fit(dz.X, dz.Y, dz.Names)
//
// Split partitions rows into disjoint train/test subsets. The assignment is
// randomized by a seeded shuffle and fully reproducible for a fixed seed:
//
//	sp, err := ds.Split(0.2, 42)
//	// sp.Train and sp.Test are themselves Datasets
//
// Every Dataset carries an xxHash64 content fingerprint (Fingerprint) for
// recording provenance alongside fitted models.
package dataset
