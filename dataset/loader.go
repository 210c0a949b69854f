package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/statkit/linreg/compress"
	"github.com/statkit/linreg/errs"
	"github.com/statkit/linreg/format"
	"github.com/statkit/linreg/internal/options"
)

// Load reads a delimited file with a header row into a Dataset.
//
// Compressed files are decompressed transparently based on the file
// extension (.gz, .zst, .s2, .lz4, .sz); pass WithCompression to override.
// All loaded columns must be fully numeric: empty cells, unparseable values
// and ragged rows abort the load with a row-numbered error rather than
// propagating into a fit.
//
// Parameters:
//   - path: File to load
//   - opts: Optional configuration (WithDelimiter, WithColumns, WithCompression)
//
// Returns:
//   - *Dataset: The parsed dataset
//   - error: I/O, decompression or parse error
//
// Example:
//
//	ds, err := dataset.Load("loans.csv.gz",
//	    dataset.WithColumns("loan_amount", "lender_count"),
//	)
func Load(path string, opts ...LoadOption) (*Dataset, error) {
	cfg := defaultLoadConfig()
	cfg.compression = format.FromExtension(path)
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return parse(raw, cfg)
}

// Read reads delimited data with a header row from r into a Dataset.
//
// Unlike Load, compression defaults to none; pass WithCompression when the
// reader carries compressed bytes.
func Read(r io.Reader, opts ...LoadOption) (*Dataset, error) {
	cfg := defaultLoadConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return parse(raw, cfg)
}

// parse decompresses raw input and parses it as delimited text.
func parse(raw []byte, cfg loadConfig) (*Dataset, error) {
	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = cfg.delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errs.ErrNoHeader
		}

		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	names, fields, err := selectColumns(header, cfg.columns)
	if err != nil {
		return nil, err
	}

	cols := make([][]float64, len(names))
	row := 1 // header was row 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
					errs.ErrRaggedRow, row, len(record), len(header))
			}

			return nil, fmt.Errorf("failed to parse row %d: %w", row, err)
		}

		for i, fi := range fields {
			v, err := parseCell(record[fi], names[i], row)
			if err != nil {
				return nil, err
			}
			cols[i] = append(cols[i], v)
		}
	}

	return New(names, cols)
}

// selectColumns resolves the loaded column names against the header and
// returns their header positions. With no explicit selection every header
// column is loaded.
func selectColumns(header, selected []string) (names []string, fields []int, err error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, nil, fmt.Errorf("%w: empty name at column %d", errs.ErrNoHeader, i+1)
		}
		if _, exists := index[name]; exists {
			return nil, nil, fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, name)
		}
		header[i] = name
		index[name] = i
	}

	if len(selected) == 0 {
		fields = make([]int, len(header))
		for i := range header {
			fields[i] = i
		}

		return header, fields, nil
	}

	names = make([]string, len(selected))
	fields = make([]int, len(selected))
	for i, name := range selected {
		fi, ok := index[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
		}
		names[i] = name
		fields[i] = fi
	}

	return names, fields, nil
}

// parseCell parses a single cell, failing fast on missing or non-numeric
// values so that bad input never reaches the fitter.
func parseCell(cell, column string, row int) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, fmt.Errorf("%w: column %q, row %d", errs.ErrMissingValue, column, row)
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q, row %d: %q", errs.ErrNonNumericValue, column, row, cell)
	}
	// ParseFloat accepts "NaN"; treat it as a missing value, not a number.
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: column %q, row %d: NaN", errs.ErrMissingValue, column, row)
	}

	return v, nil
}
