package dataset

import (
	"fmt"

	"github.com/statkit/linreg/format"
	"github.com/statkit/linreg/internal/options"
)

// loadConfig holds configuration for Load and Read.
type loadConfig struct {
	delimiter   rune
	compression format.CompressionType
	columns     []string
}

// defaultLoadConfig returns the default config (comma-delimited, compression
// chosen from the file extension, all columns).
func defaultLoadConfig() loadConfig {
	return loadConfig{
		delimiter:   ',',
		compression: format.CompressionNone,
	}
}

// LoadOption is a functional option for loadConfig.
type LoadOption = options.Option[*loadConfig]

// WithDelimiter sets the field delimiter, e.g. '\t' for TSV input.
func WithDelimiter(delimiter rune) LoadOption {
	return options.New(func(cfg *loadConfig) error {
		if delimiter == 0 || delimiter == '\n' || delimiter == '\r' {
			return fmt.Errorf("invalid delimiter %q", delimiter)
		}
		cfg.delimiter = delimiter

		return nil
	})
}

// WithCompression overrides the compression type inferred from the file
// extension. Use this for compressed files with unconventional names.
func WithCompression(compression format.CompressionType) LoadOption {
	return options.NoError(func(cfg *loadConfig) {
		cfg.compression = compression
	})
}

// WithColumns restricts loading to the named columns, in the given order.
// Other columns are ignored entirely, including their cell validation, which
// lets callers load the numeric columns of a file with non-numeric extras.
func WithColumns(names ...string) LoadOption {
	return options.NoError(func(cfg *loadConfig) {
		cfg.columns = names
	})
}
