package regression

import (
	"fmt"

	"github.com/statkit/linreg/errs"
	"github.com/statkit/linreg/internal/options"
)

// fitConfig holds configuration for Fit.
type fitConfig struct {
	confidenceLevel float64
}

// defaultFitConfig returns the default config (95% confidence intervals).
func defaultFitConfig() fitConfig {
	return fitConfig{confidenceLevel: 0.95}
}

// FitOption is a functional option for Fit.
type FitOption = options.Option[*fitConfig]

// WithConfidenceLevel sets the level of the per-coefficient confidence
// intervals, e.g. 0.99 for 99% intervals. The default is 0.95.
func WithConfidenceLevel(level float64) FitOption {
	return options.New(func(cfg *fitConfig) error {
		if level <= 0 || level >= 1 {
			return fmt.Errorf("%w: got %v", errs.ErrInvalidConfidenceLevel, level)
		}
		cfg.confidenceLevel = level

		return nil
	})
}
