package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	delimiter rune
	level     float64
}

func TestApplyInOrder(t *testing.T) {
	cfg := testConfig{delimiter: ',', level: 0.95}

	err := Apply(&cfg,
		NoError(func(c *testConfig) { c.delimiter = ';' }),
		NoError(func(c *testConfig) { c.level = 0.99 }),
	)
	require.NoError(t, err)
	require.Equal(t, ';', cfg.delimiter)
	require.Equal(t, 0.99, cfg.level)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	errBad := errors.New("bad option")
	cfg := testConfig{}

	err := Apply(&cfg,
		NoError(func(c *testConfig) { c.level = 0.5 }),
		New(func(*testConfig) error { return errBad }),
		NoError(func(c *testConfig) { c.level = 0.9 }),
	)
	require.ErrorIs(t, err, errBad)
	require.Equal(t, 0.5, cfg.level, "options after the failing one must not run")
}

func TestApplyNoOptions(t *testing.T) {
	cfg := testConfig{delimiter: '\t'}
	require.NoError(t, Apply(&cfg))
	require.Equal(t, '\t', cfg.delimiter)
}
