package match

import (
	"github.com/rs/zerolog"

	"github.com/almagest-io/skymatch/pkg/errors"
	"github.com/almagest-io/skymatch/pkg/logging"
)

// Option is a function that configures a match operation
type Option func(*config) error

// config holds per-call matcher configuration. Matching itself is stateless;
// nothing here survives a call.
type config struct {
	logger  *zerolog.Logger
	workers int
	noIndex bool
}

func defaultConfig() *config {
	return &config{
		logger:  &logging.Nop,
		workers: 1,
	}
}

// WithLogger configures the logger used for match summaries and offset
// reports. Without it, matching is silent.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithWorkers configures how many goroutines scan catalog A. Each worker owns
// a disjoint block of A indices and writes disjoint slices of the result
// buffer, so results are identical to the sequential scan. The default is 1.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return errors.NewValidationError("workers", n, "must be at least 1")
		}
		c.workers = n
		return nil
	}
}

// WithoutIndex disables the S2 cell prefilter and forces the plain all-pairs
// scan. The prefilter is an optimization only; results are identical either
// way. Mostly useful for benchmarking and verification.
func WithoutIndex() Option {
	return func(c *config) error {
		c.noIndex = true
		return nil
	}
}
