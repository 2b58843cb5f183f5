package powerset

import (
	"log/slog"

	"github.com/geange/powerset/internal/logging"
)

const (
	// DefaultMaxStates Largest NFA accepted when no WithMaxStates option is given (2^16 subsets).
	DefaultMaxStates = 16

	// MaxStatesLimit Hard ceiling; subsets are enumerated with a uint64 counter.
	MaxStatesLimit = 62
)

type options struct {
	maxStates  int
	acceptance Acceptance
	logger     *slog.Logger
	observer   Observer
}

// Option configures New and Compile.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		maxStates:  DefaultMaxStates,
		acceptance: SubstringAcceptance,
		logger:     logging.NewNop(),
	}
	for _, fn := range opts {
		fn(o)
	}
	switch {
	case o.maxStates <= 0:
		o.maxStates = DefaultMaxStates
	case o.maxStates > MaxStatesLimit:
		o.maxStates = MaxStatesLimit
	}
	return o
}

// WithMaxStates Sets the largest number of original states that may be determinized.
// Values <= 0 select DefaultMaxStates, values above MaxStatesLimit select MaxStatesLimit.
func WithMaxStates(n int) Option {
	return func(o *options) {
		o.maxStates = n
	}
}

// WithAcceptance Selects how composite states decide acceptance.
func WithAcceptance(a Acceptance) Option {
	return func(o *options) {
		if a != nil {
			o.acceptance = a
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver Registers an observer notified once a run completes a phase.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}
