package driver

import (
	"context"
	"fmt"

	"github.com/mnederkorn/cores/structure"
)

// Option configures a Solve{Graph,Hypergraph} run via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the driver runs.
type Option func(*options)

type options struct {
	ctx         context.Context
	onIteration func(step int, m structure.Morphism)
	maxSteps    int // 0 = unlimited
	err         error
}

func defaultOptions() options {
	return options{
		ctx:         context.Background(),
		onIteration: func(int, structure.Morphism) {},
		maxSteps:    0,
	}
}

// WithContext sets a custom context; the driver checks ctx.Err() between
// iterations and aborts with ctx.Err() if it is cancelled.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnIteration registers a callback invoked after each successful
// retract-and-reduce step, receiving the 1-based step number and the
// morphism the backend found for that step.
func WithOnIteration(fn func(step int, m structure.Morphism)) Option {
	return func(o *options) {
		if fn != nil {
			o.onIteration = fn
		}
	}
}

// WithMaxSteps caps the number of retract iterations; exceeding the cap
// surfaces ErrStepLimitExceeded rather than looping forever against a
// misbehaving backend. n == 0 means unlimited (the default).
func WithMaxSteps(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxSteps = n
	}
}
