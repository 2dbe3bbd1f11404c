package driver

import (
	"fmt"

	"github.com/mnederkorn/cores/reducer"
	"github.com/mnederkorn/cores/structure"
)

// SolveGraph computes the core of g in place: repeatedly snapshot g, ask
// backend for one proper retract, reduce g by it, and stop when the
// backend reports none exists (UNSAT) or g has collapsed to a single
// vertex. On any backend or reduce error, g is restored to its state at
// the start of that iteration before the error is returned — no partial
// morphism is ever left applied.
func SolveGraph(g *structure.Graph, backend Backend, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	for step := 1; ; step++ {
		if err := o.ctx.Err(); err != nil {
			return err
		}
		if o.maxSteps > 0 && step > o.maxSteps {
			return fmt.Errorf("%w: after %d steps", ErrStepLimitExceeded, o.maxSteps)
		}
		if g.VertexCount() <= 1 {
			return nil
		}

		snapshot := g.Clone()

		m, ok, err := backend.Graph(g)
		if err != nil {
			g.RestoreFrom(snapshot)
			return fmt.Errorf("driver: backend: %w", err)
		}
		if !ok {
			return nil
		}

		if err := reducer.Reduce(g, m); err != nil {
			g.RestoreFrom(snapshot)
			return fmt.Errorf("%w: %w", ErrReduceFailed, err)
		}

		o.onIteration(step, m)
	}
}
