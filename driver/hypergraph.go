package driver

import (
	"fmt"

	"github.com/mnederkorn/cores/reducer"
	"github.com/mnederkorn/cores/structure"
)

// SolveHypergraph is the hypergraph analogue of SolveGraph.
func SolveHypergraph(hg *structure.HGraph, backend Backend, opts ...Option) error {
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
		if hg.VertexCount() <= 1 {
			return nil
		}

		snapshot := hg.Clone()

		m, ok, err := backend.Hypergraph(hg)
		if err != nil {
			hg.RestoreFrom(snapshot)
			return fmt.Errorf("driver: backend: %w", err)
		}
		if !ok {
			return nil
		}

		if err := reducer.ReduceHyper(hg, m); err != nil {
			hg.RestoreFrom(snapshot)
			return fmt.Errorf("%w: %w", ErrReduceFailed, err)
		}

		o.onIteration(step, m)
	}
}
