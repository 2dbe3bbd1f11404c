package reducer

import (
	"fmt"

	"github.com/mnederkorn/cores/structure"
)

// hyperTraceSep is the name-suffix separator used for hypergraphs.
const hyperTraceSep = "."

// ReduceHyper applies morphism m to hg in place: for each (a, b) pair,
// vertex a — and every edge instance touching it — is removed, and vertex b
// is renamed to "b.a" to record the merge. Pairs are rewritten first under
// the same trace-preserving discipline Reduce uses for graphs.
func ReduceHyper(hg *structure.HGraph, m structure.Morphism) error {
	pairs := rewriteTrace(m.NonIdentity(), hyperTraceSep)
	for _, p := range pairs {
		if err := hg.RemoveVertex(p.Src); err != nil {
			return fmt.Errorf("reducer: removing %q: %w", p.Src, err)
		}
		newName := p.Tgt + hyperTraceSep + p.Src
		if err := hg.RenameVertex(p.Tgt, newName); err != nil {
			return fmt.Errorf("reducer: renaming %q to %q: %w", p.Tgt, newName, err)
		}
	}
	return nil
}
