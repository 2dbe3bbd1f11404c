package reducer

import (
	"fmt"

	"github.com/mnederkorn/cores/structure"
)

// graphTraceSep is the name-suffix separator used for graphs.
const graphTraceSep = "-"

// Reduce applies morphism m to g in place: for each (a, b) pair, vertex a is
// deleted and vertex b is renamed to "b-a" to record the merge, carrying
// over b's adjacency. Pairs are rewritten first under the trace-preserving
// discipline so that several pairs merging onto the same (already-renamed)
// target never collide.
func Reduce(g *structure.Graph, m structure.Morphism) error {
	pairs := rewriteTrace(m.NonIdentity(), graphTraceSep)
	for _, p := range pairs {
		if err := g.RemoveVertex(p.Src); err != nil {
			return fmt.Errorf("reducer: removing %q: %w", p.Src, err)
		}
		newName := p.Tgt + graphTraceSep + p.Src
		if err := g.RenameVertex(p.Tgt, newName); err != nil {
			return fmt.Errorf("reducer: renaming %q to %q: %w", p.Tgt, newName, err)
		}
	}
	return nil
}
