package driver

import "github.com/mnederkorn/cores/structure"

// Backend is the solver gateway abstraction: given a structure, find one
// proper retract morphism, or report that none exists. The returned bool
// is false exactly when the structure is already its own core (UNSAT).
// Implementations live in package solver; this interface is declared
// here, not there, so solver need not import driver.
type Backend interface {
	Graph(g *structure.Graph) (structure.Morphism, bool, error)
	Hypergraph(hg *structure.HGraph) (structure.Morphism, bool, error)
}
